package dao

import (
	"Umami/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type ShoppingCartDAO struct {
	Repo[models.ShoppingCart]
}

func NewShoppingCartDAO(db *gorm.DB) *ShoppingCartDAO {
	return &ShoppingCartDAO{Repo: NewRepo[models.ShoppingCart](db)}
}

// Add 加入购物车，重复加入返回 gorm.ErrDuplicatedKey
func (d *ShoppingCartDAO) Add(ctx context.Context, userID, recipeID int64) error {
	item := models.ShoppingCart{
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}
	return d.Db.WithContext(ctx).Create(&item).Error
}

// Remove 移出购物车，返回是否真的删到了记录
func (d *ShoppingCartDAO) Remove(ctx context.Context, userID, recipeID int64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.ShoppingCart{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IsInCart 是否在购物车里
func (d *ShoppingCartDAO) IsInCart(ctx context.Context, userID, recipeID int64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND recipe_id = ?", userID, recipeID)
}

// ListRecipeIDs 用户购物车里的菜谱 ID 集合
func (d *ShoppingCartDAO) ListRecipeIDs(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]struct{}, error) {
	result := make(map[int64]struct{})
	if len(recipeIDs) == 0 {
		return result, nil
	}
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.ShoppingCart{}).
		Where("user_id = ? AND recipe_id IN ?", userID, recipeIDs).
		Pluck("recipe_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		result[id] = struct{}{}
	}
	return result, nil
}

// ListCartLines 用户购物车聚合联查：车内每个菜谱的全部配料行
// 顺序固定：先按入车时间，再按配料行 ID，聚合输出才可复现
func (d *ShoppingCartDAO) ListCartLines(ctx context.Context, userID int64) ([]models.CartIngredientLine, error) {
	var lines []models.CartIngredientLine
	err := d.Db.WithContext(ctx).
		Table("shopping_carts sc").
		Select("ri.recipe_id, ri.ingredient_id, i.name, i.measurement_unit, ri.amount").
		Joins("JOIN recipe_ingredients ri ON ri.recipe_id = sc.recipe_id").
		Joins("JOIN ingredients i ON i.id = ri.ingredient_id").
		Where("sc.user_id = ?", userID).
		Order("sc.created_at, sc.id, ri.id").
		Scan(&lines).Error
	return lines, err
}
