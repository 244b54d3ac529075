package dao

import (
	"Umami/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type FavoriteDAO struct {
	Repo[models.Favorite]
}

func NewFavoriteDAO(db *gorm.DB) *FavoriteDAO {
	return &FavoriteDAO{Repo: NewRepo[models.Favorite](db)}
}

// Add 收藏，靠唯一索引保证幂等性
// 重复收藏返回 gorm.ErrDuplicatedKey，不做先查后插
func (d *FavoriteDAO) Add(ctx context.Context, userID, recipeID int64) error {
	item := models.Favorite{
		UserID:    userID,
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}
	return d.Db.WithContext(ctx).Create(&item).Error
}

// Remove 取消收藏，返回是否真的删到了记录
func (d *FavoriteDAO) Remove(ctx context.Context, userID, recipeID int64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&models.Favorite{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IsFavorited 是否已收藏
func (d *FavoriteDAO) IsFavorited(ctx context.Context, userID, recipeID int64) (bool, error) {
	return d.IsExist(ctx, "user_id = ? AND recipe_id = ?", userID, recipeID)
}

// ListRecipeIDs 用户收藏的菜谱 ID 集合
func (d *FavoriteDAO) ListRecipeIDs(ctx context.Context, userID int64, recipeIDs []int64) (map[int64]struct{}, error) {
	result := make(map[int64]struct{})
	if len(recipeIDs) == 0 {
		return result, nil
	}
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.Favorite{}).
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
