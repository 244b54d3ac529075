package dao

import (
	"Umami/models"
	"context"

	"gorm.io/gorm"
)

type RecipeDAO struct {
	Repo[models.Recipe]
}

func NewRecipeDAO(db *gorm.DB) *RecipeDAO {
	return &RecipeDAO{Repo: NewRepo[models.Recipe](db)}
}

// RecipeFilter 菜谱列表过滤条件
type RecipeFilter struct {
	AuthorID    int64
	TagSlugs    []string
	FavoritedBy int64 // 只看该用户收藏的
	InCartOf    int64 // 只看该用户购物车里的
	Limit       int
	Offset      int
}

// CreateWithRelations 建菜谱并落配料行和标签关联，单事务
func (d *RecipeDAO) CreateWithRelations(ctx context.Context, recipe *models.Recipe, lines []models.RecipeIngredient, tagIDs []int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(recipe).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].RecipeID = recipe.ID
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}
		links := make([]models.RecipeTag, 0, len(tagIDs))
		for _, id := range tagIDs {
			links = append(links, models.RecipeTag{RecipeID: recipe.ID, TagID: id})
		}
		return tx.Create(&links).Error
	})
}

// UpdateWithRelations 更新菜谱，配料行和标签全量替换（先删后插），单事务
func (d *RecipeDAO) UpdateWithRelations(ctx context.Context, recipe *models.Recipe, lines []models.RecipeIngredient, tagIDs []int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Recipe{}).Where("id = ?", recipe.ID).Updates(map[string]any{
			"name":         recipe.Name,
			"text":         recipe.Text,
			"image":        recipe.Image,
			"cooking_time": recipe.CookingTime,
			"updated_at":   recipe.UpdatedAt,
		}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", recipe.ID).Delete(&models.RecipeTag{}).Error; err != nil {
			return err
		}
		for i := range lines {
			lines[i].RecipeID = recipe.ID
			lines[i].ID = 0
		}
		if err := tx.Create(&lines).Error; err != nil {
			return err
		}
		links := make([]models.RecipeTag, 0, len(tagIDs))
		for _, id := range tagIDs {
			links = append(links, models.RecipeTag{RecipeID: recipe.ID, TagID: id})
		}
		return tx.Create(&links).Error
	})
}

// DeleteWithRelations 删菜谱并清理关联行（配料、标签、收藏、购物车）
func (d *RecipeDAO) DeleteWithRelations(ctx context.Context, recipeID int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{
			&models.RecipeIngredient{},
			&models.RecipeTag{},
			&models.Favorite{},
			&models.ShoppingCart{},
		} {
			if err := tx.Where("recipe_id = ?", recipeID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Where("id = ?", recipeID).Delete(&models.Recipe{}).Error
	})
}

func (d *RecipeDAO) applyFilter(q *gorm.DB, f RecipeFilter) *gorm.DB {
	if f.AuthorID > 0 {
		q = q.Where("recipes.author_id = ?", f.AuthorID)
	}
	if len(f.TagSlugs) > 0 {
		// 多标签 OR 语义，join 会出重复行，取数和计数都要去重
		q = q.Joins("JOIN recipe_tags rt ON rt.recipe_id = recipes.id").
			Joins("JOIN tags t ON t.id = rt.tag_id").
			Where("t.slug IN ?", f.TagSlugs)
	}
	if f.FavoritedBy > 0 {
		q = q.Joins("JOIN favorites fav ON fav.recipe_id = recipes.id AND fav.user_id = ?", f.FavoritedBy)
	}
	if f.InCartOf > 0 {
		q = q.Joins("JOIN shopping_carts sc ON sc.recipe_id = recipes.id AND sc.user_id = ?", f.InCartOf)
	}
	return q
}

// List 菜谱列表，新的在前
func (d *RecipeDAO) List(ctx context.Context, f RecipeFilter) ([]*models.Recipe, int64, error) {
	var total int64
	countQ := d.applyFilter(d.Db.WithContext(ctx).Model(&models.Recipe{}), f).
		Distinct("recipes.id")
	if err := countQ.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recipes []*models.Recipe
	q := d.applyFilter(d.Db.WithContext(ctx).Model(&models.Recipe{}), f)
	if len(f.TagSlugs) > 0 {
		q = q.Distinct("recipes.*")
	}
	err := q.Order("recipes.created_at DESC, recipes.id DESC").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&recipes).Error
	return recipes, total, err
}

// ListByAuthorLimited 某作者的菜谱，limit<=0 取全部
func (d *RecipeDAO) ListByAuthorLimited(ctx context.Context, authorID int64, limit int) ([]*models.Recipe, error) {
	var recipes []*models.Recipe
	q := d.Db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&recipes).Error
	return recipes, err
}

// CountByAuthors 按作者统计菜谱数
func (d *RecipeDAO) CountByAuthors(ctx context.Context, authorIDs []int64) (map[int64]int64, error) {
	counts := make(map[int64]int64, len(authorIDs))
	if len(authorIDs) == 0 {
		return counts, nil
	}
	var rows []struct {
		AuthorID int64 `gorm:"column:author_id"`
		Cnt      int64 `gorm:"column:cnt"`
	}
	err := d.Db.WithContext(ctx).
		Model(&models.Recipe{}).
		Select("author_id, COUNT(*) AS cnt").
		Where("author_id IN ?", authorIDs).
		Group("author_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		counts[r.AuthorID] = r.Cnt
	}
	return counts, nil
}

// ListIngredientLines 多个菜谱的配料行，带配料名称与单位
func (d *RecipeDAO) ListIngredientLines(ctx context.Context, recipeIDs []int64) ([]models.RecipeIngredientLine, error) {
	if len(recipeIDs) == 0 {
		return []models.RecipeIngredientLine{}, nil
	}
	var lines []models.RecipeIngredientLine
	err := d.Db.WithContext(ctx).
		Table("recipe_ingredients ri").
		Select("ri.recipe_id, ri.ingredient_id, i.name, i.measurement_unit, ri.amount").
		Joins("JOIN ingredients i ON i.id = ri.ingredient_id").
		Where("ri.recipe_id IN ?", recipeIDs).
		Order("ri.recipe_id, ri.id").
		Scan(&lines).Error
	return lines, err
}

// ListTags 多个菜谱的标签
func (d *RecipeDAO) ListTags(ctx context.Context, recipeIDs []int64) (map[int64][]*models.Tag, error) {
	result := make(map[int64][]*models.Tag, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return result, nil
	}
	var rows []struct {
		RecipeID int64  `gorm:"column:recipe_id"`
		ID       int64  `gorm:"column:id"`
		Name     string `gorm:"column:name"`
		Color    string `gorm:"column:color"`
		Slug     string `gorm:"column:slug"`
	}
	err := d.Db.WithContext(ctx).
		Table("recipe_tags rt").
		Select("rt.recipe_id, t.id, t.name, t.color, t.slug").
		Joins("JOIN tags t ON t.id = rt.tag_id").
		Where("rt.recipe_id IN ?", recipeIDs).
		Order("rt.recipe_id, t.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		result[r.RecipeID] = append(result[r.RecipeID], &models.Tag{
			ID: r.ID, Name: r.Name, Color: r.Color, Slug: r.Slug,
		})
	}
	return result, nil
}
