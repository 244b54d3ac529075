package dao

import (
	"Umami/models"
	"context"
	"strings"

	"gorm.io/gorm"
)

type IngredientDAO struct {
	Repo[models.Ingredient]
}

func NewIngredientDAO(db *gorm.DB) *IngredientDAO {
	return &IngredientDAO{Repo: NewRepo[models.Ingredient](db)}
}

// SearchByPrefix 名称前缀检索，不区分大小写，不分页
func (d *IngredientDAO) SearchByPrefix(ctx context.Context, prefix string) ([]*models.Ingredient, error) {
	var items []*models.Ingredient
	q := d.Db.WithContext(ctx).Order("name ASC")
	if prefix != "" {
		q = q.Where("LOWER(name) LIKE ?", strings.ToLower(prefix)+"%")
	}
	err := q.Find(&items).Error
	return items, err
}

// FindByIDs 按 ID 列表查询
func (d *IngredientDAO) FindByIDs(ctx context.Context, ids []int64) ([]*models.Ingredient, error) {
	if len(ids) == 0 {
		return []*models.Ingredient{}, nil
	}
	var items []*models.Ingredient
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&items).Error
	return items, err
}
