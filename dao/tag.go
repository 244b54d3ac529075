package dao

import (
	"Umami/models"
	"context"

	"gorm.io/gorm"
)

type TagDAO struct {
	Repo[models.Tag]
}

func NewTagDAO(db *gorm.DB) *TagDAO {
	return &TagDAO{Repo: NewRepo[models.Tag](db)}
}

// All 全量标签，不分页
func (d *TagDAO) All(ctx context.Context) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := d.Db.WithContext(ctx).Order("name ASC").Find(&tags).Error
	return tags, err
}

// FindByIDs 按 ID 列表查询
func (d *TagDAO) FindByIDs(ctx context.Context, ids []int64) ([]*models.Tag, error) {
	if len(ids) == 0 {
		return []*models.Tag{}, nil
	}
	var tags []*models.Tag
	err := d.Db.WithContext(ctx).Where("id IN ?", ids).Find(&tags).Error
	return tags, err
}

// FindBySlugs 按 slug 列表查询
func (d *TagDAO) FindBySlugs(ctx context.Context, slugs []string) ([]*models.Tag, error) {
	if len(slugs) == 0 {
		return []*models.Tag{}, nil
	}
	var tags []*models.Tag
	err := d.Db.WithContext(ctx).Where("slug IN ?", slugs).Find(&tags).Error
	return tags, err
}
