package service

import (
	"Umami/dao"
	"Umami/pkg/response"
	"Umami/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ ITagService = (*TagService)(nil)

type ITagService interface {
	List(ctx context.Context) ([]types.TagView, error)
	Get(ctx context.Context, id int64) (*types.TagView, error)
}

type TagService struct {
	TagDAO *dao.TagDAO
}

// List 全量标签
func (s *TagService) List(ctx context.Context) ([]types.TagView, error) {
	tags, err := s.TagDAO.All(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]types.TagView, 0, len(tags))
	for _, t := range tags {
		result = append(result, types.TagView{
			ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug,
		})
	}
	return result, nil
}

func (s *TagService) Get(ctx context.Context, id int64) (*types.TagView, error) {
	t, err := s.TagDAO.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrNotFound("标签不存在")
		}
		return nil, err
	}
	return &types.TagView{ID: t.ID, Name: t.Name, Color: t.Color, Slug: t.Slug}, nil
}
