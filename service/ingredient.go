package service

import (
	"Umami/dao"
	"Umami/pkg/response"
	"Umami/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ IIngredientService = (*IngredientService)(nil)

type IIngredientService interface {
	Search(ctx context.Context, namePrefix string) ([]types.IngredientView, error)
	Get(ctx context.Context, id int64) (*types.IngredientView, error)
}

type IngredientService struct {
	IngredientDAO *dao.IngredientDAO
}

// Search 名称前缀检索，不分页
func (s *IngredientService) Search(ctx context.Context, namePrefix string) ([]types.IngredientView, error) {
	items, err := s.IngredientDAO.SearchByPrefix(ctx, namePrefix)
	if err != nil {
		return nil, err
	}
	result := make([]types.IngredientView, 0, len(items))
	for _, item := range items {
		result = append(result, types.IngredientView{
			ID:              item.ID,
			Name:            item.Name,
			MeasurementUnit: item.MeasurementUnit,
		})
	}
	return result, nil
}

func (s *IngredientService) Get(ctx context.Context, id int64) (*types.IngredientView, error) {
	item, err := s.IngredientDAO.FindById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrNotFound("配料不存在")
		}
		return nil, err
	}
	return &types.IngredientView{
		ID:              item.ID,
		Name:            item.Name,
		MeasurementUnit: item.MeasurementUnit,
	}, nil
}
