package service

import (
	"Umami/dao"
	"Umami/dao/cache"
	"Umami/pkg/response"
	"Umami/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ IFavoriteService = (*FavoriteService)(nil)

type IFavoriteService interface {
	Add(ctx context.Context, userID, recipeID int64) (*types.RecipeBrief, error)
	Remove(ctx context.Context, userID, recipeID int64) error
	IsFavorited(ctx context.Context, userID, recipeID int64) (bool, error)
}

type FavoriteService struct {
	FavoriteDAO *dao.FavoriteDAO
	RecipeDAO   *dao.RecipeDAO
	Cache       *cache.RelationCache
}

// Add 收藏菜谱，返回菜谱摘要
// 单条 INSERT 打到唯一索引上，冲突即已收藏，不做先查后插
func (s *FavoriteService) Add(ctx context.Context, userID, recipeID int64) (*types.RecipeBrief, error) {
	recipe, err := s.RecipeDAO.FindById(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrNotFound("菜谱不存在")
		}
		return nil, err
	}

	if err := s.FavoriteDAO.Add(ctx, userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.ErrConflict("已收藏过该菜谱")
		}
		return nil, err
	}
	s.Cache.SetFavorite(ctx, userID, recipeID, true)

	return &types.RecipeBrief{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}, nil
}

// Remove 取消收藏，记录不存在返回 404
func (s *FavoriteService) Remove(ctx context.Context, userID, recipeID int64) error {
	removed, err := s.FavoriteDAO.Remove(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if !removed {
		return response.ErrNotFound("未收藏该菜谱")
	}
	s.Cache.SetFavorite(ctx, userID, recipeID, false)
	return nil
}

// IsFavorited 先查缓存，未命中回源并回填
func (s *FavoriteService) IsFavorited(ctx context.Context, userID, recipeID int64) (bool, error) {
	if userID <= 0 {
		return false, nil
	}
	if v, hit := s.Cache.GetFavorite(ctx, userID, recipeID); hit {
		return v, nil
	}
	v, err := s.FavoriteDAO.IsFavorited(ctx, userID, recipeID)
	if err != nil {
		return false, err
	}
	s.Cache.SetFavorite(ctx, userID, recipeID, v)
	return v, nil
}
