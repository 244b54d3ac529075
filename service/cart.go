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

var _ ICartService = (*CartService)(nil)

type ICartService interface {
	Add(ctx context.Context, userID, recipeID int64) (*types.RecipeBrief, error)
	Remove(ctx context.Context, userID, recipeID int64) error
	IsInCart(ctx context.Context, userID, recipeID int64) (bool, error)
}

type CartService struct {
	CartDAO   *dao.ShoppingCartDAO
	RecipeDAO *dao.RecipeDAO
	Cache     *cache.RelationCache
}

// Add 加入购物车，返回菜谱摘要
// 与收藏同款：唯一索引冲突即已在车里
func (s *CartService) Add(ctx context.Context, userID, recipeID int64) (*types.RecipeBrief, error) {
	recipe, err := s.RecipeDAO.FindById(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrNotFound("菜谱不存在")
		}
		return nil, err
	}

	if err := s.CartDAO.Add(ctx, userID, recipeID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.ErrConflict("菜谱已在购物车中")
		}
		return nil, err
	}
	s.Cache.SetInCart(ctx, userID, recipeID, true)

	return &types.RecipeBrief{
		ID:          recipe.ID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		CookingTime: recipe.CookingTime,
	}, nil
}

// Remove 移出购物车，记录不存在返回 404
func (s *CartService) Remove(ctx context.Context, userID, recipeID int64) error {
	removed, err := s.CartDAO.Remove(ctx, userID, recipeID)
	if err != nil {
		return err
	}
	if !removed {
		return response.ErrNotFound("菜谱不在购物车中")
	}
	s.Cache.SetInCart(ctx, userID, recipeID, false)
	return nil
}

// IsInCart 先查缓存，未命中回源并回填
func (s *CartService) IsInCart(ctx context.Context, userID, recipeID int64) (bool, error) {
	if userID <= 0 {
		return false, nil
	}
	if v, hit := s.Cache.GetInCart(ctx, userID, recipeID); hit {
		return v, nil
	}
	v, err := s.CartDAO.IsInCart(ctx, userID, recipeID)
	if err != nil {
		return false, err
	}
	s.Cache.SetInCart(ctx, userID, recipeID, v)
	return v, nil
}
