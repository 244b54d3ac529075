package service

import (
	"Umami/dao"
	"Umami/models"
	"Umami/pkg/response"
	"Umami/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ ISubscribeService = (*SubscribeService)(nil)

type ISubscribeService interface {
	Subscribe(ctx context.Context, subscriberID, authorID int64, recipesLimit int) (*types.AuthorWithRecipes, error)
	Unsubscribe(ctx context.Context, subscriberID, authorID int64) error
	List(ctx context.Context, subscriberID int64, q types.SubscriptionListQuery) ([]types.AuthorWithRecipes, int64, error)
}

type SubscribeService struct {
	SubscriptionDAO *dao.SubscriptionDAO
	RecipeDAO       *dao.RecipeDAO
	UserDAO         *dao.Users
}

// Subscribe 订阅作者
// 自己订自己先于唯一性检查拦掉；重复订阅靠唯一索引冲突报 409
func (s *SubscribeService) Subscribe(ctx context.Context, subscriberID, authorID int64, recipesLimit int) (*types.AuthorWithRecipes, error) {
	if subscriberID == authorID {
		return nil, response.ErrBadRequest("不能订阅自己")
	}

	author, err := s.UserDAO.FindById(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrNotFound("用户不存在")
		}
		return nil, err
	}

	if err := s.SubscriptionDAO.Add(ctx, subscriberID, authorID); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.ErrConflict("已订阅该作者")
		}
		return nil, err
	}

	return s.authorView(ctx, author, recipesLimit)
}

// Unsubscribe 取消订阅，记录不存在返回 404
func (s *SubscribeService) Unsubscribe(ctx context.Context, subscriberID, authorID int64) error {
	if subscriberID == authorID {
		return response.ErrBadRequest("不能订阅自己")
	}
	removed, err := s.SubscriptionDAO.Remove(ctx, subscriberID, authorID)
	if err != nil {
		return err
	}
	if !removed {
		return response.ErrNotFound("未订阅该作者")
	}
	return nil
}

// List 订阅的作者列表，每行带菜谱摘要（可限量）和菜谱总数
func (s *SubscribeService) List(ctx context.Context, subscriberID int64, q types.SubscriptionListQuery) ([]types.AuthorWithRecipes, int64, error) {
	q.Normalize()
	authorIDs, total, err := s.SubscriptionDAO.ListAuthorIDs(ctx, subscriberID, q.Limit, q.Offset())
	if err != nil {
		return nil, 0, err
	}
	if len(authorIDs) == 0 {
		return []types.AuthorWithRecipes{}, total, nil
	}

	authors, err := s.UserDAO.FindByIDs(ctx, authorIDs)
	if err != nil {
		return nil, 0, err
	}
	// 恢复订阅时间顺序
	authorMap := make(map[int64]*models.User, len(authors))
	for _, a := range authors {
		authorMap[a.ID] = a
	}

	subscribed, err := s.SubscriptionDAO.SubscribedSet(ctx, subscriberID, authorIDs)
	if err != nil {
		return nil, 0, err
	}
	counts, err := s.RecipeDAO.CountByAuthors(ctx, authorIDs)
	if err != nil {
		return nil, 0, err
	}

	result := make([]types.AuthorWithRecipes, 0, len(authorIDs))
	for _, id := range authorIDs {
		a, ok := authorMap[id]
		if !ok {
			continue
		}
		recipes, err := s.RecipeDAO.ListByAuthorLimited(ctx, id, q.RecipesLimit)
		if err != nil {
			return nil, 0, err
		}
		briefs := make([]types.RecipeBrief, 0, len(recipes))
		for _, r := range recipes {
			briefs = append(briefs, types.RecipeBrief{
				ID:          r.ID,
				Name:        r.Name,
				Image:       r.Image,
				CookingTime: r.CookingTime,
			})
		}
		_, isSub := subscribed[id]
		result = append(result, types.AuthorWithRecipes{
			UserProfile: types.UserProfile{
				ID:           a.ID,
				Email:        a.Email,
				Username:     a.Username,
				FirstName:    a.FirstName,
				LastName:     a.LastName,
				Avatar:       a.Avatar,
				IsSubscribed: isSub,
			},
			Recipes:      briefs,
			RecipesCount: counts[id],
		})
	}
	return result, total, nil
}

func (s *SubscribeService) authorView(ctx context.Context, author *models.User, recipesLimit int) (*types.AuthorWithRecipes, error) {
	recipes, err := s.RecipeDAO.ListByAuthorLimited(ctx, author.ID, recipesLimit)
	if err != nil {
		return nil, err
	}
	briefs := make([]types.RecipeBrief, 0, len(recipes))
	for _, r := range recipes {
		briefs = append(briefs, types.RecipeBrief{
			ID:          r.ID,
			Name:        r.Name,
			Image:       r.Image,
			CookingTime: r.CookingTime,
		})
	}
	counts, err := s.RecipeDAO.CountByAuthors(ctx, []int64{author.ID})
	if err != nil {
		return nil, err
	}
	return &types.AuthorWithRecipes{
		UserProfile: types.UserProfile{
			ID:           author.ID,
			Email:        author.Email,
			Username:     author.Username,
			FirstName:    author.FirstName,
			LastName:     author.LastName,
			Avatar:       author.Avatar,
			IsSubscribed: true, // 刚订阅成功，视角就是订阅者
		},
		Recipes:      briefs,
		RecipesCount: counts[author.ID],
	}, nil
}
