package service

import (
	"Umami/dao"
	"Umami/models"
	"Umami/pkg/encrypt"
	"Umami/pkg/response"
	"Umami/types"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Profile(ctx context.Context, viewerID, userID int64) (*types.UserProfile, error)
	List(ctx context.Context, viewerID int64, q types.PageQuery) ([]types.UserProfile, int64, error)
}

type UserService struct {
	UserDAO         *dao.Users
	SubscriptionDAO *dao.SubscriptionDAO
}

// Register 注册用户
// 邮箱、用户名都有唯一索引兜底，先查只是为了报错友好
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, error) {
	if s.UserDAO.IsEmailExist(ctx, req.Email) {
		return nil, response.ErrConflict("邮箱已注册")
	}
	if s.UserDAO.IsUsernameExist(ctx, req.Username) {
		return nil, response.ErrConflict("用户名已占用")
	}

	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Email:     req.Email,
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Password:  hash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.UserDAO.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.ErrConflict("邮箱或用户名已占用")
		}
		return nil, err
	}
	return user, nil
}

// Login 登录校验
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.UserDAO.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrUnauthorized("账号或密码错误")
		}
		return nil, err
	}
	if !encrypt.VerifyPassword(user.Password, password) {
		return nil, response.ErrUnauthorized("账号或密码错误")
	}
	return user, nil
}

// Profile 用户视图，is_subscribed 按查看者算
func (s *UserService) Profile(ctx context.Context, viewerID, userID int64) (*types.UserProfile, error) {
	user, err := s.UserDAO.FindById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.ErrNotFound("用户不存在")
		}
		return nil, err
	}

	isSub := false
	if viewerID > 0 && viewerID != userID {
		isSub, err = s.SubscriptionDAO.IsSubscribed(ctx, viewerID, userID)
		if err != nil {
			return nil, err
		}
	}
	return &types.UserProfile{
		ID:           user.ID,
		Email:        user.Email,
		Username:     user.Username,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Avatar:       user.Avatar,
		IsSubscribed: isSub,
	}, nil
}

// List 用户列表
func (s *UserService) List(ctx context.Context, viewerID int64, q types.PageQuery) ([]types.UserProfile, int64, error) {
	q.Normalize()
	users, total, err := s.UserDAO.List(ctx, q.Limit, q.Offset())
	if err != nil {
		return nil, 0, err
	}

	ids := make([]int64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	subscribed, err := s.SubscriptionDAO.SubscribedSet(ctx, viewerID, ids)
	if err != nil {
		return nil, 0, err
	}

	result := make([]types.UserProfile, 0, len(users))
	for _, u := range users {
		_, isSub := subscribed[u.ID]
		result = append(result, types.UserProfile{
			ID:           u.ID,
			Email:        u.Email,
			Username:     u.Username,
			FirstName:    u.FirstName,
			LastName:     u.LastName,
			Avatar:       u.Avatar,
			IsSubscribed: isSub,
		})
	}
	return result, total, nil
}
