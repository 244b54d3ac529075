package handler

import (
	"Umami/config"
	"Umami/middleware"
	"Umami/pkg/context"
	"Umami/pkg/response"
	"Umami/service"
	"Umami/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config           *config.Config
	UserService      service.IUserService
	SubscribeService service.ISubscribeService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/v1/users")
	g.POST("", context.Wrap(h.Register))
	g.GET("", optional, context.Wrap(h.List))
	g.GET("/me", authorize, context.Wrap(h.Me))
	g.GET("/subscriptions", authorize, context.Wrap(h.Subscriptions))
	g.GET("/:id", optional, context.Wrap(h.Get))
	g.POST("/:id/subscribe", authorize, context.Wrap(h.Subscribe))
	g.DELETE("/:id/subscribe", authorize, context.Wrap(h.Unsubscribe))
}

// Register 注册
func (h *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	user, err := h.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, types.UserProfile{
		ID:        user.ID,
		Email:     user.Email,
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Avatar:    user.Avatar,
	})
	return nil
}

// List 用户列表
func (h *User) List(c *gin.Context) error {
	var q types.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	viewerID := context.GetOptionalUserID(c)
	users, total, err := h.UserService.List(c.Request.Context(), viewerID, q)
	if err != nil {
		return err
	}
	response.Success(c, types.PageResult[types.UserProfile]{Count: total, Results: users})
	return nil
}

// Me 当前用户
func (h *User) Me(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	profile, err := h.UserService.Profile(c.Request.Context(), userID, userID)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

// Get 用户详情
func (h *User) Get(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "id 格式错误")
	}

	viewerID := context.GetOptionalUserID(c)
	profile, err := h.UserService.Profile(c.Request.Context(), viewerID, id)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

// Subscribe 订阅作者
func (h *User) Subscribe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	authorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "id 格式错误")
	}
	recipesLimit, _ := strconv.Atoi(c.Query("recipes_limit"))

	author, err := h.SubscribeService.Subscribe(c.Request.Context(), userID, authorID, recipesLimit)
	if err != nil {
		return err
	}
	response.Success(c, author)
	return nil
}

// Unsubscribe 取消订阅
func (h *User) Unsubscribe(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	authorID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "id 格式错误")
	}

	if err := h.SubscribeService.Unsubscribe(c.Request.Context(), userID, authorID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// Subscriptions 订阅的作者列表
func (h *User) Subscriptions(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var q types.SubscriptionListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	authors, total, err := h.SubscribeService.List(c.Request.Context(), userID, q)
	if err != nil {
		return err
	}
	response.Success(c, types.PageResult[types.AuthorWithRecipes]{Count: total, Results: authors})
	return nil
}
