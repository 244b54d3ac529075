package handler

import (
	"Umami/config"
	"Umami/pkg/context"
	"Umami/pkg/jwt"
	"Umami/pkg/response"
	"Umami/service"
	"Umami/types"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type Auth struct {
	Config      *config.Config
	UserService service.IUserService
}

func (h *Auth) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/auth")
	g.POST("/token", context.Wrap(h.Token))
}

// Token 邮箱密码换 access token
func (h *Auth) Token(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	user, err := h.UserService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	expire := time.Duration(h.Config.Jwt.Expire) * time.Second
	if expire <= 0 {
		expire = time.Hour
	}
	token, err := jwt.GenerateToken([]byte(h.Config.Jwt.Secret), user.ID, "access", expire)
	if err != nil {
		return err
	}

	response.Success(c, types.LoginResponse{Token: token})
	return nil
}
