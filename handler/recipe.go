package handler

import (
	"Umami/config"
	"Umami/middleware"
	"Umami/pkg/context"
	"Umami/pkg/response"
	"Umami/service"
	"Umami/types"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Recipe struct {
	Config              *config.Config
	RecipeService       service.IRecipeService
	FavoriteService     service.IFavoriteService
	CartService         service.ICartService
	ShoppingListService service.IShoppingListService
}

func (h *Recipe) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/v1/recipes")
	g.GET("", optional, context.Wrap(h.List))
	g.POST("", authorize, context.Wrap(h.Create))
	g.GET("/download_shopping_cart", authorize, context.Wrap(h.DownloadShoppingCart))
	g.GET("/:id", optional, context.Wrap(h.Get))
	g.PATCH("/:id", authorize, context.Wrap(h.Update))
	g.DELETE("/:id", authorize, context.Wrap(h.Delete))
	g.POST("/:id/favorite", authorize, context.Wrap(h.AddFavorite))
	g.DELETE("/:id/favorite", authorize, context.Wrap(h.RemoveFavorite))
	g.POST("/:id/shopping_cart", authorize, context.Wrap(h.AddToCart))
	g.DELETE("/:id/shopping_cart", authorize, context.Wrap(h.RemoveFromCart))
	g.GET("/:id/get-link", context.Wrap(h.GetLink))
}

// RegisterShareRouter 短链接跳转挂在根路径
func (h *Recipe) RegisterShareRouter(r gin.IRouter) {
	r.GET("/s/:code", h.ResolveShareLink)
}

func recipeIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, response.NewError(http.StatusBadRequest, "id 格式错误")
	}
	return id, nil
}

// List 菜谱列表
func (h *Recipe) List(c *gin.Context) error {
	var q types.RecipeListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	viewerID := context.GetOptionalUserID(c)
	recipes, total, err := h.RecipeService.List(c.Request.Context(), viewerID, q)
	if err != nil {
		return err
	}
	response.Success(c, types.PageResult[types.RecipeDetail]{Count: total, Results: recipes})
	return nil
}

// Get 菜谱详情
func (h *Recipe) Get(c *gin.Context) error {
	id, err := recipeIDParam(c)
	if err != nil {
		return err
	}

	viewerID := context.GetOptionalUserID(c)
	detail, err := h.RecipeService.Get(c.Request.Context(), viewerID, id)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

// Create 创建菜谱
func (h *Recipe) Create(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	detail, err := h.RecipeService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

// Update 更新菜谱，配料和标签全量替换
func (h *Recipe) Update(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	id, err := recipeIDParam(c)
	if err != nil {
		return err
	}

	var req types.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	detail, err := h.RecipeService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

// Delete 删除菜谱
func (h *Recipe) Delete(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	id, err := recipeIDParam(c)
	if err != nil {
		return err
	}

	if err := h.RecipeService.Delete(c.Request.Context(), userID, id); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// AddFavorite 收藏
func (h *Recipe) AddFavorite(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	id, err := recipeIDParam(c)
	if err != nil {
		return err
	}

	brief, err := h.FavoriteService.Add(c.Request.Context(), userID, id)
	if err != nil {
		return err
	}
	response.Success(c, brief)
	return nil
}

// RemoveFavorite 取消收藏
func (h *Recipe) RemoveFavorite(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	id, err := recipeIDParam(c)
	if err != nil {
		return err
	}

	if err := h.FavoriteService.Remove(c.Request.Context(), userID, id); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// AddToCart 加入购物车
func (h *Recipe) AddToCart(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	id, err := recipeIDParam(c)
	if err != nil {
		return err
	}

	brief, err := h.CartService.Add(c.Request.Context(), userID, id)
	if err != nil {
		return err
	}
	response.Success(c, brief)
	return nil
}

// RemoveFromCart 移出购物车
func (h *Recipe) RemoveFromCart(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	id, err := recipeIDParam(c)
	if err != nil {
		return err
	}

	if err := h.CartService.Remove(c.Request.Context(), userID, id); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// DownloadShoppingCart 聚合购物车并导出 CSV
// 全程内存缓冲，并发下载互不影响
func (h *Recipe) DownloadShoppingCart(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	items, err := h.ShoppingListService.Build(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	data, err := h.ShoppingListService.ExportCSV(items)
	if err != nil {
		return err
	}

	c.Header("Content-Disposition", `attachment; filename="shopping_cart.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	return nil
}

// GetLink 菜谱短链接
func (h *Recipe) GetLink(c *gin.Context) error {
	id, err := recipeIDParam(c)
	if err != nil {
		return err
	}

	link, err := h.RecipeService.ShareLink(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, types.ShareLinkResponse{ShortLink: link})
	return nil
}

// ResolveShareLink 短码跳转到菜谱详情
func (h *Recipe) ResolveShareLink(c *gin.Context) {
	id, ok := h.RecipeService.ResolveShareCode(c.Param("code"))
	if !ok {
		response.Abort(c, http.StatusNotFound, "链接无效")
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/api/v1/recipes/%d", id))
}
