package handler

import (
	"Umami/pkg/context"
	"Umami/pkg/response"
	"Umami/service"
	"Umami/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Ingredient struct {
	IngredientService service.IIngredientService
}

func (h *Ingredient) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/ingredients")
	g.GET("", context.Wrap(h.Search))
	g.GET("/:id", context.Wrap(h.Get))
}

// Search 配料前缀检索
func (h *Ingredient) Search(c *gin.Context) error {
	var req types.IngredientSearchQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数错误: "+err.Error())
	}

	items, err := h.IngredientService.Search(c.Request.Context(), req.Name)
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

// Get 单个配料
func (h *Ingredient) Get(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "id 格式错误")
	}

	item, err := h.IngredientService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}
