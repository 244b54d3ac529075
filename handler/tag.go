package handler

import (
	"Umami/pkg/context"
	"Umami/pkg/response"
	"Umami/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Tag struct {
	TagService service.ITagService
}

func (h *Tag) RegisterRouter(r gin.IRouter) {
	g := r.Group("/v1/tags")
	g.GET("", context.Wrap(h.List))
	g.GET("/:id", context.Wrap(h.Get))
}

// List 全量标签
func (h *Tag) List(c *gin.Context) error {
	tags, err := h.TagService.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, tags)
	return nil
}

// Get 单个标签
func (h *Tag) Get(c *gin.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.NewError(http.StatusBadRequest, "id 格式错误")
	}

	tag, err := h.TagService.Get(c.Request.Context(), id)
	if err != nil {
		return err
	}
	response.Success(c, tag)
	return nil
}
