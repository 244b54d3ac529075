package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

// 业务错误的快捷构造，Code 同时作为 HTTP 状态码
func ErrNotFound(msg string) *BizError     { return NewError(http.StatusNotFound, msg) }
func ErrConflict(msg string) *BizError     { return NewError(http.StatusConflict, msg) }
func ErrBadRequest(msg string) *BizError   { return NewError(http.StatusBadRequest, msg) }
func ErrForbidden(msg string) *BizError    { return NewError(http.StatusForbidden, msg) }
func ErrUnauthorized(msg string) *BizError { return NewError(http.StatusUnauthorized, msg) }

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}
