package types

// Pagination 分页常量
const (
	DefaultPage     int = 1  // 默认页码
	DefaultPageSize int = 10 // 默认每页数量
	MaxPageSize     int = 100
)

type PageQuery struct {
	Page  int `form:"page"`
	Limit int `form:"limit"`
}

// Normalize 补默认值并夹紧上限
func (q *PageQuery) Normalize() {
	if q.Page <= 0 {
		q.Page = DefaultPage
	}
	if q.Limit <= 0 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
}

func (q *PageQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

type PageResult[T any] struct {
	Count   int64 `json:"count"`
	Results []T   `json:"results"`
}
