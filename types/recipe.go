package types

import "time"

// RecipeBrief 菜谱摘要投影，收藏/购物车接口的返回体
type RecipeBrief struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image"`
	CookingTime int    `json:"cooking_time"`
}

// IngredientRef 创建菜谱时的配料引用
// Amount 走字符串进来，解析失败要指名道姓报错
type IngredientRef struct {
	ID     int64  `json:"id" binding:"required"`
	Amount string `json:"amount" binding:"required"`
}

type CreateRecipeRequest struct {
	Name        string          `json:"name" binding:"required,max=250"`
	Text        string          `json:"text" binding:"required"`
	Image       string          `json:"image" binding:"required"` // base64 data-URI
	CookingTime int             `json:"cooking_time" binding:"required"`
	Tags        []int64         `json:"tags"`
	Ingredients []IngredientRef `json:"ingredients"`
}

type UpdateRecipeRequest struct {
	Name        string          `json:"name" binding:"required,max=250"`
	Text        string          `json:"text" binding:"required"`
	Image       string          `json:"image"` // 空则沿用旧图
	CookingTime int             `json:"cooking_time" binding:"required"`
	Tags        []int64         `json:"tags"`
	Ingredients []IngredientRef `json:"ingredients"`
}

// IngredientLine 菜谱详情里的配料行
type IngredientLine struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	MeasurementUnit string  `json:"measurement_unit"`
	Amount          float64 `json:"amount"`
}

type TagView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Slug  string `json:"slug"`
}

type RecipeDetail struct {
	ID                int64            `json:"id"`
	Author            UserProfile      `json:"author"`
	Name              string           `json:"name"`
	Text              string           `json:"text"`
	Image             string           `json:"image"`
	CookingTime       int              `json:"cooking_time"`
	Tags              []TagView        `json:"tags"`
	Ingredients       []IngredientLine `json:"ingredients"`
	IsFavorited       bool             `json:"is_favorited"`
	IsInShoppingCart  bool             `json:"is_in_shopping_cart"`
	CreatedAt         time.Time        `json:"created_at"`
}

type RecipeListQuery struct {
	PageQuery
	Author           int64    `form:"author"`
	Tags             []string `form:"tags"`
	IsFavorited      bool     `form:"is_favorited"`
	IsInShoppingCart bool     `form:"is_in_shopping_cart"`
}

type ShareLinkResponse struct {
	ShortLink string `json:"short-link"`
}
