package types

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Username  string `json:"username" binding:"required,max=150"`
	FirstName string `json:"first_name" binding:"required,max=150"`
	LastName  string `json:"last_name" binding:"required,max=150"`
	Password  string `json:"password" binding:"required,min=8,max=64"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// UserProfile 用户视图，is_subscribed 按查看者算
type UserProfile struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Avatar       string `json:"avatar"`
	IsSubscribed bool   `json:"is_subscribed"`
}

// AuthorWithRecipes 订阅列表里的作者视图
type AuthorWithRecipes struct {
	UserProfile
	Recipes      []RecipeBrief `json:"recipes"`
	RecipesCount int64         `json:"recipes_count"`
}

type SubscriptionListQuery struct {
	PageQuery
	RecipesLimit int `form:"recipes_limit"`
}
