package models

import "time"

// Favorite 收藏记录
// 唯一键: user_id + recipe_id，重复收藏靠唯一索引拦截
type Favorite struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_recipe,priority:1" json:"user_id"`
	RecipeID  int64     `gorm:"column:recipe_id;not null;uniqueIndex:uk_user_recipe,priority:2" json:"recipe_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Favorite) TableName() string { return "favorites" }
