package models

import "time"

// ShoppingCart 购物车记录
// 唯一键: user_id + recipe_id
type ShoppingCart struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_user_recipe_cart,priority:1" json:"user_id"`
	RecipeID  int64     `gorm:"column:recipe_id;not null;uniqueIndex:uk_user_recipe_cart,priority:2" json:"recipe_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ShoppingCart) TableName() string { return "shopping_carts" }

// CartIngredientLine 购物车聚合联查结果
type CartIngredientLine struct {
	RecipeID        int64   `gorm:"column:recipe_id" json:"recipe_id"`
	IngredientID    int64   `gorm:"column:ingredient_id" json:"ingredient_id"`
	Name            string  `gorm:"column:name" json:"name"`
	MeasurementUnit string  `gorm:"column:measurement_unit" json:"measurement_unit"`
	Amount          float64 `gorm:"column:amount" json:"amount"`
}
