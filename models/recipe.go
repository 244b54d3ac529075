package models

import "time"

type Recipe struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	AuthorID    int64     `gorm:"column:author_id;not null;index:idx_author" json:"author_id"`
	Name        string    `gorm:"column:name;type:varchar(250);not null" json:"name"`
	Text        string    `gorm:"column:text;type:text" json:"text"`
	Image       string    `gorm:"column:image;type:varchar(255);not null;default:''" json:"image"`
	CookingTime int       `gorm:"column:cooking_time;not null" json:"cooking_time"` // 分钟
	CreatedAt   time.Time `gorm:"column:created_at;index:idx_created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Recipe) TableName() string { return "recipes" }

// RecipeIngredient 菜谱配料行
// 唯一键: recipe_id + ingredient_id，一个菜谱里同一配料只有一行
// amount 定点小数，入库前就已校验，聚合时不再解析字符串
type RecipeIngredient struct {
	ID           int64   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RecipeID     int64   `gorm:"column:recipe_id;not null;uniqueIndex:uk_recipe_ingredient,priority:1" json:"recipe_id"`
	IngredientID int64   `gorm:"column:ingredient_id;not null;uniqueIndex:uk_recipe_ingredient,priority:2" json:"ingredient_id"`
	Amount       float64 `gorm:"column:amount;type:decimal(10,2);not null" json:"amount"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }

// RecipeTag 菜谱与标签多对多
type RecipeTag struct {
	ID       int64 `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	RecipeID int64 `gorm:"column:recipe_id;not null;uniqueIndex:uk_recipe_tag,priority:1" json:"recipe_id"`
	TagID    int64 `gorm:"column:tag_id;not null;uniqueIndex:uk_recipe_tag,priority:2" json:"tag_id"`
}

func (RecipeTag) TableName() string { return "recipe_tags" }

// RecipeIngredientLine 配料行联查结果（配料名称、单位带出）
type RecipeIngredientLine struct {
	RecipeID        int64   `gorm:"column:recipe_id" json:"recipe_id"`
	IngredientID    int64   `gorm:"column:ingredient_id" json:"ingredient_id"`
	Name            string  `gorm:"column:name" json:"name"`
	MeasurementUnit string  `gorm:"column:measurement_unit" json:"measurement_unit"`
	Amount          float64 `gorm:"column:amount" json:"amount"`
}
