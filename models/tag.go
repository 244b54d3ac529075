package models

// Tag 标签目录
type Tag struct {
	ID    int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"column:name;type:varchar(50);not null" json:"name"`
	Color string `gorm:"column:color;type:varchar(16);not null;default:''" json:"color"`
	Slug  string `gorm:"column:slug;type:varchar(64);not null;uniqueIndex:uk_slug" json:"slug"`
}

func (Tag) TableName() string { return "tags" }
