package models

// Ingredient 配料目录，静态参考数据
// 唯一键: name + measurement_unit，同名不同单位算两种配料
type Ingredient struct {
	ID              int64  `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name            string `gorm:"column:name;type:varchar(250);not null;uniqueIndex:uk_name_unit,priority:1" json:"name"`
	MeasurementUnit string `gorm:"column:measurement_unit;type:varchar(100);not null;uniqueIndex:uk_name_unit,priority:2" json:"measurement_unit"`
}

func (Ingredient) TableName() string { return "ingredients" }
