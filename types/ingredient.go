package types

type IngredientView struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

type IngredientSearchQuery struct {
	Name string `form:"name"`
}
