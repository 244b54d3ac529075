package types

// ShoppingListItem 聚合结果的一行：配料名、总量、单位
// 顺序是购物车里首次出现的顺序
type ShoppingListItem struct {
	IngredientID    int64   `json:"ingredient_id"`
	Name            string  `json:"name"`
	Amount          float64 `json:"amount"`
	MeasurementUnit string  `json:"measurement_unit"`
}
