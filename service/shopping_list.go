package service

import (
	"Umami/dao"
	"Umami/models"
	"Umami/pkg/response"
	"Umami/pkg/utils"
	"Umami/types"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"math"
)

var _ IShoppingListService = (*ShoppingListService)(nil)

type IShoppingListService interface {
	Build(ctx context.Context, userID int64) ([]types.ShoppingListItem, error)
	ExportCSV(items []types.ShoppingListItem) ([]byte, error)
}

type ShoppingListService struct {
	CartDAO *dao.ShoppingCartDAO
}

// Build 聚合用户购物车里所有菜谱的配料用量
func (s *ShoppingListService) Build(ctx context.Context, userID int64) ([]types.ShoppingListItem, error) {
	lines, err := s.CartDAO.ListCartLines(ctx, userID)
	if err != nil {
		return nil, err
	}
	return AggregateLines(lines)
}

// AggregateLines 按配料 ID 累加用量，纯函数
// 桶的顺序是首次出现顺序；同名不同 ID 的配料不合并
// 空购物车返回空列表，不算错误
func AggregateLines(lines []models.CartIngredientLine) ([]types.ShoppingListItem, error) {
	index := make(map[int64]int, len(lines))
	items := make([]types.ShoppingListItem, 0, len(lines))

	for _, ln := range lines {
		if ln.Amount <= 0 || math.IsNaN(ln.Amount) || math.IsInf(ln.Amount, 0) {
			// 脏数据不能吞掉，指明是哪个菜谱的哪个配料
			return nil, response.ErrBadRequest(fmt.Sprintf(
				"菜谱 %d 的配料 %d 数量无效", ln.RecipeID, ln.IngredientID))
		}
		if i, ok := index[ln.IngredientID]; ok {
			items[i].Amount += ln.Amount
			continue
		}
		index[ln.IngredientID] = len(items)
		items = append(items, types.ShoppingListItem{
			IngredientID:    ln.IngredientID,
			Name:            ln.Name,
			Amount:          ln.Amount,
			MeasurementUnit: ln.MeasurementUnit,
		})
	}
	// 二进制浮点累加会带出 0.30000000000000004 这类噪声
	// 存储本来就是两位小数，合计也收敛到两位
	for i := range items {
		items[i].Amount = math.Round(items[i].Amount*100) / 100
	}
	return items, nil
}

// ExportCSV 聚合结果转 CSV，全程内存缓冲，不落临时文件
// 每行：首字母大写的配料名、总量、单位
func (s *ShoppingListService) ExportCSV(items []types.ShoppingListItem) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, item := range items {
		row := []string{
			utils.Capitalize(item.Name),
			utils.FormatAmount(item.Amount),
			item.MeasurementUnit,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
