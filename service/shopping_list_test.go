package service

import (
	"errors"
	"strings"
	"testing"

	"Umami/models"
	"Umami/pkg/response"
	"Umami/types"
)

func TestAggregateLinesEmpty(t *testing.T) {
	items, err := AggregateLines(nil)
	if err != nil {
		t.Fatalf("空购物车不应报错: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("空购物车应返回空列表，实际 %d 条", len(items))
	}
}

// 两个菜谱共用土豆：200 + 300 = 500，盐只出现一次
func TestAggregateLinesSum(t *testing.T) {
	lines := []models.CartIngredientLine{
		{RecipeID: 1, IngredientID: 10, Name: "土豆", MeasurementUnit: "克", Amount: 200},
		{RecipeID: 1, IngredientID: 11, Name: "盐", MeasurementUnit: "克", Amount: 5},
		{RecipeID: 2, IngredientID: 10, Name: "土豆", MeasurementUnit: "克", Amount: 300},
	}
	items, err := AggregateLines(lines)
	if err != nil {
		t.Fatalf("聚合失败: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("应聚合成 2 项，实际 %d", len(items))
	}
	// 顺序是首次出现顺序
	if items[0].IngredientID != 10 || items[0].Amount != 500 {
		t.Errorf("土豆应累加为 500，实际 %+v", items[0])
	}
	if items[1].IngredientID != 11 || items[1].Amount != 5 {
		t.Errorf("盐应为 5，实际 %+v", items[1])
	}
}

// 同名不同 ID 的配料不合并（克的糖和勺的糖是两种东西）
func TestAggregateLinesSameNameDifferentID(t *testing.T) {
	lines := []models.CartIngredientLine{
		{RecipeID: 1, IngredientID: 20, Name: "糖", MeasurementUnit: "克", Amount: 10},
		{RecipeID: 2, IngredientID: 21, Name: "糖", MeasurementUnit: "勺", Amount: 2},
	}
	items, err := AggregateLines(lines)
	if err != nil {
		t.Fatalf("聚合失败: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("同名不同 ID 应保留 2 项，实际 %d", len(items))
	}
}

// 聚合是纯函数，同样输入两次结果一致
func TestAggregateLinesDeterministic(t *testing.T) {
	lines := []models.CartIngredientLine{
		{RecipeID: 1, IngredientID: 3, Name: "鸡蛋", MeasurementUnit: "个", Amount: 2},
		{RecipeID: 1, IngredientID: 1, Name: "面粉", MeasurementUnit: "克", Amount: 500},
		{RecipeID: 2, IngredientID: 3, Name: "鸡蛋", MeasurementUnit: "个", Amount: 3},
	}
	first, err := AggregateLines(lines)
	if err != nil {
		t.Fatalf("聚合失败: %v", err)
	}
	second, err := AggregateLines(lines)
	if err != nil {
		t.Fatalf("聚合失败: %v", err)
	}
	if len(first) != len(second) {
		t.Fatalf("两次结果长度不一致: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("第 %d 项不一致: %+v vs %+v", i, first[i], second[i])
		}
	}
	if first[0].IngredientID != 3 || first[1].IngredientID != 1 {
		t.Fatalf("顺序应是首次出现顺序，实际 %+v", first)
	}
}

// 小数用量累加不能把浮点噪声漏到结果里：0.1 + 0.2 就是 0.3
func TestAggregateLinesFractionalAmounts(t *testing.T) {
	lines := []models.CartIngredientLine{
		{RecipeID: 1, IngredientID: 30, Name: "糖浆", MeasurementUnit: "升", Amount: 0.1},
		{RecipeID: 2, IngredientID: 30, Name: "糖浆", MeasurementUnit: "升", Amount: 0.2},
	}
	items, err := AggregateLines(lines)
	if err != nil {
		t.Fatalf("聚合失败: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("应聚合成 1 项，实际 %d", len(items))
	}
	if items[0].Amount != 0.3 {
		t.Fatalf("合计应为 0.3，实际 %v", items[0].Amount)
	}

	s := &ShoppingListService{}
	data, err := s.ExportCSV(items)
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}
	if got, want := string(data), "糖浆,0.3,升\n"; got != want {
		t.Fatalf("CSV 不符:\n得到 %q\n期望 %q", got, want)
	}
}

// 脏数据要报错并指明菜谱和配料，不能吞掉
func TestAggregateLinesInvalidAmount(t *testing.T) {
	lines := []models.CartIngredientLine{
		{RecipeID: 1, IngredientID: 10, Name: "土豆", MeasurementUnit: "克", Amount: 200},
		{RecipeID: 7, IngredientID: 42, Name: "盐", MeasurementUnit: "克", Amount: -1},
	}
	_, err := AggregateLines(lines)
	if err == nil {
		t.Fatal("负数用量应报错")
	}
	var biz *response.BizError
	if !errors.As(err, &biz) {
		t.Fatalf("应是业务错误，实际: %T", err)
	}
	if !strings.Contains(biz.Msg, "7") || !strings.Contains(biz.Msg, "42") {
		t.Errorf("错误信息应指明菜谱 7 和配料 42，实际: %s", biz.Msg)
	}
}

// 导出行：首字母大写的名称、去掉多余零的总量、单位
func TestExportCSV(t *testing.T) {
	s := &ShoppingListService{}
	data, err := s.ExportCSV([]types.ShoppingListItem{
		{IngredientID: 10, Name: "potato", Amount: 500, MeasurementUnit: "g"},
		{IngredientID: 11, Name: "salt", Amount: 5.5, MeasurementUnit: "g"},
		{IngredientID: 12, Name: "盐", Amount: 3, MeasurementUnit: "克"},
	})
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}
	got := string(data)
	want := "Potato,500,g\nSalt,5.5,g\n盐,3,克\n"
	if got != want {
		t.Fatalf("CSV 不符:\n得到 %q\n期望 %q", got, want)
	}
}

// 空购物车导出空文件，不算错误
func TestExportCSVEmpty(t *testing.T) {
	s := &ShoppingListService{}
	data, err := s.ExportCSV(nil)
	if err != nil {
		t.Fatalf("导出失败: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("空列表应导出空内容，实际 %q", string(data))
	}
}
