package dao

import (
	"errors"
	"testing"
	"time"

	"Umami/models"

	"gorm.io/gorm"
)

func TestCartAddDuplicate(t *testing.T) {
	db := newTestDB(t)
	d := NewShoppingCartDAO(db)
	u := seedUser(t, db, "a@test.com", "alice")
	r := seedRecipe(t, db, u.ID, "红烧肉")

	if err := d.Add(testCtx(), u.ID, r.ID); err != nil {
		t.Fatalf("首次加入购物车失败: %v", err)
	}
	err := d.Add(testCtx(), u.ID, r.ID)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("重复加入应返回 ErrDuplicatedKey，实际: %v", err)
	}

	count, err := d.Count(testCtx(), "user_id = ? AND recipe_id = ?", u.ID, r.ID)
	if err != nil {
		t.Fatalf("count 失败: %v", err)
	}
	if count != 1 {
		t.Fatalf("重复加入后应只有一条记录，实际 %d 条", count)
	}
}

// 车里两个菜谱共用土豆，联查行要按入车时间再按配料行 ID 排
func TestCartListCartLines(t *testing.T) {
	db := newTestDB(t)
	d := NewShoppingCartDAO(db)
	u := seedUser(t, db, "a@test.com", "alice")

	potato := seedIngredient(t, db, "土豆", "克")
	salt := seedIngredient(t, db, "盐", "克")

	r1 := seedRecipe(t, db, u.ID, "土豆炖牛肉")
	r2 := seedRecipe(t, db, u.ID, "酸辣土豆丝")

	lines := []models.RecipeIngredient{
		{RecipeID: r1.ID, IngredientID: potato.ID, Amount: 200},
		{RecipeID: r1.ID, IngredientID: salt.ID, Amount: 5},
		{RecipeID: r2.ID, IngredientID: potato.ID, Amount: 300},
	}
	for i := range lines {
		if err := db.Create(&lines[i]).Error; err != nil {
			t.Fatalf("插入配料行失败: %v", err)
		}
	}

	// r2 先入车，r1 后入车
	base := time.Now().Add(-time.Hour)
	carts := []models.ShoppingCart{
		{UserID: u.ID, RecipeID: r2.ID, CreatedAt: base},
		{UserID: u.ID, RecipeID: r1.ID, CreatedAt: base.Add(time.Minute)},
	}
	for i := range carts {
		if err := db.Create(&carts[i]).Error; err != nil {
			t.Fatalf("插入购物车失败: %v", err)
		}
	}

	got, err := d.ListCartLines(testCtx(), u.ID)
	if err != nil {
		t.Fatalf("ListCartLines 失败: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("应有 3 条配料行，实际 %d", len(got))
	}

	// 先是 r2 的行，然后 r1 的两行按配料行 ID 升序
	wantRecipes := []int64{r2.ID, r1.ID, r1.ID}
	for i, ln := range got {
		if ln.RecipeID != wantRecipes[i] {
			t.Fatalf("第 %d 行菜谱应为 %d，实际 %d", i, wantRecipes[i], ln.RecipeID)
		}
	}
	if got[0].IngredientID != potato.ID || got[0].Amount != 300 {
		t.Errorf("第 0 行应是 r2 的土豆 300，实际 %+v", got[0])
	}
	if got[1].Name != "土豆" || got[1].MeasurementUnit != "克" {
		t.Errorf("配料名称和单位应联查带出，实际 %+v", got[1])
	}

	// 别人的购物车不受影响
	other := seedUser(t, db, "b@test.com", "bob")
	empty, err := d.ListCartLines(testCtx(), other.ID)
	if err != nil {
		t.Fatalf("ListCartLines 失败: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("空购物车应返回空列表，实际 %d 条", len(empty))
	}
}
