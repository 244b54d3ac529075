package service

import (
	"testing"
	"time"

	"Umami/dao"
	"Umami/dao/cache"
	"Umami/models"

	"gorm.io/gorm"
)

func newRecipeServiceForTest(db *gorm.DB, c *cache.RelationCache) *RecipeService {
	favSvc := &FavoriteService{
		FavoriteDAO: dao.NewFavoriteDAO(db),
		RecipeDAO:   dao.NewRecipeDAO(db),
		Cache:       c,
	}
	cartSvc := &CartService{
		CartDAO:   dao.NewShoppingCartDAO(db),
		RecipeDAO: dao.NewRecipeDAO(db),
		Cache:     c,
	}
	return &RecipeService{
		RecipeDAO:       dao.NewRecipeDAO(db),
		TagDAO:          dao.NewTagDAO(db),
		IngredientDAO:   dao.NewIngredientDAO(db),
		UserDAO:         dao.NewUsers(db),
		FavoriteDAO:     dao.NewFavoriteDAO(db),
		CartDAO:         dao.NewShoppingCartDAO(db),
		SubscriptionDAO: dao.NewSubscriptionDAO(db),
		FavoriteService: favSvc,
		CartService:     cartSvc,
		Cache:           c,
	}
}

func seedRecipeWithRelations(t *testing.T, db *gorm.DB, authorID int64) *models.Recipe {
	t.Helper()
	ingredient := &models.Ingredient{Name: "土豆", MeasurementUnit: "克"}
	if err := db.Create(ingredient).Error; err != nil {
		t.Fatalf("插入配料失败: %v", err)
	}
	tag := &models.Tag{Name: "午餐", Slug: "lunch", Color: "#49B64E"}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("插入标签失败: %v", err)
	}
	recipe := &models.Recipe{
		AuthorID:    authorID,
		Name:        "土豆炖牛肉",
		Text:        "炖一小时",
		CookingTime: 60,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	err := dao.NewRecipeDAO(db).CreateWithRelations(testCtx(), recipe,
		[]models.RecipeIngredient{{IngredientID: ingredient.ID, Amount: 200}},
		[]int64{tag.ID})
	if err != nil {
		t.Fatalf("创建菜谱失败: %v", err)
	}
	return recipe
}

// 单条详情的收藏/购物车标记走缓存优先：
// 标记已经缓存时，就算库里的行没了详情也按缓存报
func TestRecipeGetReadsRelationCache(t *testing.T) {
	db := newTestDB(t)
	c := newTestCache(t)
	svc := newRecipeServiceForTest(db, c)
	u := seedUser(t, db, "a@test.com", "alice")
	recipe := seedRecipeWithRelations(t, db, u.ID)

	if _, err := svc.FavoriteService.Add(testCtx(), u.ID, recipe.ID); err != nil {
		t.Fatalf("收藏失败: %v", err)
	}
	if _, err := svc.CartService.Add(testCtx(), u.ID, recipe.ID); err != nil {
		t.Fatalf("加购物车失败: %v", err)
	}

	// 直接抹掉库里的关系行，命中缓存才会仍然为 true
	if err := db.Where("user_id = ?", u.ID).Delete(&models.Favorite{}).Error; err != nil {
		t.Fatalf("删行失败: %v", err)
	}
	if err := db.Where("user_id = ?", u.ID).Delete(&models.ShoppingCart{}).Error; err != nil {
		t.Fatalf("删行失败: %v", err)
	}

	detail, err := svc.Get(testCtx(), u.ID, recipe.ID)
	if err != nil {
		t.Fatalf("查详情失败: %v", err)
	}
	if !detail.IsFavorited {
		t.Error("is_favorited 应命中缓存为 true")
	}
	if !detail.IsInShoppingCart {
		t.Error("is_in_shopping_cart 应命中缓存为 true")
	}
}

// 删菜谱要把它名下所有人的标记缓存清掉
func TestRecipeDeleteInvalidatesRelationCache(t *testing.T) {
	db := newTestDB(t)
	c := newTestCache(t)
	svc := newRecipeServiceForTest(db, c)
	u := seedUser(t, db, "a@test.com", "alice")
	recipe := seedRecipeWithRelations(t, db, u.ID)

	if _, err := svc.FavoriteService.Add(testCtx(), u.ID, recipe.ID); err != nil {
		t.Fatalf("收藏失败: %v", err)
	}
	if _, hit := c.GetFavorite(testCtx(), u.ID, recipe.ID); !hit {
		t.Fatal("收藏后缓存应有标记")
	}

	if err := svc.Delete(testCtx(), u.ID, recipe.ID); err != nil {
		t.Fatalf("删除菜谱失败: %v", err)
	}

	if _, hit := c.GetFavorite(testCtx(), u.ID, recipe.ID); hit {
		t.Fatal("菜谱删除后收藏标记缓存应清掉")
	}
	if _, hit := c.GetInCart(testCtx(), u.ID, recipe.ID); hit {
		t.Fatal("菜谱删除后购物车标记缓存应清掉")
	}
}
