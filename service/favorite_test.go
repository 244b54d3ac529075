package service

import (
	"testing"

	"Umami/dao"
	"Umami/models"
)

// IsFavorited 先走缓存：Add 回填之后，就算库里的行没了也该命中缓存
func TestFavoriteIsFavoritedReadsCache(t *testing.T) {
	db := newTestDB(t)
	c := newTestCache(t)
	svc := &FavoriteService{
		FavoriteDAO: dao.NewFavoriteDAO(db),
		RecipeDAO:   dao.NewRecipeDAO(db),
		Cache:       c,
	}
	u := seedUser(t, db, "a@test.com", "alice")
	r := seedRecipe(t, db, u.ID, "红烧肉")

	if _, err := svc.Add(testCtx(), u.ID, r.ID); err != nil {
		t.Fatalf("收藏失败: %v", err)
	}

	// 直接抹掉库里的行，缓存命中时不会察觉
	if err := db.Where("user_id = ? AND recipe_id = ?", u.ID, r.ID).
		Delete(&models.Favorite{}).Error; err != nil {
		t.Fatalf("删行失败: %v", err)
	}

	got, err := svc.IsFavorited(testCtx(), u.ID, r.ID)
	if err != nil {
		t.Fatalf("IsFavorited 失败: %v", err)
	}
	if !got {
		t.Fatal("Add 已回填缓存，IsFavorited 应命中缓存返回 true")
	}
}

// 缓存没写过时回源数据库并回填
func TestFavoriteIsFavoritedBackfill(t *testing.T) {
	db := newTestDB(t)
	c := newTestCache(t)
	favDAO := dao.NewFavoriteDAO(db)
	svc := &FavoriteService{
		FavoriteDAO: favDAO,
		RecipeDAO:   dao.NewRecipeDAO(db),
		Cache:       c,
	}
	u := seedUser(t, db, "a@test.com", "alice")
	r := seedRecipe(t, db, u.ID, "红烧肉")

	// 绕开 service 直接写库，缓存里什么都没有
	if err := favDAO.Add(testCtx(), u.ID, r.ID); err != nil {
		t.Fatalf("收藏失败: %v", err)
	}
	if _, hit := c.GetFavorite(testCtx(), u.ID, r.ID); hit {
		t.Fatal("还没读过，缓存不应有值")
	}

	got, err := svc.IsFavorited(testCtx(), u.ID, r.ID)
	if err != nil {
		t.Fatalf("IsFavorited 失败: %v", err)
	}
	if !got {
		t.Fatal("库里有行，应返回 true")
	}
	if v, hit := c.GetFavorite(testCtx(), u.ID, r.ID); !hit || !v {
		t.Fatal("回源之后应回填缓存")
	}
}

// 取消收藏后缓存标记翻成 false
func TestFavoriteRemoveUpdatesCache(t *testing.T) {
	db := newTestDB(t)
	c := newTestCache(t)
	svc := &FavoriteService{
		FavoriteDAO: dao.NewFavoriteDAO(db),
		RecipeDAO:   dao.NewRecipeDAO(db),
		Cache:       c,
	}
	u := seedUser(t, db, "a@test.com", "alice")
	r := seedRecipe(t, db, u.ID, "红烧肉")

	if _, err := svc.Add(testCtx(), u.ID, r.ID); err != nil {
		t.Fatalf("收藏失败: %v", err)
	}
	if err := svc.Remove(testCtx(), u.ID, r.ID); err != nil {
		t.Fatalf("取消收藏失败: %v", err)
	}

	got, err := svc.IsFavorited(testCtx(), u.ID, r.ID)
	if err != nil {
		t.Fatalf("IsFavorited 失败: %v", err)
	}
	if got {
		t.Fatal("取消后应返回 false")
	}
}
