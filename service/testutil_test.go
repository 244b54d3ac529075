package service

import (
	"Umami/dao/cache"
	"Umami/models"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 同线上一样打开 TranslateError，唯一索引冲突转 gorm.ErrDuplicatedKey
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "test.db") + "?_busy_timeout=5000"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Discard,
	})
	if err != nil {
		t.Fatalf("打开测试库失败: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Ingredient{},
		&models.Tag{},
		&models.Recipe{},
		&models.RecipeIngredient{},
		&models.RecipeTag{},
		&models.Favorite{},
		&models.ShoppingCart{},
		&models.Subscription{},
	)
	if err != nil {
		t.Fatalf("建表失败: %v", err)
	}
	return db
}

// newTestCache 进程内 redis，不依赖外部服务
func newTestCache(t *testing.T) *cache.RelationCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return cache.NewRelationCache(client)
}

func seedUser(t *testing.T, db *gorm.DB, email, username string) *models.User {
	t.Helper()
	u := &models.User{Email: email, Username: username, Password: "x"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("插入用户失败: %v", err)
	}
	return u
}

func seedRecipe(t *testing.T, db *gorm.DB, authorID int64, name string) *models.Recipe {
	t.Helper()
	r := &models.Recipe{
		AuthorID:    authorID,
		Name:        name,
		Text:        "做法",
		CookingTime: 30,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if err := db.Create(r).Error; err != nil {
		t.Fatalf("插入菜谱失败: %v", err)
	}
	return r
}

func testCtx() context.Context { return context.Background() }
