package dao

import (
	"Umami/models"
	"context"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB 文件库 + busy_timeout，并发写不会直接报锁
// TranslateError 打开，唯一索引冲突和线上一样转成 gorm.ErrDuplicatedKey
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

func seedUser(t *testing.T, db *gorm.DB, email, username string) *models.User {
	t.Helper()
	u := &models.User{Email: email, Username: username, Password: "x"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("插入用户失败: %v", err)
	}
	return u
}

func seedIngredient(t *testing.T, db *gorm.DB, name, unit string) *models.Ingredient {
	t.Helper()
	i := &models.Ingredient{Name: name, MeasurementUnit: unit}
	if err := db.Create(i).Error; err != nil {
		t.Fatalf("插入配料失败: %v", err)
	}
	return i
}

func seedTag(t *testing.T, db *gorm.DB, name, slug string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name, Slug: slug, Color: "#49B64E"}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("插入标签失败: %v", err)
	}
	return tag
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
