package dao

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"Umami/models"

	"gorm.io/gorm"
)

func TestSubscriptionAddDuplicate(t *testing.T) {
	db := newTestDB(t)
	d := NewSubscriptionDAO(db)
	alice := seedUser(t, db, "a@test.com", "alice")
	bob := seedUser(t, db, "b@test.com", "bob")

	if err := d.Add(testCtx(), alice.ID, bob.ID); err != nil {
		t.Fatalf("首次订阅失败: %v", err)
	}
	err := d.Add(testCtx(), alice.ID, bob.ID)
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("重复订阅应返回 ErrDuplicatedKey，实际: %v", err)
	}

	// 方向相反不算重复
	if err := d.Add(testCtx(), bob.ID, alice.ID); err != nil {
		t.Fatalf("反向订阅应当成功: %v", err)
	}
}

func TestSubscriptionRemove(t *testing.T) {
	db := newTestDB(t)
	d := NewSubscriptionDAO(db)
	alice := seedUser(t, db, "a@test.com", "alice")
	bob := seedUser(t, db, "b@test.com", "bob")

	removed, err := d.Remove(testCtx(), alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("remove 失败: %v", err)
	}
	if removed {
		t.Fatal("未订阅时 Remove 应返回 false")
	}

	if err := d.Add(testCtx(), alice.ID, bob.ID); err != nil {
		t.Fatalf("订阅失败: %v", err)
	}
	removed, err = d.Remove(testCtx(), alice.ID, bob.ID)
	if err != nil {
		t.Fatalf("remove 失败: %v", err)
	}
	if !removed {
		t.Fatal("已订阅时 Remove 应返回 true")
	}
}

func TestSubscriptionListAuthorIDs(t *testing.T) {
	db := newTestDB(t)
	d := NewSubscriptionDAO(db)
	alice := seedUser(t, db, "a@test.com", "alice")

	// 手工控制订阅时间，晚订的排前面
	var authors []*models.User
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		author := seedUser(t, db, fmt.Sprintf("author%d@test.com", i), fmt.Sprintf("author%d", i))
		authors = append(authors, author)
		sub := models.Subscription{
			SubscriberID: alice.ID,
			AuthorID:     author.ID,
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}
		if err := db.Create(&sub).Error; err != nil {
			t.Fatalf("插入订阅失败: %v", err)
		}
	}

	ids, total, err := d.ListAuthorIDs(testCtx(), alice.ID, 2, 0)
	if err != nil {
		t.Fatalf("ListAuthorIDs 失败: %v", err)
	}
	if total != 3 {
		t.Fatalf("总数应为 3，实际 %d", total)
	}
	if len(ids) != 2 {
		t.Fatalf("第一页应有 2 条，实际 %d", len(ids))
	}
	if ids[0] != authors[2].ID || ids[1] != authors[1].ID {
		t.Fatalf("应按订阅时间倒序，实际 %v", ids)
	}

	ids, _, err = d.ListAuthorIDs(testCtx(), alice.ID, 2, 2)
	if err != nil {
		t.Fatalf("ListAuthorIDs 第二页失败: %v", err)
	}
	if len(ids) != 1 || ids[0] != authors[0].ID {
		t.Fatalf("第二页应只剩最早订阅的作者，实际 %v", ids)
	}
}

func TestSubscribedSet(t *testing.T) {
	db := newTestDB(t)
	d := NewSubscriptionDAO(db)
	alice := seedUser(t, db, "a@test.com", "alice")
	bob := seedUser(t, db, "b@test.com", "bob")
	carol := seedUser(t, db, "c@test.com", "carol")

	if err := d.Add(testCtx(), alice.ID, bob.ID); err != nil {
		t.Fatalf("订阅失败: %v", err)
	}

	set, err := d.SubscribedSet(testCtx(), alice.ID, []int64{bob.ID, carol.ID})
	if err != nil {
		t.Fatalf("SubscribedSet 失败: %v", err)
	}
	if _, ok := set[bob.ID]; !ok {
		t.Error("bob 已订阅，集合里应有")
	}
	if _, ok := set[carol.ID]; ok {
		t.Error("carol 未订阅，集合里不应有")
	}

	// 游客视角：subscriberID 为 0 直接返回空集合
	set, err = d.SubscribedSet(testCtx(), 0, []int64{bob.ID})
	if err != nil {
		t.Fatalf("SubscribedSet 失败: %v", err)
	}
	if len(set) != 0 {
		t.Fatalf("游客应得到空集合，实际 %d 条", len(set))
	}
}
