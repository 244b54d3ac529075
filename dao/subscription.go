package dao

import (
	"Umami/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type SubscriptionDAO struct {
	Repo[models.Subscription]
}

func NewSubscriptionDAO(db *gorm.DB) *SubscriptionDAO {
	return &SubscriptionDAO{Repo: NewRepo[models.Subscription](db)}
}

// Add 订阅作者，重复订阅返回 gorm.ErrDuplicatedKey
func (d *SubscriptionDAO) Add(ctx context.Context, subscriberID, authorID int64) error {
	item := models.Subscription{
		SubscriberID: subscriberID,
		AuthorID:     authorID,
		CreatedAt:    time.Now(),
	}
	return d.Db.WithContext(ctx).Create(&item).Error
}

// Remove 取消订阅，返回是否真的删到了记录
func (d *SubscriptionDAO) Remove(ctx context.Context, subscriberID, authorID int64) (bool, error) {
	res := d.Db.WithContext(ctx).
		Where("subscriber_id = ? AND author_id = ?", subscriberID, authorID).
		Delete(&models.Subscription{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IsSubscribed 是否已订阅
func (d *SubscriptionDAO) IsSubscribed(ctx context.Context, subscriberID, authorID int64) (bool, error) {
	return d.IsExist(ctx, "subscriber_id = ? AND author_id = ?", subscriberID, authorID)
}

// ListAuthorIDs 订阅的作者 ID，按订阅时间倒序分页
func (d *SubscriptionDAO) ListAuthorIDs(ctx context.Context, subscriberID int64, limit, offset int) ([]int64, int64, error) {
	var total int64
	err := d.Db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("subscriber_id = ?", subscriberID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var ids []int64
	err = d.Db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("subscriber_id = ?", subscriberID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Pluck("author_id", &ids).Error
	return ids, total, err
}

// SubscribedSet 在给定作者集合里，该用户订阅了哪些
func (d *SubscriptionDAO) SubscribedSet(ctx context.Context, subscriberID int64, authorIDs []int64) (map[int64]struct{}, error) {
	result := make(map[int64]struct{})
	if subscriberID <= 0 || len(authorIDs) == 0 {
		return result, nil
	}
	var ids []int64
	err := d.Db.WithContext(ctx).
		Model(&models.Subscription{}).
		Where("subscriber_id = ? AND author_id IN ?", subscriberID, authorIDs).
		Pluck("author_id", &ids).Error
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		result[id] = struct{}{}
	}
	return result, nil
}
