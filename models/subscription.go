package models

import "time"

// Subscription 作者订阅
// 唯一键: subscriber_id + author_id
// subscriber != author 是业务规则，在 service 层拦截
type Subscription struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SubscriberID int64     `gorm:"column:subscriber_id;not null;uniqueIndex:uk_subscriber_author,priority:1" json:"subscriber_id"`
	AuthorID     int64     `gorm:"column:author_id;not null;uniqueIndex:uk_subscriber_author,priority:2" json:"author_id"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Subscription) TableName() string { return "subscriptions" }
