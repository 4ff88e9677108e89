package model

import "github.com/videomack/videomack/pkg/constants"

// Subscription relates a subscriber ("follower") to a target user. The pair
// is the primary key, so toggling is a pure presence check.
type Subscription struct {
	UserId       string `gorm:"column:user_id;primaryKey" json:"user_id"`
	SubscriberId string `gorm:"column:subscriber_id;primaryKey" json:"subscriber_id"`
}

func (s *Subscription) TableName() string {
	return constants.SubscriptionTableName
}

// WatchLater relates a user to a saved video. Inserting an entry also upserts
// the video row so the join side can never dangle at insert time.
type WatchLater struct {
	UserId  string `gorm:"column:user_id;primaryKey" json:"user_id"`
	VideoId string `gorm:"column:video_id;primaryKey" json:"video_id"`
}

func (w *WatchLater) TableName() string {
	return constants.WatchLaterTableName
}
