package model

import "github.com/videomack/videomack/pkg/constants"

// Video metadata. Liked is one shared flag for every viewer, not per-user
// state; ToggleLike flips it and moves LikesCount with it. UserId is the
// constants.SystemUserId sentinel for platform-seeded content.
type Video struct {
	Id           string `gorm:"column:id;primaryKey" json:"id"`
	Title        string `gorm:"column:title" json:"title"`
	Artist       string `gorm:"column:artist" json:"artist"`
	UserId       string `gorm:"column:user_id" json:"user_id"`
	Views        int64  `gorm:"column:views" json:"views"`
	Duration     string `gorm:"column:duration" json:"duration"`
	Thumbnail    string `gorm:"column:thumbnail" json:"thumbnail"`
	Category     string `gorm:"column:category" json:"category"`
	Liked        bool   `gorm:"column:liked" json:"liked"`
	UploadedAt   string `gorm:"column:uploaded_at" json:"uploaded_at"`
	Description  string `gorm:"column:description" json:"description"`
	IsLive       bool   `gorm:"column:is_live" json:"is_live"`
	LikesCount   int64  `gorm:"column:likes_count" json:"likes_count"`
	RepostsCount int64  `gorm:"column:reposts_count" json:"reposts_count"`
	SharesCount  int64  `gorm:"column:shares_count" json:"shares_count"`
}

func (v *Video) TableName() string {
	return constants.VideoTableName
}
