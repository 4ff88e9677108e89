package model

import "github.com/videomack/videomack/pkg/constants"

// Comment is immutable once created. ParentId is kept for threading but no
// read path groups by it yet.
type Comment struct {
	Id        string `gorm:"column:id;primaryKey" json:"id"`
	VideoId   string `gorm:"column:video_id" json:"video_id"`
	UserId    string `gorm:"column:user_id" json:"user_id"`
	Username  string `gorm:"column:username" json:"username"`
	Content   string `gorm:"column:content" json:"content"`
	CreatedAt string `gorm:"column:created_at" json:"created_at"`
	ParentId  string `gorm:"column:parent_id" json:"parent_id"`
}

func (c *Comment) TableName() string {
	return constants.CommentTableName
}
