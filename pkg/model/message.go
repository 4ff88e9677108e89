package model

import "github.com/videomack/videomack/pkg/constants"

// Message is a directed edge between two users. No delivery or read state.
type Message struct {
	Id         string `gorm:"column:id;primaryKey" json:"id"`
	SenderId   string `gorm:"column:sender_id" json:"sender_id"`
	ReceiverId string `gorm:"column:receiver_id" json:"receiver_id"`
	Content    string `gorm:"column:content" json:"content"`
	Timestamp  string `gorm:"column:timestamp" json:"timestamp"`
}

func (m *Message) TableName() string {
	return constants.MessageTableName
}
