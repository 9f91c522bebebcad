package chat

import "time"

// Message is a persisted group chat line.
type Message struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	GroupID   int64     `gorm:"column:group_id;index:idx_chat_messages_group" json:"groupId"`
	UserID    *int64    `gorm:"column:user_id" json:"userId,omitempty"`
	UserName  string    `gorm:"column:user_name" json:"userName"`
	Content   string    `gorm:"column:content" json:"content"`
	Timestamp time.Time `gorm:"column:timestamp" json:"timestamp"`
}

func (Message) TableName() string {
	return "chat_messages"
}
