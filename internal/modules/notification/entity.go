package notification

import "time"

// Event type tags carried by broadcast messages.
const (
	TypeTaskNew     = "task_new"
	TypeTaskUpdated = "task_updated"
	TypeTaskDeleted = "task_deleted"
	TypeMemberNew   = "member_new"
	TypeMaterialNew = "material_new"
	TypeChatNew     = "chat_new"
)

// Notification is one entry in a user's mailbox. IsRead starts false and
// only ever transitions to true.
type Notification struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	UserID    int64     `gorm:"column:user_id;index:idx_notifications_user_unread" json:"userId"`
	Message   string    `gorm:"column:message" json:"message"`
	IsRead    bool      `gorm:"column:is_read;index:idx_notifications_user_unread" json:"read"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Notification) TableName() string {
	return "notifications"
}
