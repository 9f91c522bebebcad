package task

import "time"

const (
	StatusOpen       = "OPEN"
	StatusInProgress = "IN_PROGRESS"
	StatusDone       = "DONE"
)

// Task is a group to-do item. Status moves OPEN -> IN_PROGRESS -> DONE,
// though any transition between the three is accepted.
type Task struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	GroupID     *int64    `gorm:"column:group_id;index:idx_tasks_group" json:"groupId,omitempty"`
	CreatedBy   *int64    `gorm:"column:created_by" json:"createdBy,omitempty"`
	Title       string    `gorm:"column:title" json:"title"`
	Description string    `gorm:"column:description" json:"description"`
	Status      string    `gorm:"column:status" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
}

func (Task) TableName() string {
	return "tasks"
}

func validStatus(s string) bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusDone:
		return true
	}
	return false
}
