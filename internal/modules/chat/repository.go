package chat

import (
	"context"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, m *Message) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// ListByGroup returns the group's history oldest first, the order the
// client renders it in.
func (r *Repository) ListByGroup(ctx context.Context, groupID int64) ([]Message, error) {
	var msgs []Message
	err := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("timestamp ASC, id ASC").
		Find(&msgs).Error
	return msgs, err
}
