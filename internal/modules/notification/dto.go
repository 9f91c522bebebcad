package notification

import "time"

// CreateRequest is the payload for POST /notifications. The read flag is
// always forced to false regardless of what the caller sends.
type CreateRequest struct {
	UserID    int64      `json:"userId" validate:"required"`
	Message   string     `json:"message" validate:"required"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// UnreadCountResponse is the payload of GET /notifications/:id/count.
type UnreadCountResponse struct {
	UnreadCount int64 `json:"unreadCount"`
}

// MarkAllReadResponse reports how many records a read-all touched.
type MarkAllReadResponse struct {
	MarkedAsRead int64 `json:"markedAsRead"`
}
