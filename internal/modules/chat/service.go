package chat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sudoLimin/OurCollege/internal/pkg/sanitize"
)

var (
	ErrGroupRequired   = errors.New("group id required")
	ErrContentRequired = errors.New("message content required")
)

// Notifier pushes the chat_new refresh signal to connected clients. Chat
// messages are broadcast-only; they never land in a mailbox.
type Notifier interface {
	ChatMessage(ctx context.Context, userName, content string)
}

type Service struct {
	repo     *Repository
	notifier Notifier
}

func NewService(repo *Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Send sanitizes and stores the message, then broadcasts it. A blank
// user name falls back to "User<id>".
func (s *Service) Send(ctx context.Context, groupID int64, userID *int64, userName, content string, at *time.Time) (*Message, error) {
	if groupID <= 0 {
		return nil, ErrGroupRequired
	}

	content = sanitize.Clean(content)
	if content == "" {
		return nil, ErrContentRequired
	}

	userName = sanitize.Clean(userName)
	if userName == "" {
		if userID != nil {
			userName = fmt.Sprintf("User%d", *userID)
		} else {
			userName = "User"
		}
	}

	m := &Message{
		GroupID:  groupID,
		UserID:   userID,
		UserName: userName,
		Content:  content,
	}
	if at != nil {
		m.Timestamp = *at
	} else {
		m.Timestamp = time.Now()
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	s.notifier.ChatMessage(ctx, m.UserName, m.Content)
	return m, nil
}

func (s *Service) History(ctx context.Context, groupID int64) ([]Message, error) {
	return s.repo.ListByGroup(ctx, groupID)
}
