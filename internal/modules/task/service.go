package task

import (
	"context"

	"github.com/sudoLimin/OurCollege/internal/pkg/sanitize"
)

// Notifier receives task lifecycle events. Created events fan out to the
// group's mailboxes; update/delete are broadcast-only refresh signals.
type Notifier interface {
	TaskCreated(ctx context.Context, groupID *int64, title string)
	TaskUpdated(ctx context.Context, title string)
	TaskDeleted(ctx context.Context)
}

type Service struct {
	repo     *Repository
	notifier Notifier
}

func NewService(repo *Repository, notifier Notifier) *Service {
	return &Service{repo: repo, notifier: notifier}
}

// Create stores the task with status OPEN and triggers the task_new
// fan-out. The task is created even when notification delivery later
// fails; the notifier never returns an error.
func (s *Service) Create(ctx context.Context, groupID, createdBy *int64, title, description string) (*Task, error) {
	title = sanitize.Clean(title)
	description = sanitize.Clean(description)
	if title == "" {
		return nil, ErrTitleRequired
	}

	t := &Task{
		GroupID:     groupID,
		CreatedBy:   createdBy,
		Title:       title,
		Description: description,
		Status:      StatusOpen,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}

	s.notifier.TaskCreated(ctx, t.GroupID, t.Title)
	return t, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Task, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) ListByGroup(ctx context.Context, groupID int64) ([]Task, error) {
	return s.repo.ListByGroup(ctx, groupID)
}

func (s *Service) Update(ctx context.Context, id int64, title, description, status string) (*Task, error) {
	title = sanitize.Clean(title)
	description = sanitize.Clean(description)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Title = title
	t.Description = description
	t.Status = status
	if err := s.repo.Save(ctx, t); err != nil {
		return nil, err
	}

	s.notifier.TaskUpdated(ctx, t.Title)
	return t, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*Task, error) {
	if !validStatus(status) {
		return nil, ErrInvalidStatus
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.Status = status
	if err := s.repo.Save(ctx, t); err != nil {
		return nil, err
	}

	s.notifier.TaskUpdated(ctx, t.Title)
	return t, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.notifier.TaskDeleted(ctx)
	return nil
}
