package stats

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/sudoLimin/OurCollege/internal/modules/group"
	"github.com/sudoLimin/OurCollege/internal/modules/task"
	"github.com/sudoLimin/OurCollege/internal/modules/user"
)

// GroupStats summarizes a group's task board. The completed-in-window
// counts look at when DONE tasks were created.
type GroupStats struct {
	TotalTasks              int64 `json:"totalTasks"`
	TasksOpen               int64 `json:"tasksOpen"`
	TasksInProgress         int64 `json:"tasksInProgress"`
	TasksDone               int64 `json:"tasksDone"`
	TasksCompletedToday     int64 `json:"tasksCompletedToday"`
	TasksCompletedThisWeek  int64 `json:"tasksCompletedThisWeek"`
	TasksCompletedThisMonth int64 `json:"tasksCompletedThisMonth"`
}

// MemberStats is one member's contribution to a group.
type MemberStats struct {
	UserID         int64  `json:"userId"`
	UserName       string `json:"userName"`
	TasksCreated   int64  `json:"tasksCreated"`
	TasksCompleted int64  `json:"tasksCompleted"`
}

// UserStats counts a user's tasks across all groups.
type UserStats struct {
	UserID         int64 `json:"userId"`
	TasksCreated   int64 `json:"tasksCreated"`
	TasksCompleted int64 `json:"tasksCompleted"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) GroupStats(ctx context.Context, groupID int64) (*GroupStats, error) {
	var out GroupStats

	if err := s.db.WithContext(ctx).Model(&task.Task{}).
		Where("group_id = ?", groupID).
		Count(&out.TotalTasks).Error; err != nil {
		return nil, err
	}

	byStatus := func(status string, dst *int64) error {
		return s.db.WithContext(ctx).Model(&task.Task{}).
			Where("group_id = ? AND status = ?", groupID, status).
			Count(dst).Error
	}
	if err := byStatus(task.StatusOpen, &out.TasksOpen); err != nil {
		return nil, err
	}
	if err := byStatus(task.StatusInProgress, &out.TasksInProgress); err != nil {
		return nil, err
	}
	if err := byStatus(task.StatusDone, &out.TasksDone); err != nil {
		return nil, err
	}

	now := time.Now()
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	doneSince := func(since time.Time, dst *int64) error {
		return s.db.WithContext(ctx).Model(&task.Task{}).
			Where("group_id = ? AND status = ? AND created_at > ?", groupID, task.StatusDone, since).
			Count(dst).Error
	}
	if err := doneSince(startOfToday, &out.TasksCompletedToday); err != nil {
		return nil, err
	}
	if err := doneSince(startOfToday.AddDate(0, 0, -7), &out.TasksCompletedThisWeek); err != nil {
		return nil, err
	}
	if err := doneSince(startOfToday.AddDate(0, 0, -30), &out.TasksCompletedThisMonth); err != nil {
		return nil, err
	}

	return &out, nil
}

// MemberStats reports per-member created/completed counts for a group.
// Members whose user record was deleted show up as "Unknown".
func (s *Service) MemberStats(ctx context.Context, groupID int64) ([]MemberStats, error) {
	var members []group.Member
	if err := s.db.WithContext(ctx).Where("group_id = ?", groupID).Find(&members).Error; err != nil {
		return nil, err
	}

	out := make([]MemberStats, 0, len(members))
	for _, m := range members {
		stat := MemberStats{UserID: m.UserID, UserName: "Unknown"}

		var u user.User
		if err := s.db.WithContext(ctx).First(&u, m.UserID).Error; err == nil {
			stat.UserName = u.Name
		}

		if err := s.db.WithContext(ctx).Model(&task.Task{}).
			Where("group_id = ? AND created_by = ?", groupID, m.UserID).
			Count(&stat.TasksCreated).Error; err != nil {
			return nil, err
		}
		if err := s.db.WithContext(ctx).Model(&task.Task{}).
			Where("group_id = ? AND created_by = ? AND status = ?", groupID, m.UserID, task.StatusDone).
			Count(&stat.TasksCompleted).Error; err != nil {
			return nil, err
		}

		out = append(out, stat)
	}
	return out, nil
}

func (s *Service) UserStats(ctx context.Context, userID int64) (*UserStats, error) {
	out := UserStats{UserID: userID}

	if err := s.db.WithContext(ctx).Model(&task.Task{}).
		Where("created_by = ?", userID).
		Count(&out.TasksCreated).Error; err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).Model(&task.Task{}).
		Where("created_by = ? AND status = ?", userID, task.StatusDone).
		Count(&out.TasksCompleted).Error; err != nil {
		return nil, err
	}

	return &out, nil
}
