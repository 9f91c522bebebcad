package group

import (
	"context"
	"errors"

	"github.com/sudoLimin/OurCollege/internal/modules/user"
	"github.com/sudoLimin/OurCollege/internal/pkg/sanitize"
)

// Notifier receives group membership events for fan-out.
type Notifier interface {
	MemberJoined(ctx context.Context, groupID int64, memberName string)
}

// UserDirectory resolves accounts when members are added or listed.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindByID(ctx context.Context, id int64) (*user.User, error)
}

type Service struct {
	repo     *Repository
	users    UserDirectory
	notifier Notifier
}

func NewService(repo *Repository, users UserDirectory, notifier Notifier) *Service {
	return &Service{repo: repo, users: users, notifier: notifier}
}

func (s *Service) Create(ctx context.Context, name string, createdBy *int64) (*Group, error) {
	name = sanitize.Clean(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	g := &Group{Name: name, CreatedBy: createdBy}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Service) List(ctx context.Context) ([]Group, error) {
	return s.repo.List(ctx)
}

func (s *Service) Rename(ctx context.Context, id int64, name string) (*Group, error) {
	name = sanitize.Clean(name)
	if name == "" {
		return nil, ErrNameRequired
	}
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	g.Name = name
	if err := s.repo.Save(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// Delete removes the group and its membership rows. The two deletes are
// separate statements; orphaned member rows from a partial failure are
// harmless and invisible to member listing.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.RemoveMembersByGroup(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// AddMemberByEmail enrolls an existing account into the group and
// triggers the member_new fan-out.
func (s *Service) AddMemberByEmail(ctx context.Context, groupID int64, email string) error {
	email = sanitize.Email(email)
	if email == "" {
		return ErrEmailRequired
	}

	u, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, user.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}

	exists, err := s.repo.MemberExists(ctx, groupID, u.ID)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyMember
	}

	if err := s.repo.AddMember(ctx, &Member{GroupID: groupID, UserID: u.ID}); err != nil {
		return err
	}

	s.notifier.MemberJoined(ctx, groupID, u.Name)
	return nil
}

func (s *Service) RemoveMember(ctx context.Context, groupID, userID int64) error {
	return s.repo.RemoveMember(ctx, groupID, userID)
}

// ListMembers returns the member accounts of a group. Memberships whose
// account has disappeared are skipped.
func (s *Service) ListMembers(ctx context.Context, groupID int64) ([]user.User, error) {
	members, err := s.repo.ListMembers(ctx, groupID)
	if err != nil {
		return nil, err
	}

	users := make([]user.User, 0, len(members))
	for _, m := range members {
		u, err := s.users.FindByID(ctx, m.UserID)
		if errors.Is(err, user.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, nil
}
