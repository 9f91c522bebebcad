package group

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormsqlite "gorm.io/driver/sqlite"
	_ "modernc.org/sqlite"

	"github.com/sudoLimin/OurCollege/internal/modules/user"
)

type recordedJoin struct {
	groupID int64
	name    string
}

type fakeNotifier struct {
	joins []recordedJoin
}

func (f *fakeNotifier) MemberJoined(_ context.Context, groupID int64, memberName string) {
	f.joins = append(f.joins, recordedJoin{groupID: groupID, name: memberName})
}

func setupTestService(t *testing.T) (*Service, *user.Repository, *fakeNotifier) {
	t.Helper()
	dsn := fmt.Sprintf("file:group_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{DriverName: "sqlite", DSN: dsn}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	if err != nil {
		t.Fatalf("failed to open sqlite db: %v", err)
	}
	if err := db.AutoMigrate(&Group{}, &Member{}, &user.User{}); err != nil {
		t.Fatalf("failed to migrate db: %v", err)
	}

	users := user.NewRepository(db)
	notifier := &fakeNotifier{}
	return NewService(NewRepository(db), users, notifier), users, notifier
}

func addUser(t *testing.T, users *user.Repository, name, email string) *user.User {
	t.Helper()
	u := &user.User{Name: name, Email: email, PasswordHash: "x"}
	if err := users.Create(context.Background(), u); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return u
}

func TestCreateSanitizesName(t *testing.T) {
	svc, _, _ := setupTestService(t)

	g, err := svc.Create(context.Background(), " <i>Algorithms</i>  2026 ", nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if g.Name != "Algorithms 2026" {
		t.Fatalf("expected sanitized name, got %q", g.Name)
	}

	if _, err := svc.Create(context.Background(), "<br/>", nil); !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired for markup-only name, got %v", err)
	}
}

func TestAddMemberByEmail(t *testing.T) {
	svc, users, notifier := setupTestService(t)
	ctx := context.Background()

	g, err := svc.Create(ctx, "Study", nil)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	u := addUser(t, users, "Bob", "bob@example.com")

	if err := svc.AddMemberByEmail(ctx, g.ID, "BOB@example.com "); err != nil {
		t.Fatalf("AddMemberByEmail returned error: %v", err)
	}

	ids, err := svc.repo.ListMemberIDs(ctx, g.ID)
	if err != nil {
		t.Fatalf("ListMemberIDs returned error: %v", err)
	}
	if len(ids) != 1 || ids[0] != u.ID {
		t.Fatalf("expected member ids [%d], got %v", u.ID, ids)
	}

	if len(notifier.joins) != 1 || notifier.joins[0].name != "Bob" || notifier.joins[0].groupID != g.ID {
		t.Fatalf("expected one MemberJoined event for Bob, got %+v", notifier.joins)
	}

	if err := svc.AddMemberByEmail(ctx, g.ID, "bob@example.com"); !errors.Is(err, ErrAlreadyMember) {
		t.Fatalf("expected ErrAlreadyMember, got %v", err)
	}
	if err := svc.AddMemberByEmail(ctx, g.ID, "ghost@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if err := svc.AddMemberByEmail(ctx, g.ID, "  "); !errors.Is(err, ErrEmailRequired) {
		t.Fatalf("expected ErrEmailRequired, got %v", err)
	}
}

func TestRemoveMember(t *testing.T) {
	svc, users, _ := setupTestService(t)
	ctx := context.Background()

	g, _ := svc.Create(ctx, "Study", nil)
	u := addUser(t, users, "Bob", "bob@example.com")
	if err := svc.AddMemberByEmail(ctx, g.ID, u.Email); err != nil {
		t.Fatalf("AddMemberByEmail returned error: %v", err)
	}

	if err := svc.RemoveMember(ctx, g.ID, u.ID); err != nil {
		t.Fatalf("RemoveMember returned error: %v", err)
	}
	if err := svc.RemoveMember(ctx, g.ID, u.ID); !errors.Is(err, ErrMemberNotFound) {
		t.Fatalf("expected ErrMemberNotFound on second removal, got %v", err)
	}
}

func TestListMembersSkipsDeletedAccounts(t *testing.T) {
	svc, users, _ := setupTestService(t)
	ctx := context.Background()

	g, _ := svc.Create(ctx, "Study", nil)
	alice := addUser(t, users, "Alice", "alice@example.com")
	bob := addUser(t, users, "Bob", "bob@example.com")
	_ = svc.AddMemberByEmail(ctx, g.ID, alice.Email)
	_ = svc.AddMemberByEmail(ctx, g.ID, bob.Email)

	// Simulate an account deleted behind the membership row.
	if err := svc.repo.db.Delete(&user.User{}, bob.ID).Error; err != nil {
		t.Fatalf("failed to delete user: %v", err)
	}

	members, err := svc.ListMembers(ctx, g.ID)
	if err != nil {
		t.Fatalf("ListMembers returned error: %v", err)
	}
	if len(members) != 1 || members[0].Name != "Alice" {
		t.Fatalf("expected only Alice, got %+v", members)
	}
}

func TestDeleteGroupRemovesMemberships(t *testing.T) {
	svc, users, _ := setupTestService(t)
	ctx := context.Background()

	g, _ := svc.Create(ctx, "Study", nil)
	u := addUser(t, users, "Bob", "bob@example.com")
	_ = svc.AddMemberByEmail(ctx, g.ID, u.Email)

	if err := svc.Delete(ctx, g.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	ids, err := svc.repo.ListMemberIDs(ctx, g.ID)
	if err != nil {
		t.Fatalf("ListMemberIDs returned error: %v", err)
	}
	if len(ids) != 0 {
		t.Fatalf("expected no memberships after group delete, got %v", ids)
	}

	if err := svc.Delete(ctx, g.ID); !errors.Is(err, ErrGroupNotFound) {
		t.Fatalf("expected ErrGroupNotFound on second delete, got %v", err)
	}
}
