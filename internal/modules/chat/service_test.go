package chat

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	gormsqlite "gorm.io/driver/sqlite"
	_ "modernc.org/sqlite"
)

type fakeNotifier struct {
	lines []string
}

func (f *fakeNotifier) ChatMessage(_ context.Context, userName, content string) {
	f.lines = append(f.lines, userName+": "+content)
}

func newTestService(t *testing.T) (*Service, *fakeNotifier) {
	t.Helper()

	dsn := fmt.Sprintf("file:chat_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{
		DriverName: "sqlite",
		DSN:        dsn,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&Message{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	n := &fakeNotifier{}
	return NewService(NewRepository(db), n), n
}

func TestSendRequiresGroupAndContent(t *testing.T) {
	svc, n := newTestService(t)
	ctx := context.Background()

	if _, err := svc.Send(ctx, 0, nil, "Alice", "hi", nil); !errors.Is(err, ErrGroupRequired) {
		t.Fatalf("expected ErrGroupRequired, got %v", err)
	}
	if _, err := svc.Send(ctx, 1, nil, "Alice", "   <b></b>  ", nil); !errors.Is(err, ErrContentRequired) {
		t.Fatalf("expected ErrContentRequired, got %v", err)
	}
	if len(n.lines) != 0 {
		t.Fatalf("rejected sends must not broadcast, got %v", n.lines)
	}
}

func TestSendSanitizesAndBroadcasts(t *testing.T) {
	svc, n := newTestService(t)
	ctx := context.Background()

	m, err := svc.Send(ctx, 1, nil, " Alice ", "<b>hello</b>   world", nil)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if m.Content != "hello world" {
		t.Fatalf("content = %q", m.Content)
	}
	if m.UserName != "Alice" {
		t.Fatalf("userName = %q", m.UserName)
	}
	if len(n.lines) != 1 || n.lines[0] != "Alice: hello world" {
		t.Fatalf("broadcast lines = %v", n.lines)
	}
}

func TestSendUserNameFallback(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	uid := int64(7)
	m, err := svc.Send(ctx, 1, &uid, "", "hi", nil)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if m.UserName != "User7" {
		t.Fatalf("userName = %q", m.UserName)
	}

	m, err = svc.Send(ctx, 1, nil, "", "hi again", nil)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if m.UserName != "User" {
		t.Fatalf("userName = %q", m.UserName)
	}
}

func TestHistoryOrderedOldestFirst(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	later := base.Add(time.Minute)
	if _, err := svc.Send(ctx, 1, nil, "Bob", "second", &later); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := svc.Send(ctx, 1, nil, "Bob", "first", &base); err != nil {
		t.Fatalf("send: %v", err)
	}
	if _, err := svc.Send(ctx, 2, nil, "Bob", "other group", nil); err != nil {
		t.Fatalf("send: %v", err)
	}

	msgs, err := svc.History(ctx, 1)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Content != "first" || msgs[1].Content != "second" {
		t.Fatalf("order wrong: %q, %q", msgs[0].Content, msgs[1].Content)
	}
}
