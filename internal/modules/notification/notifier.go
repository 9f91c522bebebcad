package notification

import (
	"context"
	"log"
)

// MemberDirectory resolves fan-out recipients for a group. An unknown
// group yields an empty slice.
type MemberDirectory interface {
	ListMemberIDs(ctx context.Context, groupID int64) ([]int64, error)
}

// Broadcaster pushes an ephemeral message to every connected client.
type Broadcaster interface {
	Publish(eventType, content string)
}

// Notifier turns a group-scoped domain event into one broadcast emission
// and one mailbox entry per current group member. Callers fire and forget:
// no method returns an error, and a failing mailbox write never reaches
// the domain action that triggered it.
type Notifier struct {
	repo    *Repository
	members MemberDirectory
	hub     Broadcaster
}

func NewNotifier(repo *Repository, members MemberDirectory, hub Broadcaster) *Notifier {
	return &Notifier{repo: repo, members: members, hub: hub}
}

// Notify broadcasts the event and, when a group is given, persists one
// unread notification per member. Persistence is best-effort: a failed
// write is logged and the loop continues with the next member.
func (n *Notifier) Notify(ctx context.Context, groupID *int64, eventType, message string) {
	n.hub.Publish(eventType, message)

	if groupID == nil {
		return
	}

	ids, err := n.members.ListMemberIDs(ctx, *groupID)
	if err != nil {
		log.Printf("notification fan-out: list members of group %d: %v", *groupID, err)
		return
	}

	for _, userID := range ids {
		rec := &Notification{UserID: userID, Message: message}
		if err := n.repo.Create(ctx, rec); err != nil {
			log.Printf("notification fan-out: save for user %d: %v", userID, err)
		}
	}
}

// NotifyUser persists a single mailbox entry without broadcasting.
func (n *Notifier) NotifyUser(ctx context.Context, userID int64, message string) {
	rec := &Notification{UserID: userID, Message: message}
	if err := n.repo.Create(ctx, rec); err != nil {
		log.Printf("notification: save for user %d: %v", userID, err)
	}
}

func (n *Notifier) TaskCreated(ctx context.Context, groupID *int64, title string) {
	n.Notify(ctx, groupID, TypeTaskNew, "New task added: "+title)
}

// TaskUpdated and TaskDeleted are broadcast-only refresh signals; the
// original flow never wrote mailbox entries for them.
func (n *Notifier) TaskUpdated(ctx context.Context, title string) {
	n.Notify(ctx, nil, TypeTaskUpdated, "Task updated: "+title)
}

func (n *Notifier) TaskDeleted(ctx context.Context) {
	n.Notify(ctx, nil, TypeTaskDeleted, "Task deleted")
}

func (n *Notifier) MemberJoined(ctx context.Context, groupID int64, memberName string) {
	n.Notify(ctx, &groupID, TypeMemberNew, "New member joined: "+memberName)
}

func (n *Notifier) MaterialAdded(ctx context.Context, groupID *int64, title string) {
	n.Notify(ctx, groupID, TypeMaterialNew, "New material added: "+title)
}

func (n *Notifier) ChatMessage(ctx context.Context, userName, content string) {
	n.Notify(ctx, nil, TypeChatNew, userName+": "+content)
}
