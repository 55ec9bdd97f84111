package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-site-backend/models"
)

type memoryNotifications struct {
	mu    sync.Mutex
	added []*models.Notification
	err   error
}

func (m *memoryNotifications) Add(_ context.Context, n *models.Notification) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	m.added = append(m.added, n)
	return nil
}

func user(id, firstName string) *models.User {
	u := &models.User{ID: id}
	if firstName != "" {
		u.FirstName = &firstName
	}
	return u
}

func TestNotifySkipsSelf(t *testing.T) {
	store := &memoryNotifications{}
	notifier := NewNotifier(store, nil)
	project := &models.Project{ID: uuid.New(), Title: "P", OwnerID: "alice"}

	for _, kind := range []models.NotificationType{models.NotificationLike, models.NotificationComment} {
		got, err := notifier.Notify(context.Background(), EngagementEvent{Kind: kind, Project: project, Actor: user("alice", "Alice")})
		if err != nil || got != nil {
			t.Errorf("self %s = %v, %v; want nil, nil", kind, got, err)
		}
	}
	if len(store.added) != 0 {
		t.Errorf("self engagement stored %d notifications", len(store.added))
	}
}

func TestNotifyAddressesOwner(t *testing.T) {
	store := &memoryNotifications{}
	notifier := NewNotifier(store, nil)
	project := &models.Project{ID: uuid.New(), Title: "Portfolio", OwnerID: "alice"}

	cases := []struct {
		kind  models.NotificationType
		actor *models.User
		want  string
	}{
		{models.NotificationLike, user("bob", "Bob"), `Bob liked your project "Portfolio"`},
		{models.NotificationComment, user("bob", "Bob"), `Bob commented on your project "Portfolio"`},
		{models.NotificationLike, user("carol", ""), `Someone liked your project "Portfolio"`},
	}
	for _, tc := range cases {
		got, err := notifier.Notify(context.Background(), EngagementEvent{Kind: tc.kind, Project: project, Actor: tc.actor})
		if err != nil {
			t.Fatalf("Notify: %v", err)
		}
		if got.UserID != "alice" || got.Type != tc.kind || got.Message != tc.want {
			t.Errorf("notification = %+v, want message %q", got, tc.want)
		}
		if got.RelatedProjectID == nil || *got.RelatedProjectID != project.ID {
			t.Errorf("related project = %v", got.RelatedProjectID)
		}
		if got.RelatedUserID == nil || *got.RelatedUserID != tc.actor.ID {
			t.Errorf("related user = %v", got.RelatedUserID)
		}
	}
	if len(store.added) != len(cases) {
		t.Errorf("stored %d notifications, want %d", len(store.added), len(cases))
	}
}

func TestNotifyRejectsBadEvents(t *testing.T) {
	notifier := NewNotifier(&memoryNotifications{}, nil)
	project := &models.Project{ID: uuid.New(), OwnerID: "alice"}

	if _, err := notifier.Notify(context.Background(), EngagementEvent{Kind: "follow", Project: project, Actor: user("bob", "")}); err == nil {
		t.Error("unknown kind accepted")
	}
	if _, err := notifier.Notify(context.Background(), EngagementEvent{Kind: models.NotificationLike, Actor: user("bob", "")}); err == nil {
		t.Error("missing project accepted")
	}

	failing := NewNotifier(&memoryNotifications{err: errors.New("boom")}, nil)
	if _, err := failing.Notify(context.Background(), EngagementEvent{Kind: models.NotificationLike, Project: project, Actor: user("bob", "")}); err == nil {
		t.Error("store failure swallowed")
	}
}

func TestNotifyPublishesEvent(t *testing.T) {
	bus := NewEventBus()
	t.Cleanup(func() { bus.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	messages, err := bus.Subscribe(ctx, TopicNotificationCreated)
	if err != nil {
		t.Fatal(err)
	}

	notifier := NewNotifier(&memoryNotifications{}, bus)
	project := &models.Project{ID: uuid.New(), Title: "P", OwnerID: "alice"}

	done := make(chan *models.Notification, 1)
	go func() {
		n, err := notifier.Notify(ctx, EngagementEvent{Kind: models.NotificationComment, Project: project, Actor: user("bob", "Bob")})
		if err != nil {
			t.Errorf("Notify: %v", err)
		}
		done <- n
	}()

	select {
	case msg := <-messages:
		msg.Ack()
		if len(msg.Payload) == 0 {
			t.Error("empty payload")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event published")
	}

	select {
	case n := <-done:
		if n == nil {
			t.Error("notification not returned")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Notify did not return")
	}
}
