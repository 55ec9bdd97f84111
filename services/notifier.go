package services

import (
	"context"
	"fmt"

	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type NotificationStore interface {
	Add(ctx context.Context, notification *models.Notification) error
}

// EngagementEvent describes a like or comment by Actor on Project.
type EngagementEvent struct {
	Kind    models.NotificationType
	Project *models.Project
	Actor   *models.User
}

// Notifier owns the "notify the owner unless they acted themselves" rule for
// every kind of engagement.
type Notifier struct {
	store  NotificationStore
	bus    *EventBus
	logger zerolog.Logger
}

// NewNotifier builds a notifier. bus may be nil, in which case no events are published.
func NewNotifier(store NotificationStore, bus *EventBus) *Notifier {
	return &Notifier{
		store:  store,
		bus:    bus,
		logger: log.With().Str("service", "notifier").Logger(),
	}
}

// Notify records one notification for the project owner. It returns nil without
// writing anything when the actor owns the project.
func (n *Notifier) Notify(ctx context.Context, event EngagementEvent) (*models.Notification, error) {
	if event.Project == nil || event.Actor == nil {
		return nil, fmt.Errorf("engagement event needs a project and an actor")
	}
	if !event.Kind.Valid() {
		return nil, fmt.Errorf("unknown engagement kind %q", event.Kind)
	}
	if event.Actor.ID == event.Project.OwnerID {
		return nil, nil
	}

	projectID := event.Project.ID
	actorID := event.Actor.ID
	notification := &models.Notification{
		UserID:           event.Project.OwnerID,
		Type:             event.Kind,
		Message:          NotificationMessage(event.Kind, event.Actor, event.Project.Title),
		RelatedProjectID: &projectID,
		RelatedUserID:    &actorID,
	}
	if err := n.store.Add(ctx, notification); err != nil {
		return nil, err
	}

	if n.bus != nil {
		err := n.bus.Publish(TopicNotificationCreated, NotificationCreated{
			NotificationID: notification.ID.String(),
			RecipientID:    notification.UserID,
			Type:           string(notification.Type),
			Message:        notification.Message,
			ProjectID:      projectID.String(),
		})
		if err != nil {
			n.logger.Warn().Err(err).Str("notificationId", notification.ID.String()).Msg("Failed to publish notification event")
		}
	}

	return notification, nil
}

// NotificationMessage renders the text shown to the project owner.
func NotificationMessage(kind models.NotificationType, actor *models.User, projectTitle string) string {
	verb := "liked"
	if kind == models.NotificationComment {
		verb = "commented on"
	}
	return fmt.Sprintf("%s %s your project \"%s\"", actor.DisplayName(), verb, projectTitle)
}
