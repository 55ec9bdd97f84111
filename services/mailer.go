package services

import (
	"context"
	"fmt"
	"html"

	"github.com/goccy/go-json"
	"github.com/rpupo63/portfolio-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type UserLookup interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// NotificationMailer e-mails recipients about new notifications. Delivery is
// best-effort: failures are logged and the message is acked regardless.
type NotificationMailer struct {
	users   UserLookup
	sender  EmailSender
	baseURL string
	logger  zerolog.Logger
}

func NewNotificationMailer(users UserLookup, sender EmailSender, baseURL string) *NotificationMailer {
	return &NotificationMailer{
		users:   users,
		sender:  sender,
		baseURL: baseURL,
		logger:  log.With().Str("service", "notificationMailer").Logger(),
	}
}

// Run consumes notification.created events until ctx is done or the bus closes.
func (m *NotificationMailer) Run(ctx context.Context, bus *EventBus) error {
	messages, err := bus.Subscribe(ctx, TopicNotificationCreated)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			var event NotificationCreated
			if err := json.Unmarshal(msg.Payload, &event); err != nil {
				m.logger.Error().Err(err).Str("messageId", msg.UUID).Msg("Failed to decode notification event")
			} else if err := m.deliver(ctx, event); err != nil {
				m.logger.Warn().Err(err).Str("notificationId", event.NotificationID).Msg("Failed to e-mail notification")
			}
			msg.Ack()
		}
	}()
	return nil
}

func (m *NotificationMailer) deliver(ctx context.Context, event NotificationCreated) error {
	recipient, err := m.users.FindByID(ctx, event.RecipientID)
	if err != nil {
		return err
	}
	if recipient == nil || recipient.Email == nil || *recipient.Email == "" {
		m.logger.Debug().Str("recipientId", event.RecipientID).Msg("Recipient has no e-mail address, skipping")
		return nil
	}

	return m.sender.SendEmail(ctx, event.Message, m.renderBody(event), []string{*recipient.Email})
}

func (m *NotificationMailer) renderBody(event NotificationCreated) string {
	body := fmt.Sprintf("<p>%s</p>", html.EscapeString(event.Message))
	if link := BuildProjectURL(m.baseURL, event.ProjectID); link != "" {
		body += fmt.Sprintf(`<p><a href="%s">View project</a></p>`, html.EscapeString(link))
	}
	return body
}
