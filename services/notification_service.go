package services

import (
	"TnenntAdmin/config/logger"
	"TnenntAdmin/utils"
	"context"
	"net/http"
	"strings"

	"firebase.google.com/go/messaging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Messenger is the part of the FCM client used for push delivery.
// *messaging.Client satisfies it.
type Messenger interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

type PushMessage struct {
	Token string            `json:"token" binding:"required"`
	Title string            `json:"title" binding:"required"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data"`
}

type NotificationService struct {
	Messenger Messenger
}

func NewNotificationService(messenger Messenger) *NotificationService {
	return &NotificationService{Messenger: messenger}
}

// Send delivers a push to a single device and returns the FCM message id.
func (s *NotificationService) Send(ctx context.Context, msg PushMessage) (string, error) {
	if strings.TrimSpace(msg.Token) == "" {
		return "", utils.BadRequest("Missing fcmToken")
	}
	if strings.TrimSpace(msg.Title) == "" {
		return "", utils.BadRequest("Missing title")
	}
	if s.Messenger == nil {
		return "", utils.NewCustomError(http.StatusServiceUnavailable, "Push notifications are not configured")
	}

	id, err := s.Messenger.Send(ctx, &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	})
	if err != nil {
		return "", utils.WrapError(http.StatusBadGateway, "Failed to send notification", err)
	}
	return id, nil
}

// LogMessenger only logs pushes. It stands in for FCM with the memory driver.
type LogMessenger struct{}

func (LogMessenger) Send(_ context.Context, message *messaging.Message) (string, error) {
	id := "local-" + uuid.NewString()
	fields := []zap.Field{zap.String("id", id), zap.String("token", message.Token)}
	if message.Notification != nil {
		fields = append(fields, zap.String("title", message.Notification.Title))
	}
	logger.L().Info("push notification", fields...)
	return id, nil
}
