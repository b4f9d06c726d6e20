package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_Send(t *testing.T) {
	messenger := &fakeMessenger{}
	svc := NewNotificationService(messenger)
	ctx := context.Background()

	id, err := svc.Send(ctx, PushMessage{Token: "tok", Title: "Hello", Body: "World", Data: map[string]string{"k": "v"}})
	require.NoError(t, err)
	assert.Equal(t, "msg-1", id)

	sent := messenger.messages()
	require.Len(t, sent, 1)
	assert.Equal(t, "tok", sent[0].Token)
	assert.Equal(t, "Hello", sent[0].Notification.Title)
	assert.Equal(t, "v", sent[0].Data["k"])
}

func TestNotificationService_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		messenger Messenger
		msg       PushMessage
		status    int
	}{
		{"missing token", &fakeMessenger{}, PushMessage{Title: "t"}, http.StatusBadRequest},
		{"missing title", &fakeMessenger{}, PushMessage{Token: "tok"}, http.StatusBadRequest},
		{"not configured", nil, PushMessage{Token: "tok", Title: "t"}, http.StatusServiceUnavailable},
		{"upstream failure", &fakeMessenger{err: errors.New("unavailable")}, PushMessage{Token: "tok", Title: "t"}, http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNotificationService(tt.messenger).Send(ctx, tt.msg)
			requireStatus(t, err, tt.status)
		})
	}
}

func TestLogMessenger(t *testing.T) {
	id, err := NewNotificationService(LogMessenger{}).Send(context.Background(), PushMessage{Token: "tok", Title: "t"})
	require.NoError(t, err)
	assert.Contains(t, id, "local-")
}
