package services

import (
	"TnenntAdmin/utils"
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"firebase.google.com/go/messaging"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 10, 18, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func seed(t *testing.T, store DocumentStore, collection, id string, data interface{}) {
	t.Helper()
	require.NoError(t, store.Set(context.Background(), collection, id, data))
}

func upload(name string) *FileUpload {
	return &FileUpload{Filename: name, ContentType: "image/png", Body: bytes.NewReader([]byte("png-bytes"))}
}

func requireStatus(t *testing.T, err error, status int) {
	t.Helper()
	require.Error(t, err)
	var ce *utils.CustomError
	require.True(t, errors.As(err, &ce), "expected CustomError, got %T: %v", err, err)
	require.Equal(t, status, ce.StatusCode, ce.Message)
}

type fakeMessenger struct {
	mu   sync.Mutex
	sent []*messaging.Message
	err  error
}

func (f *fakeMessenger) Send(_ context.Context, m *messaging.Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, m)
	return "msg-1", nil
}

func (f *fakeMessenger) messages() []*messaging.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*messaging.Message(nil), f.sent...)
}
