package services

import (
	"TnenntAdmin/models"
	"context"
	"errors"
	"net/http"
	"testing"

	"firebase.google.com/go/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	sessions map[string]string
}

func (f fakeVerifier) VerifySessionCookieAndCheckRevoked(_ context.Context, cookie string) (*auth.Token, error) {
	email, ok := f.sessions[cookie]
	if !ok {
		return nil, errors.New("session cookie is revoked")
	}
	claims := map[string]interface{}{}
	if email != "" {
		claims["email"] = email
	}
	return &auth.Token{UID: "uid-" + cookie, Claims: claims}, nil
}

func TestAdminService_VerifySession(t *testing.T) {
	store := NewMemoryStore()
	seed(t, store, CollectionAdmins, "a1", models.Admin{Email: "ops@tnennt.in", Name: "Ops", Role: "owner"})

	svc := NewAdminService(store, fakeVerifier{sessions: map[string]string{
		"good":     "ops@tnennt.in",
		"stranger": "someone@else.com",
		"anon":     "",
	}})
	ctx := context.Background()

	admin, err := svc.VerifySession(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "a1", admin.ID)
	assert.Equal(t, "owner", admin.Role)

	tests := []struct {
		cookie string
		status int
	}{
		{"", http.StatusUnauthorized},
		{"revoked", http.StatusUnauthorized},
		{"anon", http.StatusUnauthorized},
		{"stranger", http.StatusForbidden},
	}
	for _, tt := range tests {
		_, err := svc.VerifySession(ctx, tt.cookie)
		requireStatus(t, err, tt.status)
	}
}

func TestAdminService_NoVerifier(t *testing.T) {
	_, err := NewAdminService(NewMemoryStore(), nil).VerifySession(context.Background(), "cookie")
	requireStatus(t, err, http.StatusServiceUnavailable)
}
