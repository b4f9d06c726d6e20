package services

import (
	"TnenntAdmin/models"
	"TnenntAdmin/utils"
	"context"
	"net/http"

	"firebase.google.com/go/auth"
)

// SessionVerifier checks a Firebase session cookie. *auth.Client satisfies it.
type SessionVerifier interface {
	VerifySessionCookieAndCheckRevoked(ctx context.Context, sessionCookie string) (*auth.Token, error)
}

type AdminService struct {
	Store    DocumentStore
	Verifier SessionVerifier
}

func NewAdminService(store DocumentStore, verifier SessionVerifier) *AdminService {
	return &AdminService{Store: store, Verifier: verifier}
}

// VerifySession resolves the admin behind a session cookie. The cookie must
// be valid and unrevoked and its email must be listed as an authorized admin.
func (s *AdminService) VerifySession(ctx context.Context, sessionCookie string) (*models.Admin, error) {
	if sessionCookie == "" {
		return nil, utils.NewCustomError(http.StatusUnauthorized, "Missing session token")
	}
	if s.Verifier == nil {
		return nil, utils.NewCustomError(http.StatusServiceUnavailable, "Session verification is not configured")
	}

	token, err := s.Verifier.VerifySessionCookieAndCheckRevoked(ctx, sessionCookie)
	if err != nil {
		return nil, utils.WrapError(http.StatusUnauthorized, "Invalid session", err)
	}
	email, _ := token.Claims["email"].(string)
	if email == "" {
		return nil, utils.NewCustomError(http.StatusUnauthorized, "Session has no email")
	}

	return s.FindByEmail(ctx, email)
}

func (s *AdminService) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	docs, err := s.Store.Query(ctx, CollectionAdmins, Query{
		Conditions: []Condition{Where("email", "==", email)},
		Limit:      1,
	})
	if err != nil {
		return nil, utils.Internal("Failed to look up admin", err)
	}
	if len(docs) == 0 {
		return nil, utils.NewCustomError(http.StatusForbidden, "Not an authorized admin")
	}

	var admin models.Admin
	if err := docs[0].DataTo(&admin); err != nil {
		return nil, utils.Internal("Failed to decode admin", err)
	}
	admin.ID = docs[0].ID
	return &admin, nil
}
