// Package services contains the application services behind the CLI:
// admin authentication, the public contact form and home counters, and the
// admin dashboard.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/aaywp/portal/internal/client/models"
	"github.com/aaywp/portal/internal/client/session"
	"github.com/aaywp/portal/internal/common"
)

// AuthService defines admin authentication for the CLI.
//
// Contract:
//   - Login: authenticate against the backend; the token is stored on success.
//   - Logout: forget the stored token. The backend is not contacted.
//   - Status: report who is logged in, from the stored token alone.
type AuthService interface {
	Login(ctx context.Context, email string, password []byte) (models.LoginResponse, error)
	Logout(ctx context.Context) error
	Status(ctx context.Context) (AuthStatus, error)
}

// AuthAPI is the part of the API client used for authentication.
type AuthAPI interface {
	Login(ctx context.Context, identifier, secret string) (models.LoginResponse, error)
	Logout(ctx context.Context) error
	Session() session.Store
}

// AuthStatus describes the stored credential.
type AuthStatus struct {
	LoggedIn  bool
	Subject   string
	ExpiresAt time.Time
	Expired   bool
}

type authService struct {
	api AuthAPI
	now func() time.Time
}

func NewAuthService(api AuthAPI) AuthService {
	return &authService{api: api, now: time.Now}
}

// Login wipes password once the request has been built.
func (a *authService) Login(ctx context.Context, email string, password []byte) (models.LoginResponse, error) {
	secret := string(password)
	common.WipeByteArray(password)

	resp, err := a.api.Login(ctx, email, secret)
	if err != nil {
		return resp, fmt.Errorf("login: %w", err)
	}
	return resp, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.api.Logout(ctx)
}

// Status reads the stored token. Opaque tokens report LoggedIn without an
// expiry.
func (a *authService) Status(ctx context.Context) (AuthStatus, error) {
	store := a.api.Session()

	token, err := store.Token(ctx)
	if err != nil {
		return AuthStatus{}, err
	}
	if token == "" {
		return AuthStatus{}, nil
	}

	subject, err := store.Subject(ctx)
	if err != nil {
		return AuthStatus{}, err
	}

	st := AuthStatus{LoggedIn: true, Subject: subject}
	if claims, err := session.ParseClaims(token); err == nil {
		if claims.Subject != "" {
			st.Subject = claims.Subject
		}
		st.ExpiresAt = claims.ExpiresAt
		st.Expired = claims.Expired(a.now())
	}
	return st, nil
}
