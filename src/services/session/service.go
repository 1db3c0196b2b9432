// Package session owns the dashboard's single authenticated/unauthenticated state and
// the persisted token behind it.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"campus-check-dashboard/src/models"
	"campus-check-dashboard/src/services/apiclient"
	"campus-check-dashboard/src/storage"
	"campus-check-dashboard/src/utils"

	"github.com/go-playground/validator/v10"
)

// LoginFailedMessage ข้อความที่แสดงให้ผู้ใช้เมื่อ login ไม่สำเร็จ
const LoginFailedMessage = "Login failed. Please check your credentials and try again."

// AuthError any login failure: invalid input, unreachable endpoint, rejected
// credentials or a response without a token.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("login failed: %s: %v", e.Reason, e.Err)
	}
	return "login failed: " + e.Reason
}

func (e *AuthError) Unwrap() error { return e.Err }

// Poster is the part of the API client the gateway needs to reach the login endpoint.
type Poster interface {
	Post(ctx context.Context, path string, body, out any) error
}

type Gateway struct {
	store    storage.TokenStore
	api      Poster
	validate *validator.Validate
	now      func() time.Time
}

// NewGateway api must send requests without a token; login is the call that obtains one.
func NewGateway(store storage.TokenStore, api Poster) *Gateway {
	return &Gateway{
		store:    store,
		api:      api,
		validate: validator.New(),
		now:      time.Now,
	}
}

// Login exchanges credentials for a token and persists it. State is left untouched
// on any failure.
func (g *Gateway) Login(ctx context.Context, username, password string) error {
	creds := models.Credentials{Username: username, Password: password}
	if err := g.validate.Struct(creds); err != nil {
		return &AuthError{Reason: "missing credentials", Err: err}
	}

	var res models.LoginResponse
	err := g.api.Post(ctx, "/admin/login", models.LoginPayload{User: creds.Username, Password: creds.Password}, &res)
	if err != nil {
		var httpErr *apiclient.HTTPError
		if errors.As(err, &httpErr) {
			return &AuthError{Reason: fmt.Sprintf("server answered %d", httpErr.Status), Err: err}
		}
		return &AuthError{Reason: "request failed", Err: err}
	}
	if res.Token == "" {
		return &AuthError{Reason: "response carried no token"}
	}

	if err := g.store.Set(ctx, storage.TokenKey, res.Token); err != nil {
		return &AuthError{Reason: "could not persist token", Err: err}
	}
	log.Printf("✅ Admin %q logged in", creds.Username)
	return nil
}

// CurrentToken returns the persisted token. An expired JWT is cleared and reported
// as absent; store failures are treated as no session.
func (g *Gateway) CurrentToken(ctx context.Context) (string, bool) {
	token, ok, err := g.store.Get(ctx, storage.TokenKey)
	if err != nil {
		log.Println("❌ Failed to read session token:", err)
		return "", false
	}
	if !ok || token == "" {
		return "", false
	}
	if utils.TokenExpired(token, g.now()) {
		log.Println("⚠️ Session token expired, session cleared")
		if err := g.store.Delete(ctx, storage.TokenKey); err != nil {
			log.Println("❌ Failed to clear expired session token:", err)
		}
		return "", false
	}
	return token, true
}

func (g *Gateway) IsAuthenticated(ctx context.Context) bool {
	_, ok := g.CurrentToken(ctx)
	return ok
}

func (g *Gateway) State(ctx context.Context) models.SessionState {
	if g.IsAuthenticated(ctx) {
		return models.Authenticated
	}
	return models.Unauthenticated
}

// Invalidate drops a token the server refused.
func (g *Gateway) Invalidate(ctx context.Context) error {
	return g.store.Delete(ctx, storage.TokenKey)
}

// Logout ลบ token ออกจาก storage
func (g *Gateway) Logout(ctx context.Context) error {
	if err := g.store.Delete(ctx, storage.TokenKey); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	log.Println("✅ Session cleared")
	return nil
}
