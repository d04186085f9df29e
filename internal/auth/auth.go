// Package auth abstracts the authentication provider behind a capability
// contract: current user or none, sign-in, sign-up, sign-out. Only the mock
// variant ships; a real provider would implement the same interface.
package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/osint-atlas/atlas/internal/model"
)

var (
	ErrMissingFields = errors.New("Please fill in all fields")
	ErrMissingName   = errors.New("Please enter your name")
)

// Provider is the authentication capability used by the rest of the
// application.
type Provider interface {
	// Current returns the signed-in user, or nil.
	Current() *model.User
	SignIn(ctx context.Context, email, password string) (*model.User, error)
	SignUp(ctx context.Context, email, password, name string) (*model.User, error)
	SignOut()
}

// UserStore is the slice of the persistence adapter the provider needs.
type UserStore interface {
	LoadUser() *model.User
	SaveUser(u model.User) bool
	RemoveUser() bool
}

// MockProvider accepts any non-empty credentials after an artificial delay
// and generates a client-side identity. No credential store is consulted.
type MockProvider struct {
	store UserStore
	delay time.Duration
	user  *model.User
}

// NewMockProvider creates a MockProvider hydrated from the store. delay is
// the simulated authentication latency; pass 0 in tests.
func NewMockProvider(store UserStore, delay time.Duration) *MockProvider {
	return &MockProvider{
		store: store,
		delay: delay,
		user:  store.LoadUser(),
	}
}

// Current returns the signed-in user, or nil.
func (p *MockProvider) Current() *model.User {
	return p.user
}

// SignIn signs in with the given credentials. The display name is derived
// from the email local part.
func (p *MockProvider) SignIn(ctx context.Context, email, password string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}
	name := email
	if at := strings.Index(email, "@"); at >= 0 {
		name = email[:at]
	}
	return p.establish(ctx, email, name)
}

// SignUp creates an account with an explicit display name.
func (p *MockProvider) SignUp(ctx context.Context, email, password, name string) (*model.User, error) {
	if email == "" || password == "" {
		return nil, ErrMissingFields
	}
	if name == "" {
		return nil, ErrMissingName
	}
	return p.establish(ctx, email, name)
}

func (p *MockProvider) establish(ctx context.Context, email, name string) (*model.User, error) {
	if p.delay > 0 {
		select {
		case <-time.After(p.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	user := model.NewUser(email, name)
	p.user = &user
	p.store.SaveUser(user)
	return &user, nil
}

// SignOut discards the session and removes the persisted user.
func (p *MockProvider) SignOut() {
	p.user = nil
	p.store.RemoveUser()
}
