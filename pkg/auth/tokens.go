package auth

import (
	"context"
	"sync"
)

// TokenSource yields the bearer token for the current workspace. Stores call
// Token on every request and never keep the value, so a refreshed token is
// honored by the next call.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// SessionTokens is the auth collaborator a workspace owns: the token source
// plus login and the logout the error classifier forces on 401/403.
type SessionTokens interface {
	TokenSource
	Login(ctx context.Context, token string) error
	Logout(ctx context.Context) error
}

// MemoryTokens keeps a single token in process memory.
type MemoryTokens struct {
	mu    sync.RWMutex
	token string
}

// NewMemoryTokens returns MemoryTokens holding token; pass "" for logged out.
func NewMemoryTokens(token string) *MemoryTokens {
	return &MemoryTokens{token: token}
}

func (m *MemoryTokens) Token(context.Context) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.token != ""
}

func (m *MemoryTokens) Login(_ context.Context, token string) error {
	m.mu.Lock()
	m.token = token
	m.mu.Unlock()
	return nil
}

func (m *MemoryTokens) Logout(context.Context) error {
	m.mu.Lock()
	m.token = ""
	m.mu.Unlock()
	return nil
}
