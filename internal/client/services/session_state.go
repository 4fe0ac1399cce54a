package services

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrijs2005/erpclient/internal/client/models"
)

// Phase returns the current lifecycle phase.
func (m *SessionManager) Phase() models.Phase {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.phase
}

// IsHydrated reports whether Hydrate has finished.
func (m *SessionManager) IsHydrated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hydrated
}

// IsLoggedIn reports whether both a user id and a token are held.
func (m *SessionManager) IsLoggedIn() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session.Authenticated()
}

// Session returns a copy of the current session.
func (m *SessionManager) Session() models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.session
}

// UserID returns the signed-in user id, or "".
func (m *SessionManager) UserID() string {
	return m.Session().UserID
}

// Token returns the bearer token, or "".
func (m *SessionManager) Token() string {
	return m.Session().Token
}

// DynamicColor is the current theme accent color.
func (m *SessionManager) DynamicColor() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.themeColor
}

// Dashboard returns the last fetched snapshot, or nil. The snapshot is
// replaced, never modified, so callers may keep it but must not change it.
func (m *SessionManager) Dashboard() *models.Dashboard {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dashboard
}

// IsLoading reports whether a Login, VerifyOTP or FetchDashboard call is in
// flight.
func (m *SessionManager) IsLoading() bool {
	return m.loading.Load() > 0
}

// HasPendingLogin reports whether a password login awaits its OTP.
func (m *SessionManager) HasPendingLogin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pending != nil
}

// SavedKeys lists the keys currently held in the local store, sorted. It is
// a diagnostic; the session itself is read only by Hydrate.
func (m *SessionManager) SavedKeys(ctx context.Context) ([]string, error) {
	pairs, err := m.store(m.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("saved keys: %w", err)
	}
	return slices.Sorted(maps.Keys(pairs)), nil
}
