// Package services contains application services for the ERP client.
// This file defines the session manager: start-up hydration, the two-step
// login (password, then OTP), dashboard fetching with forced logout on token
// expiry, and logout.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/erpclient/internal/client/api"
	"github.com/dmitrijs2005/erpclient/internal/client/models"
	"github.com/dmitrijs2005/erpclient/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/erpclient/internal/common"
	"github.com/dmitrijs2005/erpclient/internal/dbx"
	"github.com/dmitrijs2005/erpclient/internal/logging"
	"github.com/google/uuid"
)

// ErrNoPendingLogin is returned by VerifyOTP when the ticket does not belong
// to the current pending login.
var ErrNoPendingLogin = errors.New("no pending login for ticket")

// SessionManager owns the process-wide authentication state.
//
// It is created once at start-up, hydrated once from the local store and
// reset only through Logout. All methods are safe to call from several
// goroutines, but nothing serialises overlapping operations: a slower
// FetchDashboard may overwrite the result of a newer one, and IsLoading is
// advisory only.
type SessionManager struct {
	client api.Client
	db     *sql.DB
	log    logging.Logger

	hydrateOnce sync.Once
	loading     atomic.Int32

	mu         sync.RWMutex
	phase      models.Phase
	hydrated   bool
	session    models.Session
	pending    *models.PendingLogin
	dashboard  *models.Dashboard
	themeColor string
}

// NewSessionManager constructs a SessionManager bound to the given API
// client and local database. The manager starts in PhaseUninitialized.
func NewSessionManager(client api.Client, db *sql.DB, log logging.Logger) *SessionManager {
	return &SessionManager{
		client:     client,
		db:         db,
		log:        log.With("component", "session"),
		phase:      models.PhaseUninitialized,
		themeColor: models.DefaultThemeColor,
	}
}

func (m *SessionManager) store(tx dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(tx)
}

// Hydrate loads the persisted session. It runs once; later calls return
// immediately. Read errors count as "no saved session" and never fail
// start-up.
func (m *SessionManager) Hydrate(ctx context.Context) {
	m.hydrateOnce.Do(func() {
		m.setPhase(models.PhaseHydrating)

		s, err := m.loadSession(ctx)
		if err != nil {
			m.log.Warn(ctx, "cannot read saved session, starting signed out", "error", err)
			s = models.Session{}
		}

		m.mu.Lock()
		defer m.mu.Unlock()
		if s.Authenticated() {
			m.session = s
			m.phase = models.PhaseAuthenticated
		} else {
			m.session = models.Session{}
			m.phase = models.PhaseUnauthenticated
		}
		m.hydrated = true
	})
}

func (m *SessionManager) loadSession(ctx context.Context) (models.Session, error) {
	repo := m.store(m.db)

	userID, err := repo.Get(ctx, common.KeyUserID)
	if err != nil {
		return models.Session{}, err
	}
	token, err := repo.Get(ctx, common.KeyAuthToken)
	if err != nil {
		return models.Session{}, err
	}
	return models.Session{UserID: string(userID), Token: string(token)}, nil
}

// Login submits the credentials. It never changes the session itself. When
// the server accepts them, the returned result carries a Ticket that must be
// passed to VerifyOTP. A rejection is reported through Status and Msg with a
// nil error; only transport and decoding failures return an error.
func (m *SessionManager) Login(ctx context.Context, userID, password string) (models.LoginResult, error) {
	defer m.busy()()

	resp, err := m.client.Login(ctx, api.LoginRequest{UserID: userID, Password: password})
	if err != nil {
		m.log.Error(ctx, "login failed", "error", err)
		return models.LoginResult{}, fmt.Errorf("login: %w", err)
	}

	result := models.LoginResult{Status: resp.Status, Msg: resp.Msg, UserID: string(resp.UserID)}
	if !resp.Status {
		return result, nil
	}

	result.Ticket = uuid.NewString()

	m.mu.Lock()
	wipePending(m.pending)
	m.pending = &models.PendingLogin{
		Ticket:   result.Ticket,
		UserID:   result.UserID,
		Password: []byte(password),
	}
	m.mu.Unlock()

	return result, nil
}

// VerifyOTP confirms the pending login identified by ticket. It returns true
// once the token is persisted and the session is authenticated, and false
// with a nil error when the server rejects the code; state is unchanged in
// that case. Transport, decoding and storage failures are returned as
// errors, also leaving state unchanged.
func (m *SessionManager) VerifyOTP(ctx context.Context, ticket, otp string) (bool, error) {
	defer m.busy()()

	m.mu.RLock()
	var userID string
	if m.pending != nil && ticket != "" && m.pending.Ticket == ticket {
		userID = m.pending.UserID
	}
	m.mu.RUnlock()

	if userID == "" {
		return false, ErrNoPendingLogin
	}

	resp, err := m.client.VerifyOTP(ctx, api.VerifyOTPRequest{UserID: userID, OTP: otp})
	if err != nil {
		m.log.Error(ctx, "otp verification failed", "user_id", userID, "error", err)
		return false, fmt.Errorf("verify otp: %w", err)
	}

	if !resp.Status || resp.Token == "" {
		return false, nil
	}

	if err := m.saveSession(ctx, userID, resp.Token); err != nil {
		m.log.Error(ctx, "cannot persist session", "user_id", userID, "error", err)
		return false, fmt.Errorf("session saving error: %w", err)
	}

	m.mu.Lock()
	m.session = models.Session{UserID: userID, Token: resp.Token}
	m.phase = models.PhaseAuthenticated
	m.mu.Unlock()

	m.log.Info(ctx, "signed in", "user_id", userID)
	return true, nil
}

func (m *SessionManager) saveSession(ctx context.Context, userID, token string) error {
	return dbx.WithTx(ctx, m.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := m.store(tx)
		if err := repo.Set(ctx, common.KeyUserID, []byte(userID)); err != nil {
			return err
		}
		return repo.Set(ctx, common.KeyAuthToken, []byte(token))
	})
}

// FetchDashboard refreshes the dashboard snapshot.
//
// Without a token it logs out and returns nil. A failure response that
// signals an expired token also logs out and returns nil. Any other failure
// response is returned as *api.RejectedError. On success the snapshot is
// replaced and the theme color follows dashboard.color.dynamic_color when
// the payload has one.
func (m *SessionManager) FetchDashboard(ctx context.Context) error {
	defer m.busy()()

	token := m.Token()
	if token == "" {
		m.log.Warn(ctx, "dashboard requested without a token, signing out")
		_ = m.Logout(ctx)
		return nil
	}

	resp, err := m.client.Dashboard(ctx, token)
	if err != nil {
		m.log.Error(ctx, "dashboard fetch failed", "error", err)
		return fmt.Errorf("dashboard: %w", err)
	}

	if api.IsTokenExpired(resp.Status, resp.Msg) {
		m.log.Info(ctx, "session token expired, signing out", "msg", resp.Msg)
		_ = m.Logout(ctx)
		return nil
	}

	if !resp.Status {
		m.log.Error(ctx, "dashboard rejected", "msg", resp.Msg)
		return &api.RejectedError{Message: resp.Msg}
	}

	snapshot := resp.Dashboard

	m.mu.Lock()
	m.dashboard = &snapshot
	if c := snapshot.Dashboard.Color.DynamicColor; c != "" {
		m.themeColor = c
	}
	m.mu.Unlock()

	return nil
}

// Logout signs the user out. The in-memory reset always happens; removal of
// the persisted entries is best effort and its error, if any, is returned
// for logging only. Calling Logout repeatedly is harmless.
func (m *SessionManager) Logout(ctx context.Context) error {
	err := m.store(m.db).Delete(ctx, common.KeyUserID, common.KeyAuthToken)
	if err != nil {
		m.log.Warn(ctx, "cannot remove saved session", "error", err)
		err = fmt.Errorf("logout: %w", err)
	}

	m.mu.Lock()
	wipePending(m.pending)
	m.pending = nil
	m.session = models.Session{}
	m.dashboard = nil
	m.themeColor = models.DefaultThemeColor
	m.phase = models.PhaseUnauthenticated
	m.mu.Unlock()

	return err
}

func (m *SessionManager) setPhase(p models.Phase) {
	m.mu.Lock()
	m.phase = p
	m.mu.Unlock()
}

// busy marks an operation as in flight and returns the function that ends it.
func (m *SessionManager) busy() func() {
	m.loading.Add(1)
	return func() { m.loading.Add(-1) }
}

func wipePending(p *models.PendingLogin) {
	if p != nil {
		common.WipeByteArray(p.Password)
	}
}
