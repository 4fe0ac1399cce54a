// Package stubapi is a local stand-in for the remote ERP API. It implements
// the login, OTP and dashboard endpoints with the same JSON contract so the
// client can be exercised without the production backend.
package stubapi

import (
	"context"
	"maps"
	"net/http"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/dmitrijs2005/erpclient/internal/logging"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type account struct {
	id       int64
	login    string
	password string
}

type issuedToken struct {
	userID    string
	expiresAt time.Time
}

// Server keeps accounts and issued tokens in memory.
type Server struct {
	cfg    Config
	log    logging.Logger
	now    func() time.Time
	router *mux.Router

	mu       sync.Mutex
	accounts map[string]account
	tokens   map[string]issuedToken
}

func NewServer(cfg Config, log logging.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		log:      log,
		now:      time.Now,
		accounts: make(map[string]account, len(cfg.Users)),
		tokens:   make(map[string]issuedToken),
	}

	logins := slices.Sorted(maps.Keys(cfg.Users))
	for i, login := range logins {
		s.accounts[login] = account{id: int64(1001 + i), login: login, password: cfg.Users[login]}
	}

	r := mux.NewRouter()
	r.HandleFunc("/login.php", s.handleLogin).Methods(http.MethodPost)
	r.HandleFunc("/verify_otp.php", s.handleVerifyOTP).Methods(http.MethodPost)
	r.HandleFunc("/dashboard.php", s.handleDashboard).Methods(http.MethodPost)
	r.Use(s.logRequests)
	s.router = r

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Expire invalidates token immediately, as if its TTL had elapsed.
func (s *Server) Expire(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.tokens[token]; ok {
		t.expiresAt = time.Time{}
		s.tokens[token] = t
	}
}

// UserID returns the numeric id assigned to login.
func (s *Server) UserID(login string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.accounts[login]
	if !ok {
		return "", false
	}
	return strconv.FormatInt(a.id, 10), true
}

func (s *Server) issueToken(userID string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.tokens[token] = issuedToken{userID: userID, expiresAt: s.now().Add(s.cfg.TokenTTL)}
	s.mu.Unlock()
	return token
}

func (s *Server) tokenOwner(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tokens[token]
	if !ok || !s.now().Before(t.expiresAt) {
		delete(s.tokens, token)
		return "", false
	}
	return t.userID, true
}

// ListenAndServe runs the stub until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{Addr: s.cfg.Addr, Handler: s, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, "stub ERP API listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug(r.Context(), "request", "method", r.Method, "path", r.URL.Path, "elapsed", time.Since(start))
	})
}
