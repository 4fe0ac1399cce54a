package stubapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/erpclient/internal/client/api"
	"github.com/dmitrijs2005/erpclient/internal/client/models"
	"github.com/dmitrijs2005/erpclient/internal/common"
)

type failure struct {
	Status bool   `json:"status"`
	Msg    string `json:"msg"`
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func fail(w http.ResponseWriter, msg string) {
	writeJSON(w, failure{Status: false, Msg: msg})
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, "Invalid request")
		return
	}

	s.mu.Lock()
	a, ok := s.accounts[req.UserID]
	s.mu.Unlock()

	if !ok || a.password != req.Password {
		fail(w, "Invalid userid or password")
		return
	}

	id, _ := s.UserID(a.login)
	writeJSON(w, api.LoginResponse{Status: true, Msg: "OTP sent", UserID: api.UserID(id)})
}

func (s *Server) handleVerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req api.VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, "Invalid request")
		return
	}

	if req.UserID == "" || req.OTP != s.cfg.OTP {
		fail(w, "Invalid OTP")
		return
	}

	writeJSON(w, api.VerifyOTPResponse{Status: true, Token: s.issueToken(req.UserID)})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	var req api.DashboardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, "Invalid request")
		return
	}

	bearer := strings.TrimPrefix(r.Header.Get(common.AuthorizationHeaderName), common.BearerPrefix)
	if req.Token == "" || bearer != req.Token {
		fail(w, "Token missing")
		return
	}

	userID, ok := s.tokenOwner(req.Token)
	if !ok {
		fail(w, "Token expired")
		return
	}

	writeJSON(w, models.Dashboard{
		Status: true,
		Dashboard: models.DashboardData{
			Amount:  models.Amount{Paid: 125000, Due: 37500},
			Student: models.Student{Boy: 412, Girl: 388},
			Color:   models.Color{DynamicColor: s.cfg.Color},
		},
		User: models.User{Name: "User " + userID},
	})
}
