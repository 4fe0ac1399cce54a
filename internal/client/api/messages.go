package api

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/erpclient/internal/client/models"
)

type LoginRequest struct {
	UserID   string `json:"userid"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Status bool   `json:"status"`
	Msg    string `json:"msg"`
	UserID UserID `json:"userid"`
}

type VerifyOTPRequest struct {
	UserID string `json:"userid"`
	OTP    string `json:"otp"`
}

type VerifyOTPResponse struct {
	Status bool   `json:"status"`
	Msg    string `json:"msg"`
	Token  string `json:"token"`
}

// envelope is the part every response shares.
type envelope struct {
	Status bool   `json:"status"`
	Msg    string `json:"msg"`
}

type DashboardRequest struct {
	Token string `json:"token"`
}

// DashboardResponse is the decoded dashboard payload. On failure only Status
// and Msg are meaningful.
type DashboardResponse struct {
	models.Dashboard
	Msg string `json:"msg"`
}

// UserID accepts the login endpoint's user id as a JSON number or string and
// keeps its decimal text form.
type UserID string

func (u *UserID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*u = ""
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*u = UserID(n.String())
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("userid: %w", err)
	}
	*u = UserID(s)
	return nil
}

func (u UserID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(u), 10, 64); err == nil {
		return []byte(u), nil
	}
	return json.Marshal(string(u))
}
