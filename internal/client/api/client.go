package api

import (
	"context"
)

// Client is the contract of the remote ERP API used by the session manager.
//
// Implementations return a decoded response for every well-formed reply,
// whatever its status field says; errors are reserved for transport and
// decoding failures.
type Client interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (*VerifyOTPResponse, error)
	Dashboard(ctx context.Context, token string) (*DashboardResponse, error)
}
