// Package common contains constants and small helpers shared by the client
// components.
package common

// Keys of the two durable session entries. They are written together and
// removed together.
const (
	KeyUserID    = "userId"
	KeyAuthToken = "authToken"
)

// AuthorizationHeaderName carries the bearer token on dashboard requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token in AuthorizationHeaderName.
const BearerPrefix = "Bearer "
