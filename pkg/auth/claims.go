package auth

import (
	"github.com/aydinsoft/backoffice-backend/pkg/enums"
	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenPayload captures the data available when minting a JWT.
type AccessTokenPayload struct {
	UserID int64
	Name   string
	Role   enums.Role
	JTI    string
}

// AccessTokenClaims represents the typed JWT issued to clients. Role is
// informational on the client; authorization always re-checks the server-side
// session these claims point at.
type AccessTokenClaims struct {
	UserID int64      `json:"user_id"`
	Name   string     `json:"name"`
	Role   enums.Role `json:"role"`
	jwt.RegisteredClaims
}
