package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the session payload carried by the lr_session cookie or a
// Bearer token. AccountID is the tenant every query is scoped to.
type Claims struct {
	UserID    uint   `json:"user_id"`
	AccountID uint   `json:"account_id"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}
