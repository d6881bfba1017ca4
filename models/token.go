package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token is a health worker's bearer token. The worker id travels in the
// "sub" claim and is what the server records as the author of uploads.
type Token struct {
	// Token is the underlying JWT, set after signing or parsing.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string `json:"token"`

	// WorkerID is the subject of the token.
	WorkerID string `json:"workerId"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
