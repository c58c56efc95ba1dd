package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps an issued or verified JWT.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in the
// "Authorization" header. UserID is the identity carried by the token.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the identifier of the user the token was issued for.
	UserID string `json:"-"`

	// ExpiresAt is the moment the token stops being accepted.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
