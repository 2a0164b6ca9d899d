package models

import "time"

// Token is a signed bearer credential issued after a successful login.
//
// SignedString holds the compact JWS form (header.payload.signature) that is
// handed to clients. UserID and ExpiresAt are the decoded claims; they are
// populated both when the token is issued and when it is parsed back.
type Token struct {
	// SignedString is the compact serialized token.
	SignedString string `json:"-"`

	// UserID is the owner identifier carried in the "sub" claim.
	UserID int64 `json:"-"`

	// ExpiresAt is the "exp" claim.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
