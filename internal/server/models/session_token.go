// Package models holds the persisted record types shared by repositories,
// services and the HTTP layer.
package models

import "time"

// SessionToken is a bearer session record. TokenID is generated once at
// creation and never reused. Valid is a stored flag kept separate from
// expiry so a token can be revoked without touching ExpirationTime;
// expiry itself is only ever judged lazily, at validation time.
type SessionToken struct {
	TokenID        string    `json:"tokenId"`
	UserName       string    `json:"userName"`
	AccessRights   []int     `json:"accessRights"`
	Valid          bool      `json:"valid"`
	ExpirationTime time.Time `json:"expirationTime"`
}

// Expired reports whether the token's expiration time is strictly in the
// past relative to now.
func (t *SessionToken) Expired(now time.Time) bool {
	return t.ExpirationTime.Before(now)
}
