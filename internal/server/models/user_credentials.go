package models

// UserCredentials is a stored login record. Passwords are stored and
// compared in plaintext for parity with the system this replaces; this is
// a known weakness, not a feature.
//
// The (username, password) pair is the lookup key but not a uniqueness
// constraint: duplicate records are tolerated and the first match wins.
type UserCredentials struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	AccessRights []int  `json:"accessRights"`
}
