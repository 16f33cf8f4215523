package models

// Account is the credential pair presented on login. It is a request
// payload, never persisted.
type Account struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Access-right tags. A caller is authorized for an operation when the
// operation's required tag is a member of the caller's granted sequence.
const (
	RightRead   = 1
	RightWrite  = 2
	RightDelete = 3
)
