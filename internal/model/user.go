package model

// User is an operator account. PasswordHash is a bcrypt hash and is never serialized.
type User struct {
	ID           string `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"-" db:"password_hash"`
}
