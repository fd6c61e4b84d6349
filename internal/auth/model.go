package auth

import "time"

// Account is a back-office login account (master or seller).
type Account struct {
	ID               int64
	Username         string
	PasswordHash     string
	PermissionTypeID int
	CreatedAt        time.Time
}
