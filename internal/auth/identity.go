package auth

import (
	"errors"

	"gorm.io/gorm"

	"newsroom/internal/user"
)

// ErrIdentityNotFound is returned when a verified credential points at a user
// that no longer exists.
var ErrIdentityNotFound = errors.New("identity not found")

// ResolveIdentity turns a raw bearer string into the current User record.
// The user (including the role) is re-read from the database on every call,
// so role changes take effect without re-issuing the credential.
func ResolveIdentity(db *gorm.DB, secret, tokenStr string) (*user.User, error) {
	claims, err := ParseToken(secret, tokenStr)
	if err != nil {
		return nil, err
	}
	var u user.User
	if err := db.Preload("Role").First(&u, claims.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIdentityNotFound
		}
		return nil, err
	}
	return &u, nil
}
