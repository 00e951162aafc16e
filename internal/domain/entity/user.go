// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UserStatus represents the lifecycle state of a user account.
type UserStatus string

const (
	// UserStatusActive indicates a normal, usable account.
	UserStatusActive UserStatus = "active"
	// UserStatusInactive indicates a deactivated (or anonymized) account.
	UserStatusInactive UserStatus = "inactive"
	// UserStatusSuspended indicates an account blocked by an administrator.
	UserStatusSuspended UserStatus = "suspended"
)

// String returns the string representation of the UserStatus.
func (s UserStatus) String() string {
	return string(s)
}

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusSuspended:
		return true
	default:
		return false
	}
}

// Language is the user's preferred interface language.
type Language string

const (
	// LanguageEnglish is English.
	LanguageEnglish Language = "en"
	// LanguageSwahili is Kiswahili.
	LanguageSwahili Language = "sw"
)

// IsValid checks if the Language is a valid value.
func (l Language) IsValid() bool {
	return l == LanguageEnglish || l == LanguageSwahili
}

// User is the core entity in the system, representing a unique account.
type User struct {
	ID                uuid.UUID  // The unique identifier for the user.
	FirstName         string     // The user's given name.
	LastName          string     // The user's family name.
	Email             string     // The user's login/contact email, unique across accounts.
	Phone             string     // Optional contact phone number.
	Role              Role       // The user's role tag (farmer, extension officer, dealer, company, admin).
	Status            UserStatus // Account lifecycle state.
	Region            string     // Administrative region, e.g. "Morogoro".
	District          string     // District within the region.
	Ward              string     // Ward within the district.
	PreferredLanguage Language   // Interface language preference.
	ProfileImageURL   string     // Public URL of the uploaded avatar, if any.
	LastLoginAt       *time.Time // Timestamp of the most recent successful login.
	CreatedAt         time.Time  // Timestamp of when this account was created.
	UpdatedAt         time.Time  // Timestamp of the last modification to this account.
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsActive reports whether the account may authenticate and act.
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// Anonymize scrubs personally identifying fields in place. The row itself
// survives so that foreign keys from activity logs, reviews and consultations
// keep resolving.
func (u *User) Anonymize() {
	u.Email = fmt.Sprintf("deleted_%s@deleted.invalid", u.ID)
	u.FirstName = "Deleted"
	u.LastName = "User"
	u.Phone = ""
	u.ProfileImageURL = ""
	u.Status = UserStatusInactive
}
