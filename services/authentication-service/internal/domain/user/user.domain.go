//services/authentication-service/internal/domain/user/user.domain.go

package user

import (
	"time"

	"github.com/google/uuid"
)

type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// AccountType is chosen on the first registration screen.
type AccountType string

const (
	AccountPersonal AccountType = "personal"
	AccountBusiness AccountType = "business"
)

// Valid reports whether t is one of the offered account types.
func (t AccountType) Valid() bool {
	return t == AccountPersonal || t == AccountBusiness
}

// Label is the French card title ("Particulier" / "Professionnel").
func (t AccountType) Label() string {
	switch t {
	case AccountPersonal:
		return "Particulier"
	case AccountBusiness:
		return "Professionnel"
	}
	return string(t)
}

type AccountOption struct {
	Type        AccountType `json:"type"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
}

// AccountOptions lists the registration choices in display order.
func AccountOptions() []AccountOption {
	return []AccountOption{
		{Type: AccountPersonal, Title: AccountPersonal.Label(), Description: "Pour envoyer des colis en votre nom propre"},
		{Type: AccountBusiness, Title: AccountBusiness.Label(), Description: "Pour les entreprises, avec badge de confiance"},
	}
}

// ParseAccountType maps the wire value, rejecting anything else.
func ParseAccountType(s string) (AccountType, bool) {
	t := AccountType(s)
	return t, t.Valid()
}

type User struct {
	UserID       uuid.UUID
	UserEmail    string // stored lowercased
	FirstName    string
	LastName     string
	AccountType  AccountType
	PasswordHash string
	Status       UserStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
