// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalScope represents how the daily earnings goal applies across vehicles.
type GoalScope string

const (
	GoalScopeGlobal     GoalScope = "global"
	GoalScopePerVehicle GoalScope = "per_vehicle"
)

// DefaultDailyGoal is the daily earnings goal assigned to new accounts, in BRL.
var DefaultDailyGoal = decimal.NewFromInt(200)

// userIDNamespace seeds deterministic user IDs so that logging in with the
// same email always resolves to the same account.
var userIDNamespace = uuid.MustParse("8f3c1d6a-0b52-4a7e-9c41-2d90b7a51c03")

// User represents a driver account in the Motorista Real system.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	DailyGoal decimal.Decimal
	IsPro     bool
	GoalScope GoalScope
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a new User with default values. The ID is derived from the
// email so repeated logins map to the same account.
func NewUser(email, name string) *User {
	now := time.Now().UTC()
	return &User{
		ID:        UserIDForEmail(email),
		Email:     email,
		Name:      name,
		DailyGoal: DefaultDailyGoal,
		IsPro:     false,
		GoalScope: GoalScopeGlobal,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UserIDForEmail returns the deterministic account ID for an email address.
func UserIDForEmail(email string) uuid.UUID {
	return uuid.NewSHA1(userIDNamespace, []byte(email))
}
