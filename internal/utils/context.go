package utils

import (
	"context"

	"github.com/Grihladin/42Connect/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the session middleware stores the
// decoded session ticket for downstream handlers.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SessionCtxKey, ticket)
var SessionCtxKey = contextKey("session")

// GetSessionFromContext retrieves the decoded session ticket from the context.
//
// Returns the ticket and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetSessionFromContext(ctx context.Context) (models.SessionTicket, bool) {
	ticket, ok := ctx.Value(SessionCtxKey).(models.SessionTicket)
	return ticket, ok
}
