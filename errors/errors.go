// Package errors defines the error taxonomy of the coordinator.
// Each sentinel maps to exactly one refusal class at the gRPC boundary.
package errors

import "fmt"

var (
	// Identity Gate
	ErrUnauthenticated    = fmt.Errorf("missing, malformed or expired credential")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")
	ErrTokenGeneration    = fmt.Errorf("token generation failed")
	ErrUserInactive       = fmt.Errorf("user account is deactivated")

	// Lookups
	ErrUserNotFound    = fmt.Errorf("user not found")
	ErrRoomNotFound    = fmt.Errorf("room not found")
	ErrMessageNotFound = fmt.Errorf("message not found")

	// Entitlement
	ErrForbidden = fmt.Errorf("not entitled to perform this operation")

	// Conflicts
	ErrUserAlreadyExists   = fmt.Errorf("username already taken")
	ErrMemberAlreadyExists = fmt.Errorf("user is already a member of this room")
	ErrRoomFull            = fmt.Errorf("room member limit reached")

	// Input
	ErrInvalidInput  = fmt.Errorf("invalid input")
	ErrInvalidStatus = fmt.Errorf("invalid presence status")

	// Message lifecycle
	ErrEditWindowExpired = fmt.Errorf("edit window expired")
	ErrMessageDeleted    = fmt.Errorf("message has been deleted")

	// Runtime
	ErrWorkerPanic = fmt.Errorf("worker panic")
)
