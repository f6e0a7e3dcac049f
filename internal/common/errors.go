package common

import "errors"

// Kind classifies a domain failure.
type Kind string

const (
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindForbidden    Kind = "forbidden"
	KindInvalidState Kind = "invalid_state"
	KindValidation   Kind = "validation"
	KindInternal     Kind = "internal"
)

// AppError is a classified domain error. Sentinels are compared by identity with errors.Is.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

// NewAppError creates a classified error.
func NewAppError(kind Kind, code, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

var (
	ErrUserNotFound  = NewAppError(KindNotFound, "user_not_found", "user not found")
	ErrVenueNotFound = NewAppError(KindNotFound, "venue_not_found", "venue not found")
	ErrFieldNotFound = NewAppError(KindNotFound, "field_not_found", "field not found")
	ErrSlotNotFound  = NewAppError(KindNotFound, "slot_not_found", "time slot not found")
	ErrMatchNotFound = NewAppError(KindNotFound, "match_not_found", "match not found")

	ErrSlotNotAvailable = NewAppError(KindConflict, "slot_not_available", "time slot is not available")
	ErrWaitlistClosed   = NewAppError(KindConflict, "waitlist_closed", "match is full and the waitlist is disabled")
	ErrVenueExists      = NewAppError(KindConflict, "venue_exists", "user already owns a venue profile")
	ErrFieldLocked      = NewAppError(KindConflict, "field_locked", "field is referenced by time slots and can no longer be changed")
	ErrEmailTaken       = NewAppError(KindConflict, "email_taken", "email is already registered")

	ErrForbidden = NewAppError(KindForbidden, "forbidden", "you are not allowed to perform this action")

	ErrCaptainCannotLeave = NewAppError(KindInvalidState, "captain_cannot_leave", "the captain cannot leave the match; cancel it instead")
	ErrInvalidTransition  = NewAppError(KindInvalidState, "invalid_transition", "match status cannot be changed")
	ErrMatchNotCompleted  = NewAppError(KindInvalidState, "match_not_completed", "match is not completed")
	ErrMatchNotActive     = NewAppError(KindInvalidState, "match_not_active", "match is not active")

	ErrInvalidCategory    = NewAppError(KindValidation, "invalid_category", "unknown review category")
	ErrInvalidRating      = NewAppError(KindValidation, "invalid_rating", "rating must be between 1 and 10")
	ErrInvalidCapacity    = NewAppError(KindValidation, "invalid_capacity", "max players must be at least 1")
	ErrInvalidSchedule    = NewAppError(KindValidation, "invalid_schedule", "invalid schedule range")
	ErrInvalidCredentials = NewAppError(KindValidation, "invalid_credentials", "invalid email or password")
)

// KindOf returns the kind of the first AppError in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// AsAppError unwraps the first AppError in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	ok := errors.As(err, &appErr)
	return appErr, ok
}
