package domain

import "errors"

var (
	// ErrUnauthorized is returned when no valid session accompanies a request.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrForbidden is returned when the session role does not permit the operation.
	ErrForbidden = errors.New("forbidden")
	// ErrQuestionNotFound indicates the referenced question does not exist.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrUserNotFound indicates the referenced participant does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrAlreadyAnswered is returned when a participant already has an attempt
	// for the question; at most one attempt per (user, question) is stored.
	ErrAlreadyAnswered = errors.New("question already answered")
	// ErrNumberRequired is returned when a participant without a registered
	// start number tries to open a question.
	ErrNumberRequired = errors.New("start number not registered")
	// ErrValidation indicates malformed input that cannot be coerced.
	ErrValidation = errors.New("validation failed")
)
