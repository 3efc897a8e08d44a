package model

import "errors"

var (
	// ErrExamNotFound indicates the referenced exam does not exist.
	ErrExamNotFound = errors.New("exam not found")
	// ErrQuestionNotFound indicates a submitted question ID is invalid.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrChoiceNotFound indicates a submitted choice ID is invalid.
	ErrChoiceNotFound = errors.New("choice not found")
	// ErrAnswerNotFound indicates an answer ID no longer resolves.
	ErrAnswerNotFound = errors.New("answer not found")
	// ErrUserNotFound indicates the referenced user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrParticipantNotFound indicates the referenced participant does not exist.
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrAlreadyRegistered is returned when a user already holds a
	// participant row for the exam, irrespective of attempt count.
	ErrAlreadyRegistered = errors.New("user already registered for this exam")
	// ErrAttemptLimitExceeded is returned when the next attempt number would
	// reach the exam's maximum attempts.
	ErrAttemptLimitExceeded = errors.New("maximum attempts reached")
	// ErrChoiceMismatch is returned when the choice belongs to a different question.
	ErrChoiceMismatch = errors.New("choice does not belong to question")
	// ErrNotRegistered is returned when the user has no participant row for
	// the question's exam.
	ErrNotRegistered = errors.New("user is not registered for this exam")
	// ErrDuplicateAnswer is returned when the question was already answered
	// by the participant.
	ErrDuplicateAnswer = errors.New("question already answered")

	// ErrUsernameTaken is returned on signup when the username exists.
	ErrUsernameTaken = errors.New("username already exists")
	// ErrInvalidCredentials is returned on failed login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPermissionDenied is returned when the caller's role does not allow
	// the operation.
	ErrPermissionDenied = errors.New("permission denied")
)
