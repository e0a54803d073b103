package errorvalues

import "errors"

var (
	ErrValidation       = errors.New("request didn't pass validation")
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrOwnerNotFound    = errors.New("habit owner doesn't exists")
	ErrHabitNotFound    = errors.New("habit doesn't exists")
	ErrWrongOwner       = errors.New("habit belongs to different user")
	ErrAlreadyCompleted = errors.New("habit already completed today")
	ErrPersistence      = errors.New("writing state to disk failed")
	ErrInvalidToken     = errors.New("invalid token")
)
