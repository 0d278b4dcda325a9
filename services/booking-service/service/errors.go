package service

import "errors"

var (
	// ErrStepIncomplete: the current step is missing required fields.
	ErrStepIncomplete = errors.New("current step is incomplete")
	// ErrStepLocked: the request targets a step the draft is not on.
	ErrStepLocked = errors.New("step is not editable in the current state")
)
