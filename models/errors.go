package models

import "github.com/pkg/errors"

// Pipeline error taxonomy, matched with errors.Is in the controllers:
// not found -> 404, invalid transition -> 409, missing field -> 400.
var (
	ErrApplicantNotFound = errors.New("applicant not found")
	ErrFileNotFound      = errors.New("file not found")
	ErrInvalidTransition = errors.New("transition not allowed from current status")
	ErrMissingField      = errors.New("required field missing for target status")
)
