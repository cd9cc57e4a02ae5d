package models

import "github.com/pkg/errors"

var (
	// ErrInvalidMobileNumber is returned when a mobile number fails the `mobile` rule.
	ErrInvalidMobileNumber = errors.New("Invalid Mobile Number! Must be a non-zero 9-digit number.")

	// ErrInvalidIndex is returned by position-addressed operations on ContactBook
	// when the index is outside [0, Len()).
	ErrInvalidIndex = errors.New("Invalid contact index.")
)
