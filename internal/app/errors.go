package app

import "errors"

// InvalidRequestError is special error type returned when any request params are invalid
type InvalidRequestError string

// Error implements error interface
func (e InvalidRequestError) Error() string {
	return string(e)
}

// IsInvalidRequestError checks if given error is caused by invalid request
func IsInvalidRequestError(err error) bool {
	var e InvalidRequestError
	return errors.As(err, &e)
}

// DatasetError is returned when contributors dataset is malformed.
type DatasetError string

// Error implements error interface
func (e DatasetError) Error() string {
	return string(e)
}

// IsDatasetError checks if given error is caused by malformed dataset
func IsDatasetError(err error) bool {
	var e DatasetError
	return errors.As(err, &e)
}

// TooManyRequestsError is returned when outgoing call rate limit can't be satisfied.
type TooManyRequestsError string

// Error implements error interface
func (e TooManyRequestsError) Error() string {
	return string(e)
}

// IsTooManyRequestsError checks if given error is caused by rate limiting
func IsTooManyRequestsError(err error) bool {
	var e TooManyRequestsError
	return errors.As(err, &e)
}
