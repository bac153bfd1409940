package httperr

import "errors"

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

const (
	CodeValidationFailed = "validation_failed"
	CodeNoPendingDelete  = "no_pending_delete"
	CodeInvalidID        = "invalid_id"
	CodeRequestInFlight  = "request_in_flight"
)
