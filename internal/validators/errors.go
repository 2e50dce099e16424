package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID              = errors.New("pending change has no user id")
	ErrInvalidEntityID            = errors.New("pending change has no entity id")
	ErrMissingPayload             = errors.New("pending change has no record payload")
	ErrInvalidPayload             = errors.New("pending change payload is not a record")
	ErrInvalidPasswordChangeCount = errors.New("offline password change count out of range")
)
