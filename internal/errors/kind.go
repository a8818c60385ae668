package errors

import "errors"

type Kind uint8

const (
	KindUnknown Kind = iota
	KindCredentialsMissing
	KindAPIAccess
	KindResponseShape
	KindEmptyResult
	KindMissingField
	KindUnknownStatus
	KindNotificationSend
)

var kindNames = map[Kind]string{
	KindUnknown:            "unknown",
	KindCredentialsMissing: "credentials_missing",
	KindAPIAccess:          "api_access",
	KindResponseShape:      "response_shape",
	KindEmptyResult:        "empty_result",
	KindMissingField:       "missing_field",
	KindUnknownStatus:      "unknown_status",
	KindNotificationSend:   "notification_send",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// KindOf classifies err by the first sentinel it wraps.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrCredentialsMissing):
		return KindCredentialsMissing
	case errors.Is(err, ErrNotificationSend):
		return KindNotificationSend
	case errors.Is(err, ErrAPIAccess):
		return KindAPIAccess
	case errors.Is(err, ErrResponseShape), errors.Is(err, ErrWrongType), errors.Is(err, ErrMissingKey):
		return KindResponseShape
	case errors.Is(err, ErrEmptyHomeworks):
		return KindEmptyResult
	case errors.Is(err, ErrMissingField):
		return KindMissingField
	case errors.Is(err, ErrUnknownStatus):
		return KindUnknownStatus
	default:
		return KindUnknown
	}
}
