package errors

import "errors"

var (
	ErrCredentialsMissing = errors.New("Отсутствует обязательная переменная окружения")
	ErrAPIAccess          = errors.New("Ошибка обращения к API")
	ErrResponseShape      = errors.New("Ответ API не соответствует документации")
	ErrWrongType          = errors.New("Ошибка типа данных")
	ErrMissingKey         = errors.New("API не содержит ключа homeworks")
	ErrEmptyHomeworks     = errors.New("Список домашек пуст")
	ErrMissingField       = errors.New("Нет обязательных ключей в словаре")
	ErrUnknownStatus      = errors.New("Неизвестный статус")
	ErrNotificationSend   = errors.New("Ошибка при отправке сообщения")
)

// WrongType reports a value of unexpected type, expected names the wanted one (dict, list).
func WrongType(expected string) error {
	return &shapeError{
		cause: ErrWrongType,
		msg:   ErrWrongType.Error() + " " + expected,
	}
}

// MissingKey reports a response without the homeworks key.
func MissingKey() error {
	return &shapeError{
		cause: ErrMissingKey,
		msg:   ErrMissingKey.Error(),
	}
}

type shapeError struct {
	cause error
	msg   string
}

func (e *shapeError) Error() string {
	return e.msg
}

func (e *shapeError) Is(target error) bool {
	return target == e.cause || target == ErrResponseShape
}
