package config

const (
	LoggerName = "homework_bot"

	StatusChangedTemplate = "Изменился статус проверки работы \"%s\". %s"
	FailureTemplate       = "Сбой в работе программы: %v"
	MessageSent           = "Сообщение отправлено"
)
