package repository

type LastMessage interface {
	// LastMessage returns the last sent text or an empty string.
	LastMessage() string
	Save(message string)
}
