package telegram

// chat addresses the notified chat by its raw id, "@channel" names work too.
type chat string

func (c chat) Recipient() string {
	return string(c)
}
