package middleware

import (
	"strings"

	"gopkg.in/telebot.v3"
)

// EditOrSend replaces the message behind a callback with text, falling back
// to a new message when there is nothing to edit. An unchanged message is
// not an error.
func EditOrSend(c telebot.Context, text string, opts ...interface{}) error {
	if c.Callback() == nil {
		return c.Send(text, opts...)
	}
	err := c.Edit(text, opts...)
	if err == nil || strings.Contains(err.Error(), "not modified") {
		return nil
	}
	return c.Send(text, opts...)
}
