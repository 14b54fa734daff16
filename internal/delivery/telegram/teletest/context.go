// Package teletest provides an in-memory telebot.Context for handler tests.
package teletest

import (
	"fmt"
	"sync"

	"gopkg.in/telebot.v3"
)

// Context records what a handler sends or edits. Methods it does not
// override panic through the nil embedded telebot.Context.
type Context struct {
	telebot.Context

	ChatID int64
	// TextValue is the incoming message text; Payload the text after a command.
	TextValue string
	Payload   string
	// CallbackData is the raw callback data; a non-empty value makes
	// Callback() non-nil.
	CallbackData string
	// EditErr is returned by Edit.
	EditErr error

	mu        sync.Mutex
	Sent      []string
	Edited    []string
	Responded int
}

func NewMessage(chatID int64, text string) *Context {
	return &Context{ChatID: chatID, TextValue: text}
}

func NewCallback(chatID int64, data string) *Context {
	return &Context{ChatID: chatID, CallbackData: data}
}

func (c *Context) Send(what interface{}, _ ...interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Sent = append(c.Sent, fmt.Sprint(what))
	return nil
}

func (c *Context) Edit(what interface{}, _ ...interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.EditErr != nil {
		return c.EditErr
	}
	c.Edited = append(c.Edited, fmt.Sprint(what))
	return nil
}

func (c *Context) Respond(_ ...*telebot.CallbackResponse) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Responded++
	return nil
}

func (c *Context) Data() string {
	if c.CallbackData != "" {
		return c.CallbackData
	}
	return c.Payload
}

func (c *Context) Text() string { return c.TextValue }

func (c *Context) Chat() *telebot.Chat { return &telebot.Chat{ID: c.ChatID} }

func (c *Context) Sender() *telebot.User { return &telebot.User{ID: c.ChatID} }

func (c *Context) Message() *telebot.Message {
	return &telebot.Message{Text: c.TextValue, Payload: c.Payload, Chat: c.Chat()}
}

func (c *Context) Callback() *telebot.Callback {
	if c.CallbackData == "" {
		return nil
	}
	return &telebot.Callback{Data: c.CallbackData, Message: c.Message()}
}

// LastSent returns the most recent Send text, or "" when nothing was sent.
func (c *Context) LastSent() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.Sent) == 0 {
		return ""
	}
	return c.Sent[len(c.Sent)-1]
}
