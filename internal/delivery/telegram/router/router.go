package router

import (
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

type HandlerFunc func(c telebot.Context, payload string) error

// CallbackRouter dispatches inline button callbacks by the unique key the
// button was created with.
type CallbackRouter struct {
	handlers map[string]HandlerFunc
	Log      *logrus.Entry
}

func New(log *logrus.Entry) *CallbackRouter {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &CallbackRouter{handlers: make(map[string]HandlerFunc), Log: log.WithField("component", "callbacks")}
}

func (r *CallbackRouter) Register(key string, h HandlerFunc) {
	r.handlers[key] = h
}

// Attach makes the router the bot's only OnCallback handler.
func (r *CallbackRouter) Attach(bot *telebot.Bot) {
	bot.Handle(telebot.OnCallback, func(c telebot.Context) error {
		_, err := r.Dispatch(c)
		return err
	})
}

// Dispatch runs the handler registered for the callback's key. It reports
// false when no handler matched.
func (r *CallbackRouter) Dispatch(c telebot.Context) (bool, error) {
	key, payload := ParseData(c.Data())
	r.Log.WithFields(logrus.Fields{"key": key, "payload": payload}).Debug("callback")
	_ = c.Respond()

	h, ok := r.handlers[key]
	if !ok {
		r.Log.WithField("key", key).Warn("no handler for callback")
		return false, nil
	}
	return true, h(c, payload)
}

// ParseData splits telebot callback data "\funique|payload" into its parts.
func ParseData(raw string) (key, payload string) {
	raw = strings.TrimPrefix(raw, "\f")
	key = raw
	if i := strings.IndexByte(raw, '|'); i >= 0 {
		key = raw[:i]
		payload = raw[i+1:]
	}
	return key, payload
}
