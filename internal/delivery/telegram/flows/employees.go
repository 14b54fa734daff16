package flows

import (
	"gopkg.in/telebot.v3"

	"hr-bot/internal/app/service"
	"hr-bot/internal/delivery/telegram/keyboards"
	"hr-bot/internal/delivery/telegram/middleware"
	"hr-bot/internal/delivery/telegram/router"
	"hr-bot/internal/report"
)

func RegisterEmployees(r *router.CallbackRouter, employees *service.EmployeeService) {
	r.Register(keyboards.KeySort, func(c telebot.Context, payload string) error {
		key, dir, err := keyboards.ParseSort(payload)
		if err != nil {
			return c.Send("Unknown sort option, pick one of the buttons.")
		}
		list := employees.List(key, dir)
		return middleware.EditOrSend(c, report.Employees(list), keyboards.BuildSortKeyboard())
	})
}
