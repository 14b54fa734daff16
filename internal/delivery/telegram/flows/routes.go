package flows

import (
	"context"
	"errors"
	"html"
	"time"

	"gopkg.in/telebot.v3"

	"hr-bot/internal/app/service"
	"hr-bot/internal/delivery/telegram/keyboards"
	"hr-bot/internal/delivery/telegram/middleware"
	"hr-bot/internal/delivery/telegram/router"
	"hr-bot/internal/report"
	"hr-bot/internal/routing"
)

const tableTimeout = 10 * time.Second

func RegisterRoutes(r *router.CallbackRouter, routes *service.RouteService) {
	r.Register(keyboards.KeyRoute, func(c telebot.Context, payload string) error {
		return SendDistances(c, routes, payload)
	})

	r.Register(keyboards.KeyRoutesTable, func(c telebot.Context, _ string) error {
		return SendDistanceTable(c, routes)
	})
}

// SendDistances answers a shortest-distance query from start.
func SendDistances(c telebot.Context, routes *service.RouteService, start string) error {
	departments := routes.Departments()
	dist, err := routes.ShortestDistances(start)
	if errors.Is(err, routing.ErrInvalidStart) {
		return middleware.EditOrSend(c, "Invalid department.\n"+report.DepartmentsHint(departments),
			keyboards.BuildDepartmentKeyboard(departments))
	}
	if err != nil {
		return c.Send("Error computing routes: " + err.Error())
	}
	return middleware.EditOrSend(c, report.Distances(start, departments, dist), keyboards.BuildDepartmentKeyboard(departments))
}

func SendDistanceTable(c telebot.Context, routes *service.RouteService) error {
	ctx, cancel := context.WithTimeout(context.Background(), tableTimeout)
	defer cancel()

	rows, err := routes.DistanceTable(ctx)
	if err != nil {
		return c.Send("Error computing routes: " + err.Error())
	}
	text := "<pre>" + html.EscapeString(report.DistanceTable(routes.Departments(), rows)) + "</pre>"
	return middleware.EditOrSend(c, text, &telebot.SendOptions{ParseMode: telebot.ModeHTML})
}
