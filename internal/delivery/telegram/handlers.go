package telegram

import (
	"errors"
	"strconv"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"hr-bot/internal/app/service"
	"hr-bot/internal/delivery/telegram/flows"
	"hr-bot/internal/delivery/telegram/keyboards"
	"hr-bot/internal/delivery/telegram/router"
	"hr-bot/internal/domain"
	"hr-bot/internal/report"
)

// awaiting is what the next plain text message in a chat is parsed as.
type awaiting int

const (
	awaitNothing awaiting = iota
	awaitNewEmployee
	awaitEmployeeID
)

const (
	addPrompt  = "Send the new employee as: Name; Department; Salary"
	findPrompt = "Send the employee ID to look up."
)

type Handler struct {
	Bot       *telebot.Bot
	Employees *service.EmployeeService
	Routes    *service.RouteService
	Log       *logrus.Entry

	mu      sync.Mutex
	waiting map[int64]awaiting // chatID -> expected input
}

func (h *Handler) Register() {
	if h.Log == nil {
		h.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	h.Log = h.Log.WithField("component", "telegram")

	h.Bot.Handle("/start", h.handleStart)
	h.Bot.Handle("/add", h.handleAdd)
	h.Bot.Handle("/find", h.handleFind)
	h.Bot.Handle("/list", h.handleList)
	h.Bot.Handle("/route", h.handleRoute)
	h.Bot.Handle("/routes", h.handleRoutesTable)
	h.Bot.Handle(telebot.OnText, h.handleText)

	r := router.New(h.Log)
	flows.RegisterEmployees(r, h.Employees)
	flows.RegisterRoutes(r, h.Routes)
	r.Attach(h.Bot)
}

func (h *Handler) handleStart(c telebot.Context) error {
	h.expect(c.Chat().ID, awaitNothing)
	return c.Send("Employee Management System\n\n"+
		"/add Name; Department; Salary - add an employee\n"+
		"/find ID - show an employee with net pay\n"+
		"/list - list employees\n"+
		"/route Department - shortest distances\n"+
		"/routes - distances between all departments", keyboards.MainMenu())
}

func (h *Handler) handleAdd(c telebot.Context) error {
	if payload := strings.TrimSpace(c.Message().Payload); payload != "" {
		return h.addEmployee(c, payload)
	}
	h.expect(c.Chat().ID, awaitNewEmployee)
	return c.Send(addPrompt + "\n" + report.DepartmentsHint(h.Routes.Departments()))
}

func (h *Handler) handleFind(c telebot.Context) error {
	if payload := strings.TrimSpace(c.Message().Payload); payload != "" {
		return h.findEmployee(c, payload)
	}
	h.expect(c.Chat().ID, awaitEmployeeID)
	return c.Send(findPrompt)
}

func (h *Handler) handleList(c telebot.Context) error {
	return c.Send(report.Employees(h.Employees.All())+"\nSort by:", keyboards.BuildSortKeyboard())
}

func (h *Handler) handleRoute(c telebot.Context) error {
	if start := strings.TrimSpace(c.Message().Payload); start != "" {
		return flows.SendDistances(c, h.Routes, start)
	}
	departments := h.Routes.Departments()
	return c.Send("Pick the start department.\n"+report.DepartmentsHint(departments),
		keyboards.BuildDepartmentKeyboard(departments))
}

func (h *Handler) handleRoutesTable(c telebot.Context) error {
	return flows.SendDistanceTable(c, h.Routes)
}

func (h *Handler) handleText(c telebot.Context) error {
	text := c.Text()
	switch text {
	case keyboards.BtnAdd.Text:
		h.expect(c.Chat().ID, awaitNewEmployee)
		return c.Send(addPrompt + "\n" + report.DepartmentsHint(h.Routes.Departments()))
	case keyboards.BtnFind.Text:
		h.expect(c.Chat().ID, awaitEmployeeID)
		return c.Send(findPrompt)
	case keyboards.BtnList.Text:
		h.expect(c.Chat().ID, awaitNothing)
		return h.handleList(c)
	case keyboards.BtnRoutes.Text:
		h.expect(c.Chat().ID, awaitNothing)
		departments := h.Routes.Departments()
		return c.Send("Pick the start department.", keyboards.BuildDepartmentKeyboard(departments))
	}

	switch h.awaited(c.Chat().ID) {
	case awaitNewEmployee:
		return h.addEmployee(c, text)
	case awaitEmployeeID:
		return h.findEmployee(c, text)
	}
	return nil
}

// addEmployee keeps the chat waiting for input until the text parses.
func (h *Handler) addEmployee(c telebot.Context, text string) error {
	in, err := ParseNewEmployee(text)
	if err != nil {
		h.expect(c.Chat().ID, awaitNewEmployee)
		return c.Send("Invalid input: " + err.Error() + ". Try again.")
	}
	e, err := h.Employees.Add(in.Name, in.Department, in.Salary)
	if err != nil {
		h.expect(c.Chat().ID, awaitNewEmployee)
		return c.Send("Invalid input: " + err.Error() + ". Try again.")
	}
	h.expect(c.Chat().ID, awaitNothing)
	h.Log.WithFields(logrus.Fields{"chat": c.Chat().ID, "id": e.ID}).Info("employee added via bot")
	return c.Send("✅ Employee added successfully! New ID: " + strconv.Itoa(e.ID) + "\n" + report.Employee(e))
}

// findEmployee keeps the chat in lookup mode so several ids can be checked in a row.
func (h *Handler) findEmployee(c telebot.Context, text string) error {
	id, err := ParseEmployeeID(text)
	if err != nil {
		h.expect(c.Chat().ID, awaitEmployeeID)
		return c.Send("Invalid input: " + err.Error() + ".")
	}
	slip, err := h.Employees.Lookup(id)
	if errors.Is(err, domain.ErrNotFound) {
		h.expect(c.Chat().ID, awaitEmployeeID)
		return c.Send("Employee not found. Send another ID or pick a menu button.")
	}
	if err != nil {
		return c.Send("Error looking up employee: " + err.Error())
	}
	h.expect(c.Chat().ID, awaitEmployeeID)
	return c.Send(report.Payslip(slip.Employee, slip.Deductions) + "\nSend another ID or pick a menu button.")
}

func (h *Handler) expect(chatID int64, what awaiting) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.waiting == nil {
		h.waiting = make(map[int64]awaiting)
	}
	if what == awaitNothing {
		delete(h.waiting, chatID)
		return
	}
	h.waiting[chatID] = what
}

func (h *Handler) awaited(chatID int64) awaiting {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.waiting[chatID]
}
