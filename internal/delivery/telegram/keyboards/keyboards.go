package keyboards

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/telebot.v3"

	"hr-bot/internal/domain"
)

// Callback keys shared with the flows that handle them.
const (
	KeyRoute       = "route"
	KeyRoutesTable = "routes_table"
	KeySort        = "sort"
)

var ErrBadSort = errors.New("unknown sort option")

var (
	BtnAdd    = telebot.Btn{Text: "➕ Add employee"}
	BtnFind   = telebot.Btn{Text: "🔎 Find employee"}
	BtnList   = telebot.Btn{Text: "📋 Employees"}
	BtnRoutes = telebot.Btn{Text: "🧭 Routes"}
)

// MainMenu is the reply keyboard shown on /start.
func MainMenu() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(
		markup.Row(markup.Text(BtnAdd.Text), markup.Text(BtnFind.Text)),
		markup.Row(markup.Text(BtnList.Text), markup.Text(BtnRoutes.Text)),
	)
	return markup
}

// BuildDepartmentKeyboard lays out one button per department, two per row,
// plus a button for the full distance table.
func BuildDepartmentKeyboard(departments []string) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	var rows []telebot.Row
	for i := 0; i < len(departments); i += 2 {
		row := telebot.Row{markup.Data(departments[i], KeyRoute, departments[i])}
		if i+1 < len(departments) {
			row = append(row, markup.Data(departments[i+1], KeyRoute, departments[i+1]))
		}
		rows = append(rows, row)
	}
	rows = append(rows, markup.Row(markup.Data("All departments", KeyRoutesTable)))
	markup.Inline(rows...)
	return markup
}

// BuildSortKeyboard offers every sort key and direction.
func BuildSortKeyboard() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	btn := func(text string, key domain.SortKey, dir domain.Direction) telebot.Btn {
		return markup.Data(text, KeySort, SortPayload(key, dir))
	}
	markup.Inline(
		markup.Row(btn("ID ↑", domain.ByID, domain.Ascending), btn("ID ↓", domain.ByID, domain.Descending)),
		markup.Row(btn("Salary ↑", domain.BySalary, domain.Ascending), btn("Salary ↓", domain.BySalary, domain.Descending)),
	)
	return markup
}

// SortPayload encodes a sort choice as "key:direction", e.g. "salary:desc".
func SortPayload(key domain.SortKey, dir domain.Direction) string {
	return key.String() + ":" + dir.String()
}

// ParseSort decodes the "key:direction" payload of the sort keyboard.
func ParseSort(payload string) (domain.SortKey, domain.Direction, error) {
	key, dir, ok := strings.Cut(payload, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSort, payload)
	}

	var k domain.SortKey
	switch key {
	case "id":
		k = domain.ByID
	case "salary":
		k = domain.BySalary
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSort, payload)
	}

	var d domain.Direction
	switch dir {
	case "asc":
		d = domain.Ascending
	case "desc":
		d = domain.Descending
	default:
		return 0, 0, fmt.Errorf("%w: %q", ErrBadSort, payload)
	}
	return k, d, nil
}
