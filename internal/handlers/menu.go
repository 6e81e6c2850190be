package handlers

import "dems-portal/internal/models"

type MenuItem struct {
	Title string
	URL   string
}

// Два статичных меню: админское и всех остальных. Меню выбирается ролью,
// а не вычисляется из прав.
var adminMenu = []MenuItem{
	{"Dashboard", "/dashboard"},
	{"Users", "/users"},
	{"Messages", "/messages"},
	{"Quick Create", "/quickcreate"},
	{"Analytics", "/analytics"},
	{"Tasks", "/tasks"},
	{"Calendar", "/calendar"},
}

var employeeMenu = []MenuItem{
	{"Dashboard", "/dashboard"},
	{"Quick Create", "/quickcreate"},
	{"Tasks", "/tasks"},
	{"Calendar", "/calendar"},
}

// общий хвост сайдбара
var secondaryMenu = []MenuItem{
	{"Data Library", "/data-library"},
	{"Reports", "/reports"},
	{"Documentation", "/documentation"},
	{"Settings", "/settings"},
	{"Search", "/search"},
	{"Get Help", "/help"},
}

func menuFor(role models.UserRole) []MenuItem {
	main := employeeMenu
	if role == models.RoleAdmin {
		main = adminMenu
	}
	out := make([]MenuItem, 0, len(main)+len(secondaryMenu))
	out = append(out, main...)
	out = append(out, secondaryMenu...)
	return out
}
