// Package pipeline держит состояние таблицы воронки: фильтры, сортировку,
// пагинацию и ручной порядок строк. Всё чистое, в памяти — порядок строк
// в базу не пишется никогда.
package pipeline

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"dems-portal/internal/models"
)

// Row — строка таблицы с уже резолвленными именами менеджера и инженера.
// Пустые Sale/Engineer означают отсутствующую ссылку (в шаблоне — "N/A").
type Row struct {
	ID         uint
	Name       string
	Status     models.ProjectStatus
	Sale       string
	Engineer   string
	SaleID     *uint
	EngineerID *uint
	Email      *string
}

func (r Row) SaleDisplay() string {
	if r.Sale == "" {
		return "N/A"
	}
	return r.Sale
}

func (r Row) EngineerDisplay() string {
	if r.Engineer == "" {
		return "N/A"
	}
	return r.Engineer
}

// PageSizes — допустимые размеры страницы.
var PageSizes = []int{10, 20, 30, 40, 50}

const DefaultPageSize = 10

// State — состояние вида, целиком восстанавливаемое из query-параметров.
type State struct {
	Tab      string // "all" или один из статусов
	Query    string // поиск по имени/менеджеру/инженеру
	SortKey  string // name | status | sale | engineer | id
	SortDesc bool
	Page     int // с единицы
	PageSize int
}

// ParseState читает состояние из query-параметров, подставляя дефолты
// вместо мусора.
func ParseState(q url.Values) State {
	s := State{
		Tab:      "all",
		Query:    strings.TrimSpace(q.Get("q")),
		SortKey:  q.Get("sort"),
		SortDesc: q.Get("dir") == "desc",
		Page:     1,
		PageSize: DefaultPageSize,
	}

	if tab := q.Get("tab"); tab != "" {
		if tab == "all" || models.ProjectStatus(tab).Valid() {
			s.Tab = tab
		}
	}

	switch s.SortKey {
	case "name", "status", "sale", "engineer", "id":
	default:
		s.SortKey = ""
	}

	if p, err := strconv.Atoi(q.Get("page")); err == nil && p > 0 {
		s.Page = p
	}

	if size, err := strconv.Atoi(q.Get("size")); err == nil {
		for _, allowed := range PageSizes {
			if size == allowed {
				s.PageSize = size
				break
			}
		}
	}

	return s
}

// Result — одна страница таблицы.
type Result struct {
	Rows      []Row
	Total     int // строк после фильтров
	Page      int
	PageCount int
}

// Apply прогоняет строки через фильтры, сортировку и пагинацию.
// Входной порядок (created_at desc плюс ручные перестановки) сохраняется,
// если сортировка не задана.
func (s State) Apply(rows []Row) Result {
	filtered := make([]Row, 0, len(rows))
	needle := strings.ToLower(s.Query)
	for _, r := range rows {
		if s.Tab != "all" && string(r.Status) != s.Tab {
			continue
		}
		if needle != "" && !matches(r, needle) {
			continue
		}
		filtered = append(filtered, r)
	}

	if s.SortKey != "" {
		sort.SliceStable(filtered, func(i, j int) bool {
			if s.SortDesc {
				i, j = j, i
			}
			return lessByKey(filtered[i], filtered[j], s.SortKey)
		})
	}

	total := len(filtered)
	pageCount := (total + s.PageSize - 1) / s.PageSize
	if pageCount == 0 {
		pageCount = 1
	}
	page := s.Page
	if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * s.PageSize
	end := start + s.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Rows:      filtered[start:end],
		Total:     total,
		Page:      page,
		PageCount: pageCount,
	}
}

func matches(r Row, needle string) bool {
	return strings.Contains(strings.ToLower(r.Name), needle) ||
		strings.Contains(strings.ToLower(r.Sale), needle) ||
		strings.Contains(strings.ToLower(r.Engineer), needle)
}

func lessByKey(a, b Row, key string) bool {
	switch key {
	case "name":
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	case "status":
		return statusRank(a.Status) < statusRank(b.Status)
	case "sale":
		return strings.ToLower(a.Sale) < strings.ToLower(b.Sale)
	case "engineer":
		return strings.ToLower(a.Engineer) < strings.ToLower(b.Engineer)
	case "id":
		return a.ID < b.ID
	}
	return false
}

// statusRank — позиция статуса в воронке, для сортировки по этапу.
func statusRank(s models.ProjectStatus) int {
	for i, st := range models.PipelineStatuses {
		if st == s {
			return i
		}
	}
	return len(models.PipelineStatuses)
}

// Move переставляет элемент с позиции from на позицию to (семантика
// перетаскивания строки). Индексы вне диапазона оставляют срез как есть.
func Move(order []uint, from, to int) []uint {
	if from < 0 || from >= len(order) || to < 0 || to >= len(order) || from == to {
		return order
	}
	out := make([]uint, 0, len(order))
	out = append(out, order[:from]...)
	out = append(out, order[from+1:]...)

	out = append(out[:to], append([]uint{order[from]}, out[to:]...)...)
	return out
}

// MoveID переставляет строку fromID на позицию строки toID в порядке order.
// Строка адресуется по id, а не по видимой позиции: отфильтрованная или
// отсортированная таблица показывает не те индексы, что хранятся в порядке.
// Неизвестный id оставляет срез как есть.
func MoveID(order []uint, fromID, toID uint) []uint {
	from := indexOf(order, fromID)
	to := indexOf(order, toID)
	if from < 0 || to < 0 {
		return order
	}
	return Move(order, from, to)
}

func indexOf(order []uint, id uint) int {
	for i, v := range order {
		if v == id {
			return i
		}
	}
	return -1
}

// ApplyOrder выстраивает строки по сохранённому порядку id. Строки, которых
// в порядке нет (созданные после перестановки), остаются в хвосте в своём
// исходном порядке.
func ApplyOrder(rows []Row, order []uint) []Row {
	if len(order) == 0 {
		return rows
	}

	pos := make(map[uint]int, len(order))
	for i, id := range order {
		pos[id] = i
	}

	known := make([]Row, 0, len(rows))
	rest := make([]Row, 0)
	for _, r := range rows {
		if _, ok := pos[r.ID]; ok {
			known = append(known, r)
		} else {
			rest = append(rest, r)
		}
	}

	sort.SliceStable(known, func(i, j int) bool {
		return pos[known[i].ID] < pos[known[j].ID]
	})

	return append(known, rest...)
}

// IDs возвращает порядок id текущего списка строк.
func IDs(rows []Row) []uint {
	ids := make([]uint, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}
