// Package stats — вычисления для карточек и графика дашборда.
package stats

import (
	"math"
	"time"

	"dems-portal/internal/models"
)

// TrendPercent — изменение к прошлой неделе в процентах, один знак после
// запятой. При нулевой базе возвращает 0, а не бесконечность.
func TrendPercent(prev, cur int64) float64 {
	if prev <= 0 {
		return 0
	}
	return math.Round(float64(cur-prev)/float64(prev)*100*10) / 10
}

// Trend — значение для бейджа: модуль процента и направление.
type Trend struct {
	Value float64
	Up    bool
}

func NewTrend(prev, cur int64) Trend {
	v := TrendPercent(prev, cur)
	return Trend{Value: math.Abs(v), Up: v >= 0}
}

// GrowthRate — декоративная карточка "Growth Rate": фиксированные 4.5%,
// для sales принудительно 0. Это не метрика, воспроизводим как есть.
func GrowthRate(role models.UserRole) float64 {
	if role == models.RoleSales {
		return 0
	}
	return 4.5
}

// WindowDays — окно графика из query-параметра range.
func WindowDays(r string) int {
	switch r {
	case "7d":
		return 7
	case "30d":
		return 30
	}
	return 90
}

// Point — один день графика.
type Point struct {
	Date    string `json:"date"` // 2006-01-02, локальная дата
	Leads   int    `json:"leads"`
	Clients int    `json:"clients"`
}

// DailySeries считает по дням число созданных проектов в статусах Lead и
// Client за последние days дней. Ряд плотный: дни без проектов присутствуют
// с нулями. Даты — календарные дни в зоне now.
func DailySeries(projects []models.Project, days int, now time.Time) []Point {
	loc := now.Location()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	start := end.AddDate(0, 0, -(days - 1))

	type bucket struct{ leads, clients int }
	buckets := make(map[string]*bucket, days)

	series := make([]Point, 0, days)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		buckets[key] = &bucket{}
		series = append(series, Point{Date: key})
	}

	for _, p := range projects {
		if p.Status != models.StatusLead && p.Status != models.StatusClient {
			continue
		}
		key := p.CreatedAt.In(loc).Format("2006-01-02")
		b, ok := buckets[key]
		if !ok {
			continue // вне окна
		}
		if p.Status == models.StatusLead {
			b.leads++
		} else {
			b.clients++
		}
	}

	for i := range series {
		b := buckets[series[i].Date]
		series[i].Leads = b.leads
		series[i].Clients = b.clients
	}

	return series
}
