package stats

import (
	"testing"
	"time"

	"dems-portal/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestTrendPercent(t *testing.T) {
	tests := []struct {
		name string
		prev int64
		cur  int64
		want float64
	}{
		{"growth", 10, 15, 50.0},
		{"decline", 10, 8, -20.0},
		{"zero base", 0, 5, 0},
		{"no change", 7, 7, 0},
		{"one decimal", 3, 4, 33.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TrendPercent(tt.prev, tt.cur))
		})
	}
}

func TestNewTrend(t *testing.T) {
	up := NewTrend(10, 15)
	assert.Equal(t, 50.0, up.Value)
	assert.True(t, up.Up)

	down := NewTrend(10, 8)
	assert.Equal(t, 20.0, down.Value)
	assert.False(t, down.Up)

	// нулевая база считается ростом на 0%
	flat := NewTrend(0, 5)
	assert.Equal(t, 0.0, flat.Value)
	assert.True(t, flat.Up)
}

func TestGrowthRate(t *testing.T) {
	assert.Equal(t, 4.5, GrowthRate(models.RoleAdmin))
	assert.Equal(t, 4.5, GrowthRate(models.RoleEngineer))
	assert.Equal(t, 0.0, GrowthRate(models.RoleSales))
}

func TestWindowDays(t *testing.T) {
	assert.Equal(t, 7, WindowDays("7d"))
	assert.Equal(t, 30, WindowDays("30d"))
	assert.Equal(t, 90, WindowDays("90d"))
	assert.Equal(t, 90, WindowDays(""))
	assert.Equal(t, 90, WindowDays("nonsense"))
}

func projectAt(status models.ProjectStatus, created time.Time) models.Project {
	p := models.Project{Status: status}
	p.CreatedAt = created
	return p
}

func TestDailySeriesDense(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	projects := []models.Project{
		projectAt(models.StatusLead, now),
		projectAt(models.StatusLead, now.AddDate(0, 0, -1)),
		projectAt(models.StatusClient, now.AddDate(0, 0, -1)),
		// день -3 остаётся пустым
		projectAt(models.StatusLead, now.AddDate(0, 0, -6)),
		// вне окна и вне учитываемых статусов
		projectAt(models.StatusLead, now.AddDate(0, 0, -10)),
		projectAt(models.StatusCompleted, now),
	}

	series := DailySeries(projects, 7, now)
	assert.Len(t, series, 7)

	assert.Equal(t, "2026-03-04", series[0].Date)
	assert.Equal(t, "2026-03-10", series[6].Date)

	// пустой день присутствует с нулями
	assert.Equal(t, "2026-03-07", series[3].Date)
	assert.Equal(t, 0, series[3].Leads)
	assert.Equal(t, 0, series[3].Clients)

	assert.Equal(t, 1, series[0].Leads)
	assert.Equal(t, 1, series[5].Leads)
	assert.Equal(t, 1, series[5].Clients)
	assert.Equal(t, 1, series[6].Leads)
	assert.Equal(t, 0, series[6].Clients) // Completed не считается
}

func TestDailySeriesEmpty(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	series := DailySeries(nil, 30, now)

	assert.Len(t, series, 30)
	for _, p := range series {
		assert.Zero(t, p.Leads)
		assert.Zero(t, p.Clients)
	}
}
