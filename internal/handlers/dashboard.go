package handlers

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"
	"time"

	"dems-portal/internal/database"
	"dems-portal/internal/models"
	"dems-portal/internal/pipeline"
	"dems-portal/internal/stats"

	"github.com/gin-gonic/gin"
)

// Summary — данные карточек дашборда.
type Summary struct {
	TotalLeads        int64
	TotalClients      int64
	CompletedProjects int64
	LeadsTrend        stats.Trend
	ClientsTrend      stats.Trend
	GrowthRate        float64
}

// Dashboard — главный экран: карточки, график и таблица воронки.
func Dashboard(c *gin.Context) {
	role := sessionRole(c)
	uid := sessionUserID(c)

	rows, err := loadRows(role, uid)
	if err != nil {
		log.Printf("failed to load projects: %v", err)
		flash(c, "Failed to load projects")
		rows = nil
	}

	rows = pipeline.ApplyOrder(rows, rowOrder(c))
	state := pipeline.ParseState(c.Request.URL.Query())
	page := state.Apply(rows)

	summary, err := buildSummary(role, uid)
	if err != nil {
		log.Printf("failed to load stats: %v", err)
		flash(c, "Failed to load stats")
	}

	// график строится по тем же проектам, что и таблица
	days := stats.WindowDays(c.Query("range"))
	series := stats.DailySeries(scopedProjects(role, uid), days, time.Now())
	seriesJSON, _ := json.Marshal(series)

	salesUsers, engineerUsers, err := pickerUsers()
	if err != nil {
		log.Printf("failed to load users: %v", err)
		flash(c, "Failed to load users")
	}

	render(c, http.StatusOK, "dashboard.html", gin.H{
		"summary":    summary,
		"IsSales":    role == models.RoleSales,
		"seriesJSON": template.JS(seriesJSON),
		"rangeParam": c.DefaultQuery("range", "90d"),

		"page":      page,
		"state":     state,
		"pageSizes": pipeline.PageSizes,
		"statuses":  models.PipelineStatuses,

		"sales":     salesUsers,
		"engineers": engineerUsers,
	})
}

func scopedProjects(role models.UserRole, uid uint) []models.Project {
	dbq := database.DB.Order("created_at desc")
	if role == models.RoleSales {
		dbq = dbq.Where("sale_id = ?", uid)
	}
	var projects []models.Project
	if err := dbq.Find(&projects).Error; err != nil {
		log.Printf("failed to load projects for chart: %v", err)
		return nil
	}
	return projects
}

func buildSummary(role models.UserRole, uid uint) (Summary, error) {
	weekAgo := time.Now().AddDate(0, 0, -7)

	leads, err := countProjects(models.StatusLead, role, uid, nil)
	if err != nil {
		return Summary{}, err
	}
	clients, err := countProjects(models.StatusClient, role, uid, nil)
	if err != nil {
		return Summary{}, err
	}
	completed, err := countProjects(models.StatusCompleted, role, uid, nil)
	if err != nil {
		return Summary{}, err
	}

	// база тренда — счётчики на момент "неделю назад"
	prevLeads, err := countProjects(models.StatusLead, role, uid, &weekAgo)
	if err != nil {
		return Summary{}, err
	}
	prevClients, err := countProjects(models.StatusClient, role, uid, &weekAgo)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		TotalLeads:        leads,
		TotalClients:      clients,
		CompletedProjects: completed,
		LeadsTrend:        stats.NewTrend(prevLeads, leads),
		ClientsTrend:      stats.NewTrend(prevClients, clients),
		GrowthRate:        stats.GrowthRate(role),
	}, nil
}

func countProjects(status models.ProjectStatus, role models.UserRole, uid uint, before *time.Time) (int64, error) {
	dbq := database.DB.Model(&models.Project{}).Where("status = ?", status)
	if role == models.RoleSales {
		dbq = dbq.Where("sale_id = ?", uid)
	}
	if before != nil {
		dbq = dbq.Where("created_at < ?", *before)
	}

	var count int64
	err := dbq.Count(&count).Error
	return count, err
}
