package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"dems-portal/internal/database"
	"dems-portal/internal/models"
	"dems-portal/internal/pipeline"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func sessionUserID(c *gin.Context) uint {
	uid, _ := sessions.Default(c).Get("user_id").(uint)
	return uid
}

func sessionRole(c *gin.Context) models.UserRole {
	roleStr, _ := sessions.Default(c).Get("role").(string)
	return models.UserRole(roleStr)
}

// loadRows собирает строки таблицы: сначала карта id → имя по менеджерам и
// инженерам, затем проекты (для sales — только свои), свежие сверху.
func loadRows(role models.UserRole, uid uint) ([]pipeline.Row, error) {
	var users []models.User
	if err := database.DB.
		Where("role IN ?", []models.UserRole{models.RoleSales, models.RoleEngineer}).
		Find(&users).Error; err != nil {
		return nil, err
	}

	names := make(map[uint]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Name
	}

	dbq := database.DB.Order("created_at desc")
	if role == models.RoleSales {
		dbq = dbq.Where("sale_id = ?", uid)
	}

	var projects []models.Project
	if err := dbq.Find(&projects).Error; err != nil {
		return nil, err
	}

	rows := make([]pipeline.Row, 0, len(projects))
	for _, p := range projects {
		r := pipeline.Row{
			ID:         p.ID,
			Name:       p.Name,
			Status:     p.Status,
			SaleID:     p.SaleID,
			EngineerID: p.EngineerID,
			Email:      p.Email,
		}
		// отсутствующая ссылка остаётся пустой, "N/A" — дело шаблона
		if p.SaleID != nil {
			r.Sale = names[*p.SaleID]
		}
		if p.EngineerID != nil {
			r.Engineer = names[*p.EngineerID]
		}
		rows = append(rows, r)
	}

	return rows, nil
}

//
// РУЧНОЙ ПОРЯДОК СТРОК
//

// Порядок хранится в сессии строкой "id,id,...". В таблицу проектов он не
// пишется — это настройка вида, а не данные.
func rowOrder(c *gin.Context) []uint {
	raw, _ := sessions.Default(c).Get("row_order").(string)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	order := make([]uint, 0, len(parts))
	for _, p := range parts {
		if id, err := strconv.ParseUint(p, 10, 32); err == nil {
			order = append(order, uint(id))
		}
	}
	return order
}

func saveRowOrder(c *gin.Context, order []uint) {
	parts := make([]string, len(order))
	for i, id := range order {
		parts[i] = strconv.FormatUint(uint64(id), 10)
	}
	sess := sessions.Default(c)
	sess.Set("row_order", strings.Join(parts, ","))
	_ = sess.Save()
}

// ReorderRows переставляет перетащенную строку на место целевой. Форма
// передаёт id строк, а не видимые позиции: при активном фильтре, сортировке
// или на второй странице позиция в таблице не совпадает с позицией в
// сохранённом порядке.
func ReorderRows(c *gin.Context) {
	fromID, errF := strconv.ParseUint(c.PostForm("from"), 10, 32)
	toID, errT := strconv.ParseUint(c.PostForm("to"), 10, 32)
	if errF != nil || errT != nil {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	rows, err := loadRows(sessionRole(c), sessionUserID(c))
	if err != nil {
		log.Printf("failed to load projects for reorder: %v", err)
		flash(c, "Failed to load projects")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	ids := pipeline.IDs(pipeline.ApplyOrder(rows, rowOrder(c)))
	saveRowOrder(c, pipeline.MoveID(ids, uint(fromID), uint(toID)))

	c.Redirect(http.StatusFound, "/dashboard")
}

//
// СОЗДАНИЕ ЗАПИСИ ВОРОНКИ
//

func CreateProject(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	statusStr := c.PostForm("status")
	saleIDStr := c.PostForm("sale_id")
	engineerIDStr := c.PostForm("engineer_id")
	email := strings.TrimSpace(c.PostForm("email"))

	// валидация до любого обращения к БД
	if name == "" {
		flash(c, "Please enter a project name")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	status := models.ProjectStatus(statusStr)
	if !status.Valid() {
		flash(c, "Please select a status")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	var saleID *uint
	if saleIDStr != "" {
		if id, err := strconv.Atoi(saleIDStr); err == nil && id > 0 {
			v := uint(id)
			saleID = &v
		}
	}

	var engineerID *uint
	if engineerIDStr != "" {
		if id, err := strconv.Atoi(engineerIDStr); err == nil && id > 0 {
			v := uint(id)
			engineerID = &v
		}
	}

	// sales создаёт записи только на себя, что бы ни пришло из формы
	if sessionRole(c) == models.RoleSales {
		uid := sessionUserID(c)
		saleID = &uid
	}

	project := models.Project{
		Name:       name,
		Status:     status,
		SaleID:     saleID,
		EngineerID: engineerID,
	}
	if email != "" {
		project.Email = &email
	}

	if err := database.DB.Create(&project).Error; err != nil {
		log.Printf("failed to create project: %v", err)
		flash(c, "Failed to add client")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	flash(c, "Client added successfully")
	c.Redirect(http.StatusFound, "/dashboard")
}

//
// ПАНЕЛЬ ДЕТАЛЕЙ
//

// ShowProject — панель редактирования. Открыта всем, но поля изменяемы
// только у админа; кнопка Save появляется лишь при отличии значений от
// снапшота открытия (сравнение в шаблоне).
func ShowProject(c *gin.Context) {
	role := sessionRole(c)
	uid := sessionUserID(c)

	var project models.Project
	dbq := database.DB
	if role == models.RoleSales {
		dbq = dbq.Where("sale_id = ?", uid)
	}
	if err := dbq.First(&project, c.Param("id")).Error; err != nil {
		flash(c, "Client not found")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	salesUsers, engineerUsers, err := pickerUsers()
	if err != nil {
		log.Printf("failed to load users: %v", err)
		flash(c, "Failed to load users")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	render(c, http.StatusOK, "project_detail.html", gin.H{
		"project":   project,
		"sales":     salesUsers,
		"engineers": engineerUsers,
		"statuses":  models.PipelineStatuses,
	})
}

func pickerUsers() (sales, engineers []models.User, err error) {
	if err = database.DB.Where("role = ?", models.RoleSales).Order("name asc").Find(&sales).Error; err != nil {
		return
	}
	err = database.DB.Where("role = ?", models.RoleEngineer).Order("name asc").Find(&engineers).Error
	return
}

func UpdateProject(c *gin.Context) {
	// менять запись может только админ; проверка до обращения к БД
	if sessionRole(c) != models.RoleAdmin {
		flash(c, "You do not have permission to edit clients")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	var project models.Project
	if err := database.DB.First(&project, c.Param("id")).Error; err != nil {
		flash(c, "Client not found")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	status := models.ProjectStatus(c.PostForm("status"))
	if name == "" || !status.Valid() {
		flash(c, "Name and status are required")
		c.Redirect(http.StatusFound, "/projects/"+c.Param("id"))
		return
	}

	project.Name = name
	project.Status = status

	project.SaleID = nil
	if s := c.PostForm("sale_id"); s != "" {
		if id, err := strconv.Atoi(s); err == nil && id > 0 {
			v := uint(id)
			project.SaleID = &v
		}
	}

	project.EngineerID = nil
	if s := c.PostForm("engineer_id"); s != "" {
		if id, err := strconv.Atoi(s); err == nil && id > 0 {
			v := uint(id)
			project.EngineerID = &v
		}
	}

	if err := database.DB.Save(&project).Error; err != nil {
		log.Printf("failed to update project %d: %v", project.ID, err)
		flash(c, "Failed to update project")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	flash(c, "Project updated successfully")
	c.Redirect(http.StatusFound, "/dashboard")
}

//
// УДАЛЕНИЕ
//

func DeleteProject(c *gin.Context) {
	// подтверждение удаления проходит только у админа, без запроса к БД
	if sessionRole(c) != models.RoleAdmin {
		flash(c, "You do not have permission to delete clients")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		flash(c, "Client not found")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	if err := database.DB.Delete(&models.Project{}, id).Error; err != nil {
		log.Printf("failed to delete project %d: %v", id, err)
		flash(c, "Failed to delete client")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	flash(c, "Client deleted successfully")
	c.Redirect(http.StatusFound, "/dashboard")
}
