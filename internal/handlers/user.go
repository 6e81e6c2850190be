package handlers

import (
	"log"
	"net/http"
	"strings"

	"dems-portal/internal/database"
	"dems-portal/internal/models"

	"github.com/gin-gonic/gin"
)

//
// СОТРУДНИКИ (только админ, доступ ограничен на роутере)
//

func ListUsers(c *gin.Context) {
	// админов в списке сотрудников не показываем
	var users []models.User
	if err := database.DB.
		Where("role <> ?", models.RoleAdmin).
		Order("created_at desc").
		Find(&users).Error; err != nil {
		log.Printf("failed to load users: %v", err)
		flash(c, "Failed to load users")
	}

	render(c, http.StatusOK, "users.html", gin.H{
		"users": users,
	})
}

func CreateUser(c *gin.Context) {
	firstName := strings.TrimSpace(c.PostForm("first_name"))
	lastName := strings.TrimSpace(c.PostForm("last_name"))
	roleStr := c.PostForm("role")
	pin := c.PostForm("pin")

	if firstName == "" || lastName == "" || pin == "" {
		flash(c, "Please fill in all required fields")
		c.Redirect(http.StatusFound, "/users")
		return
	}
	if len(pin) < 4 {
		flash(c, "PIN must be at least 4 characters")
		c.Redirect(http.StatusFound, "/users")
		return
	}

	// через форму заводятся только sales и engineer
	role := models.UserRole(roleStr)
	switch role {
	case models.RoleSales, models.RoleEngineer:
	default:
		flash(c, "Please select a role")
		c.Redirect(http.StatusFound, "/users")
		return
	}

	username := strings.ToLower(firstName + "." + lastName)
	username = strings.ReplaceAll(username, " ", "")

	var existing models.User
	if err := database.DB.
		Where("LOWER(username) = ?", username).
		First(&existing).Error; err == nil {
		flash(c, "An employee with this name already exists")
		c.Redirect(http.StatusFound, "/users")
		return
	}

	user := models.User{
		Username: username,
		Name:     firstName + " " + lastName,
		PIN:      pin,
		Role:     role,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		log.Printf("failed to create user: %v", err)
		flash(c, "Failed to add employee")
		c.Redirect(http.StatusFound, "/users")
		return
	}

	flash(c, "Employee added successfully")
	c.Redirect(http.StatusFound, "/users")
}

func DeleteUser(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, c.Param("id")).Error; err != nil {
		flash(c, "Employee not found")
		c.Redirect(http.StatusFound, "/users")
		return
	}

	// админа удалить нельзя даже админу
	if user.Role == models.RoleAdmin {
		flash(c, "Admins cannot be deleted")
		c.Redirect(http.StatusFound, "/users")
		return
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		log.Printf("failed to delete user %d: %v", user.ID, err)
		flash(c, "Failed to delete user")
		c.Redirect(http.StatusFound, "/users")
		return
	}

	flash(c, "User deleted successfully")
	c.Redirect(http.StatusFound, "/users")
}
