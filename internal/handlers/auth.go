package handlers

import (
	"net/http"
	"strings"

	"dems-portal/internal/database"
	"dems-portal/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func ShowLogin(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{"error": ""})
}

type loginForm struct {
	Username string `form:"username"`
	PIN      string `form:"pin"`
}

func Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Please enter both username and PIN"})
		return
	}

	form.Username = strings.TrimSpace(form.Username)
	if form.Username == "" || form.PIN == "" {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Please enter both username and PIN"})
		return
	}

	// логин матчится без учёта регистра
	var user models.User
	if err := database.DB.
		Where("LOWER(username) = ?", strings.ToLower(form.Username)).
		First(&user).Error; err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid username or PIN"})
		return
	}

	// PIN сравнивается строкой, см. models.User
	if user.PIN != form.PIN {
		render(c, http.StatusBadRequest, "login.html", gin.H{"error": "Invalid username or PIN"})
		return
	}

	sess := sessions.Default(c)
	sess.Set("user_id", user.ID)
	sess.Set("role", string(user.Role))
	sess.Set("name", user.Name)
	_ = sess.Save()

	c.Redirect(http.StatusFound, "/dashboard")
}

func Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusFound, "/login")
}
