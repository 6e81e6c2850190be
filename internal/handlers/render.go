package handlers

import (
	"dems-portal/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// render — обёртка над c.HTML: прокидывает во все шаблоны CurrentUser,
// меню по роли и накопленные flash-уведомления.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	// Пользователь, которого положил middleware.InjectUser
	if uVal, ok := c.Get("CurrentUser"); ok {
		if u, ok := uVal.(models.User); ok {
			data["CurrentUser"] = u
			data["CurrentUserRole"] = u.Role
			data["IsAdmin"] = u.Role == models.RoleAdmin
			data["Menu"] = menuFor(u.Role)
		}
	}

	sess := sessions.Default(c)
	if flashes := sess.Flashes(); len(flashes) > 0 {
		_ = sess.Save()
		data["Notices"] = flashes
	}

	c.HTML(status, tmpl, data)
}

// flash откладывает уведомление до следующего отрендеренного экрана.
func flash(c *gin.Context, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg)
	_ = sess.Save()
}
