package middleware

import (
	"net/http"

	"dems-portal/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		uid, ok := sess.Get("user_id").(uint)
		if !ok || uid == 0 {
			// битую сессию молча считаем отсутствующей
			sess.Clear()
			_ = sess.Save()
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin пускает только админа; остальных возвращает на дашборд
// с уведомлением. Проверка только на клиентской стороне доверия — сервер
// сессию никак дополнительно не валидирует.
func RequireAdmin(notice string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		roleStr, _ := sess.Get("role").(string)

		if models.UserRole(roleStr) != models.RoleAdmin {
			sess.AddFlash(notice)
			_ = sess.Save()
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectIfAuthed — залогиненных с /login отправляем на дашборд.
func RedirectIfAuthed() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if uid, ok := sess.Get("user_id").(uint); ok && uid > 0 {
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}
