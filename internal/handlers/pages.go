package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func IndexPage(c *gin.Context) {
	sess := sessions.Default(c)
	if uid, ok := sess.Get("user_id").(uint); ok && uid > 0 {
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}
	c.Redirect(http.StatusFound, "/login")
}

// ComingSoon — заглушка для ещё не сделанных разделов.
func ComingSoon(title string) gin.HandlerFunc {
	return func(c *gin.Context) {
		render(c, http.StatusOK, "coming_soon.html", gin.H{
			"title": title,
		})
	}
}
