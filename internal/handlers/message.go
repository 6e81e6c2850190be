package handlers

import (
	"html/template"
	"log"
	"net/http"

	"dems-portal/internal/database"
	"dems-portal/internal/models"

	"github.com/gin-gonic/gin"
)

//
// ВХОДЯЩИЕ (только админ, доступ ограничен на роутере)
//

func ListMessages(c *gin.Context) {
	var messages []models.Message
	if err := database.DB.
		Preload("Sender").
		Order("created_at desc").
		Find(&messages).Error; err != nil {
		log.Printf("failed to load messages: %v", err)
		flash(c, "Failed to load messages")
	}

	render(c, http.StatusOK, "messages.html", gin.H{
		"messages": messages,
	})
}

// ShowMessage открывает письмо и помечает его прочитанным ровно один раз:
// повторное открытие уже прочитанного не трогает БД.
func ShowMessage(c *gin.Context) {
	var msg models.Message
	if err := database.DB.
		Preload("Sender").
		First(&msg, c.Param("id")).Error; err != nil {
		flash(c, "Message not found")
		c.Redirect(http.StatusFound, "/messages")
		return
	}

	if !msg.IsRead {
		if err := database.DB.Model(&msg).Update("is_read", true).Error; err != nil {
			// письмо всё равно показываем, флаг допохватим при следующем открытии
			log.Printf("failed to mark message %d as read: %v", msg.ID, err)
		} else {
			msg.IsRead = true
		}
	}

	render(c, http.StatusOK, "message_detail.html", gin.H{
		"message": msg,
		// содержимое письма — HTML из композера
		"content": template.HTML(msg.Content),
	})
}
