package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"dems-portal/internal/database"
	"dems-portal/internal/models"

	"github.com/gin-gonic/gin"
)

// defaultBody — заготовка письма в редакторе; отправка с ней не считается
// написанным сообщением.
const defaultBody = "<p>Hi,</p>"

// recipients — записи воронки, которым вообще есть смысл писать: статус
// Lead или Client и заполненный email. Для sales — только свои.
func recipients(role models.UserRole, uid uint) ([]models.Project, error) {
	dbq := database.DB.
		Where("email IS NOT NULL").
		Where("status IN ?", []models.ProjectStatus{models.StatusLead, models.StatusClient}).
		Order("name asc")
	if role == models.RoleSales {
		dbq = dbq.Where("sale_id = ?", uid)
	}

	var projects []models.Project
	err := dbq.Find(&projects).Error
	return projects, err
}

func ShowCompose(c *gin.Context) {
	clients, err := recipients(sessionRole(c), sessionUserID(c))
	if err != nil {
		log.Printf("failed to load clients: %v", err)
		flash(c, "Failed to load clients")
	}

	render(c, http.StatusOK, "quickcreate.html", gin.H{
		"clients": clients,
		"subject": "",
		"content": defaultBody,
		"error":   "",
	})
}

func SendEmail(c *gin.Context) {
	subject := strings.TrimSpace(c.PostForm("subject"))
	content := c.PostForm("content")
	recipient := c.PostForm("recipient")

	// валидация до какого-либо запроса
	if subject == "" {
		renderComposeError(c, subject, content, "Please enter a subject")
		return
	}
	if strings.TrimSpace(content) == "" || content == defaultBody || content == "<p></p>" {
		renderComposeError(c, subject, content, "Please enter a message")
		return
	}
	if recipient == "" {
		renderComposeError(c, subject, content, "Please select a client email")
		return
	}

	msg := models.Message{
		SenderID: sessionUserID(c),
		Subject:  subject,
		Content:  content,
	}

	dbq := database.DB
	if database.SupportsRecipientEmail() {
		msg.RecipientEmail = &recipient
	} else {
		// старая схема без recipient_email: адресат кодируется в тему и тело,
		// а само поле при вставке пропускается
		msg.Subject = fmt.Sprintf("Email to %s: %s", recipient, subject)
		msg.Content = fmt.Sprintf("<p><strong>To: %s</strong></p>%s", recipient, content)
		dbq = dbq.Omit("RecipientEmail")
	}

	if err := dbq.Create(&msg).Error; err != nil {
		log.Printf("failed to send email: %v", err)
		renderComposeError(c, subject, content, "Failed to send email")
		return
	}

	flash(c, "Email sent successfully")
	c.Redirect(http.StatusFound, "/quickcreate")
}

func renderComposeError(c *gin.Context, subject, content, msg string) {
	clients, err := recipients(sessionRole(c), sessionUserID(c))
	if err != nil {
		log.Printf("failed to load clients: %v", err)
	}

	render(c, http.StatusBadRequest, "quickcreate.html", gin.H{
		"error":   msg,
		"clients": clients,
		"subject": subject,
		"content": content,
	})
}
