package handlers_test

import (
	"net/http"
	"testing"

	"dems-portal/internal/database"
	"dems-portal/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createMessage(t *testing.T, senderID uint, subject string, read bool) models.Message {
	t.Helper()
	m := models.Message{SenderID: senderID, Subject: subject, Content: "<p>Hello</p>", IsRead: read}
	require.NoError(t, database.DB.Create(&m).Error)
	return m
}

func TestMessagesPageIsAdminOnly(t *testing.T) {
	r := setup(t)
	createUser(t, "jane.doe", "Jane Doe", "1234", models.RoleSales)

	cookies := login(t, r, "jane.doe", "1234")
	w := get(r, "/messages", cookies)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	follow := get(r, "/dashboard", merged(cookies, w))
	assert.Contains(t, follow.Body.String(), "Only admins can access messages")
}

func TestInboxListsNewestFirstWithSender(t *testing.T) {
	r := setup(t)
	createUser(t, "admin", "Administrator", "0000", models.RoleAdmin)
	sender := createUser(t, "jane.doe", "Jane Doe", "1234", models.RoleSales)
	createMessage(t, sender.ID, "Older subject", false)
	createMessage(t, sender.ID, "Newer subject", false)

	cookies := login(t, r, "admin", "0000")
	w := get(r, "/messages", cookies)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Jane Doe")
	assert.Less(t, indexOf(body, "Newer subject"), indexOf(body, "Older subject"))
}

func TestOpeningMessageMarksReadExactlyOnce(t *testing.T) {
	r := setup(t)
	createUser(t, "admin", "Administrator", "0000", models.RoleAdmin)
	sender := createUser(t, "jane.doe", "Jane Doe", "1234", models.RoleSales)
	m := createMessage(t, sender.ID, "Unread subject", false)

	cookies := login(t, r, "admin", "0000")

	w := get(r, "/messages/"+uintString(m.ID), cookies)
	assert.Equal(t, http.StatusOK, w.Code)

	var afterFirst models.Message
	require.NoError(t, database.DB.First(&afterFirst, m.ID).Error)
	assert.True(t, afterFirst.IsRead)

	// повторное открытие не делает update: updated_at не сдвигается
	w = get(r, "/messages/"+uintString(m.ID), cookies)
	assert.Equal(t, http.StatusOK, w.Code)

	var afterSecond models.Message
	require.NoError(t, database.DB.First(&afterSecond, m.ID).Error)
	assert.True(t, afterSecond.IsRead)
	assert.Equal(t, afterFirst.UpdatedAt, afterSecond.UpdatedAt)
}
