package database

import (
	"log"

	"dems-portal/internal/models"
)

// Seed создаёт дефолтного админа и пару демо-пользователей, если их ещё нет.
func Seed(adminUsername, adminPIN string) {
	if adminUsername == "" {
		adminUsername = "admin"
	}
	if adminPIN == "" {
		adminPIN = "0000"
	}

	createDefaultAdmin(adminUsername, adminPIN)
	seedDefaultUsers()
}

// админ только из кода/конфига, через форму сотрудников его не завести
func createDefaultAdmin(username, pin string) {
	var count int64
	if err := DB.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Printf("failed to check admin user: %v", err)
		return
	}
	if count > 0 {
		// админ уже есть — ничего не делаем
		return
	}

	admin := models.User{
		Username: username,
		Name:     "Administrator",
		PIN:      pin,
		Role:     models.RoleAdmin,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("failed to create default admin: %v", err)
		return
	}

	log.Printf("created default admin user: %s (pin: %s)", username, pin)
}

// демо-аккаунты sales и engineer
func seedDefaultUsers() {
	type seedUser struct {
		Username string
		Name     string
		PIN      string
		Role     models.UserRole
	}

	users := []seedUser{
		{
			Username: "jane.doe",
			Name:     "Jane Doe",
			PIN:      "1234",
			Role:     models.RoleSales,
		},
		{
			Username: "john.smith",
			Name:     "John Smith",
			PIN:      "1234",
			Role:     models.RoleEngineer,
		},
	}

	for _, u := range users {
		var count int64
		if err := DB.Model(&models.User{}).
			Where("username = ?", u.Username).
			Count(&count).Error; err != nil {
			log.Printf("failed to check seed user %s: %v", u.Username, err)
			continue
		}
		if count > 0 {
			// уже есть — пропускаем
			continue
		}

		user := models.User{
			Username: u.Username,
			Name:     u.Name,
			PIN:      u.PIN,
			Role:     u.Role,
		}

		if err := DB.Create(&user).Error; err != nil {
			log.Printf("failed to create seed user %s: %v", u.Username, err)
			continue
		}

		log.Printf("created seed user: %s (role=%s, pin=%s)", u.Username, u.Role, u.PIN)
	}
}
