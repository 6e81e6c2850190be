package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleSales    UserRole = "sales"
	RoleEngineer UserRole = "engineer"
)

// User — сотрудник портала. PIN хранится открытым текстом и сравнивается
// строкой — так устроен вход в DEMS (внутренний инструмент), не заменять
// хешированием без смены самой схемы логина.
type User struct {
	gorm.Model
	Username string   `gorm:"uniqueIndex;size:50;not null"` // матчится без учёта регистра
	Name     string   `gorm:"size:255;not null"`
	PIN      string   `gorm:"size:50;not null"`
	Role     UserRole `gorm:"type:varchar(20);not null"`
}

func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleSales, RoleEngineer:
		return true
	}
	return false
}
