package models

import "gorm.io/gorm"

type ProjectStatus string

// Статусы воронки, по порядку.
const (
	StatusLead      ProjectStatus = "Lead"
	StatusClient    ProjectStatus = "Client"
	StatusInDev     ProjectStatus = "In Development"
	StatusCompleted ProjectStatus = "Completed"
)

// PipelineStatuses — порядок вкладок в таблице.
var PipelineStatuses = []ProjectStatus{StatusLead, StatusClient, StatusInDev, StatusCompleted}

// Project — запись воронки (в интерфейсе называется "клиент").
// SaleID/EngineerID необязательны; соответствие роли пользователя
// на уровне БД не проверяется.
type Project struct {
	gorm.Model
	Name   string        `gorm:"size:255;not null"`
	Status ProjectStatus `gorm:"type:varchar(50);not null"`

	SaleID     *uint
	Sale       *User `gorm:"foreignKey:SaleID"`
	EngineerID *uint
	Engineer   *User `gorm:"foreignKey:EngineerID"`

	Email *string `gorm:"size:255"` // контактный email клиента
}

func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusLead, StatusClient, StatusInDev, StatusCompleted:
		return true
	}
	return false
}
