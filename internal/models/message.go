package models

import "gorm.io/gorm"

// Message — письмо, созданное через композер. Единственная мутация после
// создания — установка IsRead при первом открытии; письма не удаляются.
type Message struct {
	gorm.Model
	SenderID uint
	Sender   User

	Subject string `gorm:"size:255;not null"`
	Content string `gorm:"type:text"` // HTML

	IsRead bool `gorm:"not null;default:false"`

	// Колонка может отсутствовать в старой схеме — наличие проверяется
	// один раз на старте, см. database.SupportsRecipientEmail.
	RecipientEmail *string `gorm:"size:255"`
}
