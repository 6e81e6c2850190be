package database

import (
	"log"
	"time"

	"dems-portal/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// supportsRecipientEmail — есть ли в таблице messages колонка
// recipient_email. Проверяется один раз после миграций, дальше композер
// смотрит только на флаг (никакого разбора текста ошибок).
var supportsRecipientEmail bool

func Init(driver, dsn string) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		DB, err = gorm.Open(open(driver, dsn), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	// миграции
	err = DB.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Message{},
	)
	if err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	DetectCapabilities()
}

func open(driver, dsn string) gorm.Dialector {
	if driver == "sqlite" {
		return sqlite.Open(dsn)
	}
	return postgres.Open(dsn)
}

// DetectCapabilities обновляет флаги по фактической схеме.
func DetectCapabilities() {
	supportsRecipientEmail = DB.Migrator().HasColumn(&models.Message{}, "recipient_email")
	if !supportsRecipientEmail {
		log.Println("messages.recipient_email is missing, composer will embed the recipient into the subject")
	}
}

func SupportsRecipientEmail() bool {
	return supportsRecipientEmail
}
