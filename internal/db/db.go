package db

import (
	"log"
	"time"

	"github.com/BruksfildServices01/gente-api/internal/config"
	"github.com/BruksfildServices01/gente-api/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// linhas anteriores à coluna de versão
	db.Exec(`UPDATE grupos SET versao = 1 WHERE versao IS NULL OR versao = 0`)
	db.Exec(`UPDATE empresas SET versao = 1 WHERE versao IS NULL OR versao = 0`)

	return db
}

// Migrate cria ou atualiza as tabelas. Usado também pelos testes com SQLite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Region{},
		&models.Group{},
		&models.Company{},
		&models.GroupFocalPoint{},
		&models.CompanyFocalPoint{},
		&models.AuditLog{},
	)
}
