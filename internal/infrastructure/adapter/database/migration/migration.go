package migration

import (
	coreport "github.com/fbp-works/economy-service/internal/domain/port/core"
	"github.com/fbp-works/economy-service/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Manager applies schema migrations
type Manager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewManager creates a new migration manager
func NewManager(db *gorm.DB, logger coreport.Logger) *Manager {
	return &Manager{
		db:     db,
		logger: logger,
	}
}

// MigrateAll auto-migrates every model
func (m *Manager) MigrateAll() error {
	m.logger.Info("Starting database migrations", nil)

	models := []any{
		&model.User{},
		&model.Wallet{},
		&model.Transaction{},
		&model.Item{},
		&model.UserItem{},
		&model.ItemUsage{},
		&model.Quest{},
	}

	for _, mdl := range models {
		if err := m.db.AutoMigrate(mdl); err != nil {
			m.logger.Error("Failed to migrate model", map[string]any{
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Database migrations completed", nil)
	return nil
}
