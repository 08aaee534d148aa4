package db

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/thisisbigmike/deriversedashboard/internal/infra/repository"
)

func ApplyMigrations(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&repository.TradeRecordModel{},
		&repository.JournalEntryModel{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return nil
}
