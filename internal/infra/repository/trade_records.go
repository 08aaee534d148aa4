package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/thisisbigmike/deriversedashboard/internal/domain"
)

type GormTradeRepository struct {
	db *gorm.DB
}

func NewGormTradeRepository(db *gorm.DB) (*GormTradeRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db is required")
	}
	return &GormTradeRepository{db: db}, nil
}

func (r *GormTradeRepository) UpsertTrades(ctx context.Context, trades []domain.Trade) error {
	if len(trades) == 0 {
		return nil
	}

	models := make([]TradeRecordModel, len(trades))
	for i, trade := range trades {
		models[i] = toTradeRecordModel(trade)
	}

	assignments := clause.Assignments(map[string]interface{}{
		"symbol":           gorm.Expr("EXCLUDED.symbol"),
		"side":             gorm.Expr("EXCLUDED.side"),
		"market_type":      gorm.Expr("EXCLUDED.market_type"),
		"order_type":       gorm.Expr("EXCLUDED.order_type"),
		"entry_price":      gorm.Expr("EXCLUDED.entry_price"),
		"exit_price":       gorm.Expr("EXCLUDED.exit_price"),
		"size":             gorm.Expr("EXCLUDED.size"),
		"notional":         gorm.Expr("EXCLUDED.notional"),
		"pnl":              gorm.Expr("EXCLUDED.pnl"),
		"pnl_percent":      gorm.Expr("EXCLUDED.pnl_percent"),
		"entry_time":       gorm.Expr("EXCLUDED.entry_time"),
		"exit_time":        gorm.Expr("EXCLUDED.exit_time"),
		"duration_minutes": gorm.Expr("EXCLUDED.duration_minutes"),
		"maker_fee":        gorm.Expr("EXCLUDED.maker_fee"),
		"taker_fee":        gorm.Expr("EXCLUDED.taker_fee"),
		"funding_fee":      gorm.Expr("EXCLUDED.funding_fee"),
		"total_fees":       gorm.Expr("EXCLUDED.total_fees"),
		"notes":            gorm.Expr("EXCLUDED.notes"),
		"tags":             gorm.Expr("EXCLUDED.tags"),
		"updated_at":       gorm.Expr("CURRENT_TIMESTAMP"),
	})

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "owner_id"}, {Name: "trade_id"}},
			DoUpdates: assignments,
		}).
		CreateInBatches(&models, 200).Error
}

func (r *GormTradeRepository) GetTrade(ctx context.Context, ownerID, tradeID string) (domain.Trade, error) {
	var model TradeRecordModel
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND trade_id = ?", ownerID, tradeID).
		First(&model).Error
	if err != nil {
		return domain.Trade{}, err
	}

	return model.toDomain(), nil
}

func (r *GormTradeRepository) ListTrades(ctx context.Context, ownerID string, limit int) ([]domain.Trade, error) {
	var models []TradeRecordModel
	query := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("entry_time DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	trades := make([]domain.Trade, len(models))
	for i, model := range models {
		trades[i] = model.toDomain()
	}

	return trades, nil
}
