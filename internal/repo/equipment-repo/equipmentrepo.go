package equipmentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/restoreassist/billing/internal/domain"
	"github.com/restoreassist/billing/internal/pg"
	"go.uber.org/zap"
)

// Repository reads the equipment group catalog. The catalog is seeded
// by migrations and treated as read-only by the billing core.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetGroup(ctx context.Context, groupID string) (*domain.EquipmentGroup, error) {
	query := `
        SELECT id, name, category, amps, default_daily_rate_cents
        FROM equipment_groups
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, groupID)

	var group domain.EquipmentGroup
	err := row.Scan(&group.ID, &group.Name, &group.Category, &group.Amps, &group.DefaultDailyRateCents)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find equipment group", zap.Error(err))
		return nil, err
	}
	return &group, nil
}

func (r *Repository) ListGroups(ctx context.Context) ([]domain.EquipmentGroup, error) {
	query := `
        SELECT id, name, category, amps, default_daily_rate_cents
        FROM equipment_groups
        ORDER BY id
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't list equipment groups", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var groups []domain.EquipmentGroup
	for rows.Next() {
		var group domain.EquipmentGroup
		err := rows.Scan(&group.ID, &group.Name, &group.Category, &group.Amps, &group.DefaultDailyRateCents)
		if err != nil {
			zap.L().Error("can't scan equipment group", zap.Error(err))
			return nil, err
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return groups, nil
}
