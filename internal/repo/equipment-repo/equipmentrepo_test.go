package equipmentrepo

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/restoreassist/billing/internal/domain"
	"github.com/stretchr/testify/assert"
)

var groupColumns = []string{"id", "name", "category", "amps", "default_daily_rate_cents"}

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetGroup(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		groupID   string
		mockSetup func()
		expectErr bool
		result    *domain.EquipmentGroup
	}{
		{
			name:    "Group exists",
			groupID: "lgr-dehumidifier",
			mockSetup: func() {
				rows := pgxmock.NewRows(groupColumns).
					AddRow("lgr-dehumidifier", "LGR Dehumidifier", domain.CategoryDehumidifier, 6.4, int64(9500))
				mock.ExpectQuery(`SELECT .+ FROM equipment_groups WHERE id = \$1`).
					WithArgs("lgr-dehumidifier").
					WillReturnRows(rows)
			},
			result: &domain.EquipmentGroup{
				ID:                    "lgr-dehumidifier",
				Name:                  "LGR Dehumidifier",
				Category:              domain.CategoryDehumidifier,
				Amps:                  6.4,
				DefaultDailyRateCents: 9500,
			},
		},
		{
			name:    "Unknown group returns nil without error",
			groupID: "retired-heater",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .+ FROM equipment_groups WHERE id = \$1`).
					WithArgs("retired-heater").
					WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name:    "Database error",
			groupID: "lgr-dehumidifier",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT .+ FROM equipment_groups WHERE id = \$1`).
					WithArgs("lgr-dehumidifier").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			got, err := repo.GetGroup(context.Background(), tt.groupID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, got)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_ListGroups(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows(groupColumns).
		AddRow("airmover-axial", "Axial Air Mover", domain.CategoryAirMover, 1.9, int64(4500)).
		AddRow("lgr-dehumidifier", "LGR Dehumidifier", domain.CategoryDehumidifier, 6.4, int64(9500))
	mock.ExpectQuery(`SELECT .+ FROM equipment_groups`).
		WillReturnRows(rows)

	groups, err := repo.ListGroups(context.Background())
	assert.NoError(t, err)
	assert.Len(t, groups, 2)
	assert.Equal(t, "airmover-axial", groups[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
