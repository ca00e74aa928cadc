package equipmentservice

import (
	"context"
	"errors"
	"testing"

	"github.com/restoreassist/billing/internal/domain"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func NewMock(t *testing.T) (*Service, *MockCatalog) {
	ctrl := gomock.NewController(t)
	catalog := NewMockCatalog(ctrl)
	service := New(catalog)
	defer ctrl.Finish()
	return service, catalog
}

func lgrGroup() *domain.EquipmentGroup {
	return &domain.EquipmentGroup{
		ID:                    "lgr-dehumidifier",
		Name:                  "LGR Dehumidifier",
		Category:              domain.CategoryDehumidifier,
		Amps:                  6.4,
		DefaultDailyRateCents: 9500,
	}
}

func airmoverGroup() *domain.EquipmentGroup {
	return &domain.EquipmentGroup{
		ID:                    "airmover-axial",
		Name:                  "Axial Air Mover",
		Category:              domain.CategoryAirMover,
		Amps:                  1.9,
		DefaultDailyRateCents: 4500,
	}
}

func TestEstimate(t *testing.T) {
	service, catalog := NewMock(t)

	catalog.EXPECT().GetGroup(gomock.Any(), "lgr-dehumidifier").Return(lgrGroup(), nil)
	catalog.EXPECT().GetGroup(gomock.Any(), "airmover-axial").Return(airmoverGroup(), nil)

	selections := []domain.EquipmentSelection{
		{GroupID: "lgr-dehumidifier", Quantity: 2},
		{GroupID: "airmover-axial", Quantity: 6},
	}

	estimate, err := service.Estimate(context.Background(), selections, 3)
	assert.NoError(t, err)

	assert.Equal(t, int64(2*9500+6*4500), estimate.TotalDailyCostCents)
	assert.Equal(t, int64((2*9500+6*4500)*3), estimate.TotalCostCents)
	assert.InDelta(t, 2*6.4+6*1.9, estimate.TotalAmps, 1e-9)

	assert.Equal(t, domain.CategoryDehumidifier, estimate.Lines[0].Category)
	assert.Equal(t, domain.CategoryAirMover, estimate.Lines[1].Category)
}

func TestEstimateRateOverride(t *testing.T) {
	service, catalog := NewMock(t)

	catalog.EXPECT().GetGroup(gomock.Any(), "lgr-dehumidifier").Return(lgrGroup(), nil)

	override := int64(8000)
	selections := []domain.EquipmentSelection{
		{GroupID: "lgr-dehumidifier", Quantity: 2, DailyRateCentsOverride: &override},
	}

	estimate, err := service.Estimate(context.Background(), selections, 5)
	assert.NoError(t, err)
	assert.Equal(t, int64(16000), estimate.TotalDailyCostCents)
	assert.Equal(t, int64(80000), estimate.TotalCostCents)
	// Amps always come from the catalog, never the rate override.
	assert.InDelta(t, 12.8, estimate.TotalAmps, 1e-9)
}

func TestEstimateUnknownGroup(t *testing.T) {
	service, catalog := NewMock(t)

	catalog.EXPECT().GetGroup(gomock.Any(), "retired-heater").Return(nil, nil)

	selections := []domain.EquipmentSelection{
		{GroupID: "retired-heater", Quantity: 3},
	}

	estimate, err := service.Estimate(context.Background(), selections, 4)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), estimate.TotalCostCents)
	assert.Equal(t, 0.0, estimate.TotalAmps)
	assert.Len(t, estimate.Lines, 1)
}

func TestEstimateUnknownGroupWithOverride(t *testing.T) {
	service, catalog := NewMock(t)

	catalog.EXPECT().GetGroup(gomock.Any(), "retired-heater").Return(nil, nil)

	override := int64(2500)
	selections := []domain.EquipmentSelection{
		{GroupID: "retired-heater", Quantity: 2, DailyRateCentsOverride: &override},
	}

	estimate, err := service.Estimate(context.Background(), selections, 2)
	assert.NoError(t, err)
	assert.Equal(t, int64(5000), estimate.TotalDailyCostCents)
	assert.Equal(t, int64(10000), estimate.TotalCostCents)
	assert.Equal(t, 0.0, estimate.TotalAmps)
}

// Total cost must scale linearly in duration and in quantity.
func TestEstimateLinearity(t *testing.T) {
	service, catalog := NewMock(t)

	catalog.EXPECT().GetGroup(gomock.Any(), "lgr-dehumidifier").Return(lgrGroup(), nil).Times(3)

	one, err := service.Estimate(context.Background(), []domain.EquipmentSelection{{GroupID: "lgr-dehumidifier", Quantity: 1}}, 1)
	assert.NoError(t, err)

	tripleDays, err := service.Estimate(context.Background(), []domain.EquipmentSelection{{GroupID: "lgr-dehumidifier", Quantity: 1}}, 3)
	assert.NoError(t, err)
	assert.Equal(t, 3*one.TotalCostCents, tripleDays.TotalCostCents)

	tripleQty, err := service.Estimate(context.Background(), []domain.EquipmentSelection{{GroupID: "lgr-dehumidifier", Quantity: 3}}, 1)
	assert.NoError(t, err)
	assert.Equal(t, 3*one.TotalCostCents, tripleQty.TotalCostCents)
}

func TestEstimateInvalidDuration(t *testing.T) {
	service, _ := NewMock(t)

	_, err := service.Estimate(context.Background(), nil, 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestEstimateCatalogError(t *testing.T) {
	service, catalog := NewMock(t)

	catalog.EXPECT().GetGroup(gomock.Any(), "lgr-dehumidifier").Return(nil, errors.New("some error"))

	_, err := service.Estimate(context.Background(), []domain.EquipmentSelection{{GroupID: "lgr-dehumidifier", Quantity: 1}}, 1)
	assert.Error(t, err)
}

func TestClassifyFallback(t *testing.T) {
	tests := []struct {
		groupID  string
		expected domain.EquipmentCategory
	}{
		{"lgr-2000", domain.CategoryDehumidifier},
		{"desiccant-xl", domain.CategoryDehumidifier},
		{"airmover-low-profile", domain.CategoryAirMover},
		{"carpet-fan", domain.CategoryAirMover},
		{"hepa-scrubber", domain.CategoryAirScrubber},
		{"heat-drying-unit", domain.CategoryOther},
	}

	for _, tt := range tests {
		t.Run(tt.groupID, func(t *testing.T) {
			assert.Equal(t, tt.expected, classify(tt.groupID, nil))
		})
	}

	// An explicit catalog category always wins over the id markers.
	group := &domain.EquipmentGroup{ID: "lgr-dehumidifier", Category: domain.CategoryOther}
	assert.Equal(t, domain.CategoryOther, classify("lgr-dehumidifier", group))
}

func TestDryingStatusFor(t *testing.T) {
	tests := []struct {
		index    float64
		expected domain.DryingStatus
	}{
		{95, domain.DryingExcellent},
		{80, domain.DryingExcellent},
		{79.9, domain.DryingGood},
		{60, domain.DryingGood},
		{45, domain.DryingFair},
		{39.9, domain.DryingPoor},
		{0, domain.DryingPoor},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DryingStatusFor(tt.index))
	}
}
