package equipmentservice

import (
	"context"
	"errors"
	"strings"

	"github.com/restoreassist/billing/internal/domain"
	"go.uber.org/zap"
)

// Catalog is the read-only equipment group store. A nil group with a
// nil error means the id is unknown; estimates tolerate that instead of
// failing on a stale reference.
type Catalog interface {
	GetGroup(ctx context.Context, groupID string) (*domain.EquipmentGroup, error)
	ListGroups(ctx context.Context) ([]domain.EquipmentGroup, error)
}

var ErrInvalidDuration = errors.New("duration must be at least one day")

type Service struct {
	catalog Catalog
}

func New(catalog Catalog) *Service {
	return &Service{catalog: catalog}
}

// Estimate aggregates the selected equipment into daily cost, total
// cost over the drying duration, and total electrical draw. Unknown
// group ids contribute zero cost and zero amps; they are logged and
// carried through so the estimate never hard-fails on a bad reference.
func (s *Service) Estimate(ctx context.Context, selections []domain.EquipmentSelection, durationDays int) (*domain.EquipmentEstimate, error) {
	if durationDays < 1 {
		return nil, ErrInvalidDuration
	}

	estimate := &domain.EquipmentEstimate{DurationDays: durationDays}

	for _, sel := range selections {
		group, err := s.catalog.GetGroup(ctx, sel.GroupID)
		if err != nil {
			return nil, err
		}
		if group == nil {
			zap.L().Warn("unknown equipment group in selection", zap.String("groupID", sel.GroupID))
		}

		line := domain.EquipmentEstimateLine{
			GroupID:  sel.GroupID,
			Quantity: sel.Quantity,
			Category: classify(sel.GroupID, group),
		}

		if group != nil {
			line.Name = group.Name
			line.DailyRateCents = group.DefaultDailyRateCents
			line.Amps = group.Amps * float64(sel.Quantity)
		}
		if sel.DailyRateCentsOverride != nil {
			line.DailyRateCents = *sel.DailyRateCentsOverride
		}

		line.DailyCostCents = line.DailyRateCents * int64(sel.Quantity)
		line.TotalCostCents = line.DailyCostCents * int64(durationDays)

		estimate.Lines = append(estimate.Lines, line)
		estimate.TotalDailyCostCents += line.DailyCostCents
		estimate.TotalCostCents += line.TotalCostCents
		estimate.TotalAmps += line.Amps
	}

	return estimate, nil
}

func (s *Service) GetCatalog(ctx context.Context) ([]domain.EquipmentGroup, error) {
	groups, err := s.catalog.ListGroups(ctx)
	if err != nil {
		zap.L().Error("failed to list equipment groups", zap.Error(err))
		return nil, err
	}
	return groups, nil
}

// classify prefers the catalog's explicit category. Legacy catalog rows
// (and unknown ids) fall back to substring markers in the group id,
// which preserves the grouping behavior of the old id-based data.
func classify(groupID string, group *domain.EquipmentGroup) domain.EquipmentCategory {
	if group != nil && group.Category != "" {
		return group.Category
	}

	id := strings.ToLower(groupID)
	switch {
	case strings.Contains(id, "lgr"), strings.Contains(id, "dehu"), strings.Contains(id, "desiccant"):
		return domain.CategoryDehumidifier
	case strings.Contains(id, "airmover"), strings.Contains(id, "fan"):
		return domain.CategoryAirMover
	case strings.Contains(id, "scrubber"), strings.Contains(id, "afd"):
		return domain.CategoryAirScrubber
	default:
		return domain.CategoryOther
	}
}

// DryingStatusFor labels the drying conditions for an estimate. The
// index itself is computed upstream from environmental readings and
// treated as opaque here.
func DryingStatusFor(dryingIndex float64) domain.DryingStatus {
	switch {
	case dryingIndex >= 80:
		return domain.DryingExcellent
	case dryingIndex >= 60:
		return domain.DryingGood
	case dryingIndex >= 40:
		return domain.DryingFair
	default:
		return domain.DryingPoor
	}
}
