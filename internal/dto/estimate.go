package dto

import "encoding/json"

type EquipmentSelectionDTO struct {
	GroupID                string `json:"group_id" example:"lgr-dehumidifier"`
	Quantity               int    `json:"quantity" example:"2"`
	DailyRateCentsOverride *int64 `json:"daily_rate_cents_override,omitempty" example:"8000"`
}

type EquipmentEstimateRequestDTO struct {
	Selections   []EquipmentSelectionDTO `json:"selections"`
	DurationDays int                     `json:"duration_days" example:"3"`
	DryingIndex  *float64                `json:"drying_index,omitempty" example:"72.5"`

	// Raw because upstream clients send a number, a list, or a
	// JSON-encoded string; normalized before any calculation.
	MoistureReadings json.RawMessage `json:"moisture_readings,omitempty" swaggertype:"object"`
}

type EquipmentEstimateLineDTO struct {
	GroupID        string  `json:"group_id" example:"lgr-dehumidifier"`
	Name           string  `json:"name,omitempty" example:"LGR Dehumidifier"`
	Category       string  `json:"category" example:"DEHUMIDIFIER"`
	Quantity       int     `json:"quantity" example:"2"`
	DailyRateCents int64   `json:"daily_rate_cents" example:"9500"`
	DailyCostCents int64   `json:"daily_cost_cents" example:"19000"`
	TotalCostCents int64   `json:"total_cost_cents" example:"57000"`
	Amps           float64 `json:"amps" example:"12.8"`
}

type EquipmentEstimateResponseDTO struct {
	Lines               []EquipmentEstimateLineDTO `json:"lines"`
	DurationDays        int                        `json:"duration_days" example:"3"`
	TotalDailyCostCents int64                      `json:"total_daily_cost_cents" example:"19000"`
	TotalCostCents      int64                      `json:"total_cost_cents" example:"57000"`
	TotalAmps           float64                    `json:"total_amps" example:"12.8"`
	DryingStatus        string                     `json:"drying_status,omitempty" example:"GOOD"`
	MoistureAverage     *float64                   `json:"moisture_average,omitempty" example:"17.2"`
}

type EquipmentGroupDTO struct {
	ID                    string  `json:"id" example:"lgr-dehumidifier"`
	Name                  string  `json:"name" example:"LGR Dehumidifier"`
	Category              string  `json:"category" example:"DEHUMIDIFIER"`
	Amps                  float64 `json:"amps" example:"6.4"`
	DefaultDailyRateCents int64   `json:"default_daily_rate_cents" example:"9500"`
}
