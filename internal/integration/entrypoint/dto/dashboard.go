package dto

import (
	"github.com/motorista-real/backend/internal/application/usecase/dashboard"
)

// SnapshotResponse represents the derived daily figures in API responses.
type SnapshotResponse struct {
	Earnings              string  `json:"earnings"`
	Expenses              string  `json:"expenses"`
	AmortizedCost         string  `json:"amortized_cost"`
	MaintReserve          string  `json:"maint_reserve"`
	DailyDepreciation     string  `json:"daily_depreciation"`
	Profit                string  `json:"profit"`
	DistanceKm            float64 `json:"distance_km"`
	DistanceEstimated     bool    `json:"distance_estimated"`
	CurrentEstimatedValue *string `json:"current_estimated_value,omitempty"`
}

// GoalResponse represents the dynamic goal projection in API responses.
type GoalResponse struct {
	BaseGoal           string  `json:"base_goal"`
	DynamicGoal        string  `json:"dynamic_goal"`
	AccumulatedDeficit string  `json:"accumulated_deficit"`
	RemainingDays      int     `json:"remaining_days"`
	IsDiluted          bool    `json:"is_diluted"`
	ProgressRaw        float64 `json:"progress_raw"`
	ProgressDisplay    float64 `json:"progress_display"`
	ProgressBar        float64 `json:"progress_bar"`
}

// DailySummaryResponse represents the dashboard summary in API responses.
type DailySummaryResponse struct {
	Date     string           `json:"date"`
	Vehicle  VehicleResponse  `json:"vehicle"`
	Snapshot SnapshotResponse `json:"snapshot"`
	Goal     GoalResponse     `json:"goal"`
}

// ToDailySummaryResponse converts the use case output to the response DTO.
func ToDailySummaryResponse(out *dashboard.GetDailySummaryOutput) DailySummaryResponse {
	snap := SnapshotResponse{
		Earnings:          out.Snapshot.Earnings.String(),
		Expenses:          out.Snapshot.Expenses.String(),
		AmortizedCost:     out.Snapshot.AmortizedCost.String(),
		MaintReserve:      out.Snapshot.MaintReserve.String(),
		DailyDepreciation: out.Snapshot.DailyDepreciation.String(),
		Profit:            out.Snapshot.Profit.String(),
		DistanceKm:        out.Snapshot.Distance,
		DistanceEstimated: out.Snapshot.DistanceEstimated,
	}
	if out.Snapshot.CurrentEstimatedValue != nil {
		s := out.Snapshot.CurrentEstimatedValue.String()
		snap.CurrentEstimatedValue = &s
	}

	return DailySummaryResponse{
		Date:     out.Date.Format("2006-01-02"),
		Vehicle:  ToVehicleResponse(out.Vehicle),
		Snapshot: snap,
		Goal: GoalResponse{
			BaseGoal:           out.Projection.BaseGoal.String(),
			DynamicGoal:        out.Projection.DynamicGoal.String(),
			AccumulatedDeficit: out.Projection.AccumulatedDeficit.String(),
			RemainingDays:      out.Projection.RemainingDays,
			IsDiluted:          out.Projection.IsDiluted,
			ProgressRaw:        out.Progress.Raw,
			ProgressDisplay:    out.Progress.Display,
			ProgressBar:        out.Progress.Bar,
		},
	}
}
