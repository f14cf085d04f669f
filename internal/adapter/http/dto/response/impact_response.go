package response

import (
	"nexus_recycle/internal/domain/impact"
	"nexus_recycle/internal/usecase"
)

type MilestoneResponse struct {
	ThresholdKg float64 `json:"threshold_kg"`
	ProgressKg  float64 `json:"progress_kg"`
	RemainingKg float64 `json:"remaining_kg"`
	Fraction    float64 `json:"fraction"`
}

type ImpactResponse struct {
	TransactionCount  int                `json:"transaction_count"`
	TotalWeightKg     float64            `json:"total_weight_kg"`
	TotalCO2Kg        float64            `json:"total_co2_kg"`
	TreesEquivalent   int                `json:"trees_equivalent"`
	CarKmOffset       float64            `json:"car_km_offset"`
	MaterialBreakdown map[string]float64 `json:"material_breakdown"`
	Milestone         MilestoneResponse  `json:"milestone"`
}

type DashboardResponse struct {
	Profile            ProfileResponse       `json:"profile"`
	Impact             ImpactResponse        `json:"impact"`
	RecentTransactions []TransactionResponse `json:"recent_transactions"`
	HasActiveScan      bool                  `json:"has_active_scan"`
}

func FromReport(r impact.Report) ImpactResponse {
	breakdown := r.MaterialBreakdown
	if breakdown == nil {
		breakdown = map[string]float64{}
	}
	return ImpactResponse{
		TransactionCount:  r.TransactionCount,
		TotalWeightKg:     r.TotalWeightKg,
		TotalCO2Kg:        r.TotalCO2Kg,
		TreesEquivalent:   r.TreesEquivalent,
		CarKmOffset:       r.CarKmOffset,
		MaterialBreakdown: breakdown,
		Milestone: MilestoneResponse{
			ThresholdKg: r.Milestone.ThresholdKg,
			ProgressKg:  r.Milestone.ProgressKg,
			RemainingKg: r.Milestone.RemainingKg,
			Fraction:    r.Milestone.Fraction,
		},
	}
}

func FromDashboard(d usecase.Dashboard) DashboardResponse {
	return DashboardResponse{
		Profile:            FromProfile(d.Profile),
		Impact:             FromReport(d.Report),
		RecentTransactions: FromTransactions(d.Recent),
		HasActiveScan:      d.HasActiveScan,
	}
}
