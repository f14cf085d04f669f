// Package impact derives environmental metrics from the transaction ledger.
// Every value is recomputed from the full ledger on each call.
package impact

import (
	"math"

	"nexus_recycle/internal/domain/entities"
)

const (
	KgCO2PerTreeYear     = 20.0
	MilestoneThresholdKg = 100.0
	KgCO2PerCarKm        = 0.4
)

type Milestone struct {
	ThresholdKg float64 `json:"thresholdKg"`
	ProgressKg  float64 `json:"progressKg"`
	RemainingKg float64 `json:"remainingKg"`
	Fraction    float64 `json:"fraction"`
}

type Report struct {
	TransactionCount  int                `json:"transactionCount"`
	TotalWeightKg     float64            `json:"totalWeightKg"`
	TotalCO2Kg        float64            `json:"totalCo2Kg"`
	TreesEquivalent   int                `json:"treesEquivalent"`
	MaterialBreakdown map[string]float64 `json:"materialBreakdown"`
	Milestone         Milestone          `json:"milestone"`
	CarKmOffset       float64            `json:"carKmOffset"`
}

func TotalWeight(ledger []entities.Transaction) float64 {
	total := 0.0
	for _, tx := range ledger {
		total += tx.Weight
	}
	return total
}

func TotalCO2(ledger []entities.Transaction) float64 {
	total := 0.0
	for _, tx := range ledger {
		total += tx.CO2Saved
	}
	return total
}

func TreesEquivalent(totalCO2 float64) int {
	return int(math.Floor(totalCO2 / KgCO2PerTreeYear))
}

// MaterialBreakdown sums weight per material name.
func MaterialBreakdown(ledger []entities.Transaction) map[string]float64 {
	out := make(map[string]float64)
	for _, tx := range ledger {
		out[tx.Material] += tx.Weight
	}
	return out
}

// MilestoneFor reports progress toward the next multiple of MilestoneThresholdKg.
func MilestoneFor(totalCO2 float64) Milestone {
	progress := math.Mod(totalCO2, MilestoneThresholdKg)
	return Milestone{
		ThresholdKg: MilestoneThresholdKg,
		ProgressKg:  progress,
		RemainingKg: MilestoneThresholdKg - progress,
		Fraction:    progress / MilestoneThresholdKg,
	}
}

// CarKmOffset is a display proxy: kilometres of car travel whose emissions equal totalCO2.
func CarKmOffset(totalCO2 float64) float64 {
	return totalCO2 / KgCO2PerCarKm
}

func Summarize(ledger []entities.Transaction) Report {
	co2 := TotalCO2(ledger)
	return Report{
		TransactionCount:  len(ledger),
		TotalWeightKg:     TotalWeight(ledger),
		TotalCO2Kg:        co2,
		TreesEquivalent:   TreesEquivalent(co2),
		MaterialBreakdown: MaterialBreakdown(ledger),
		Milestone:         MilestoneFor(co2),
		CarKmOffset:       CarKmOffset(co2),
	}
}

// Recent returns up to n of the newest transactions. The ledger is newest first.
func Recent(ledger []entities.Transaction, n int) []entities.Transaction {
	if n <= 0 || len(ledger) == 0 {
		return []entities.Transaction{}
	}
	if n > len(ledger) {
		n = len(ledger)
	}
	out := make([]entities.Transaction, n)
	copy(out, ledger[:n])
	return out
}
