package impact

import (
	"testing"

	"nexus_recycle/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func ledger() []entities.Transaction {
	return []entities.Transaction{
		{ID: "3", Material: "Copper", Weight: 3, CO2Saved: 10.5},
		{ID: "2", Material: "Plastic", Weight: 2, CO2Saved: 3},
		{ID: "1", Material: "Copper", Weight: 1, CO2Saved: 3.5},
	}
}

func TestSummarize(t *testing.T) {
	r := Summarize(ledger())

	assert.Equal(t, 3, r.TransactionCount)
	assert.InDelta(t, 6.0, r.TotalWeightKg, 1e-9)
	assert.InDelta(t, 17.0, r.TotalCO2Kg, 1e-9)
	assert.Equal(t, 0, r.TreesEquivalent)
	assert.Equal(t, map[string]float64{"Copper": 4, "Plastic": 2}, r.MaterialBreakdown)
	assert.InDelta(t, 17.0, r.Milestone.ProgressKg, 1e-9)
	assert.InDelta(t, 83.0, r.Milestone.RemainingKg, 1e-9)
	assert.InDelta(t, 42.5, r.CarKmOffset, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	r := Summarize(nil)
	assert.Equal(t, 0, r.TransactionCount)
	assert.Equal(t, 0.0, r.TotalCO2Kg)
	assert.Equal(t, 0, r.TreesEquivalent)
	assert.Empty(t, r.MaterialBreakdown)
	assert.Equal(t, 100.0, r.Milestone.RemainingKg)
}

func TestSummarize_AdditiveAndIdempotent(t *testing.T) {
	base := ledger()
	before := Summarize(base)
	again := Summarize(base)
	assert.Equal(t, before, again)

	tx := entities.Transaction{ID: "4", Material: "Glass", Weight: 2.5, CO2Saved: 1.75}
	after := Summarize(append([]entities.Transaction{tx}, base...))
	assert.InDelta(t, before.TotalWeightKg+tx.Weight, after.TotalWeightKg, 1e-9)
	assert.InDelta(t, before.TotalCO2Kg+tx.CO2Saved, after.TotalCO2Kg, 1e-9)
}

func TestTreesEquivalent(t *testing.T) {
	assert.Equal(t, 0, TreesEquivalent(19.99))
	assert.Equal(t, 1, TreesEquivalent(20))
	assert.Equal(t, 12, TreesEquivalent(250))
}

func TestMilestoneFor(t *testing.T) {
	m := MilestoneFor(250)
	assert.InDelta(t, 50.0, m.ProgressKg, 1e-9)
	assert.InDelta(t, 50.0, m.RemainingKg, 1e-9)
	assert.InDelta(t, 0.5, m.Fraction, 1e-9)

	m = MilestoneFor(100)
	assert.Equal(t, 0.0, m.ProgressKg)
	assert.Equal(t, 100.0, m.RemainingKg)
}

func TestRecent(t *testing.T) {
	l := append(ledger(), entities.Transaction{ID: "0"})
	got := Recent(l, 3)
	assert.Len(t, got, 3)
	assert.Equal(t, "3", got[0].ID)
	assert.Equal(t, "1", got[2].ID)

	assert.Len(t, Recent(l[:2], 3), 2)
	assert.Empty(t, Recent(nil, 3))
}
