package entities

import (
	"errors"
	"math"
	"strings"

	"golang.org/x/text/cases"
)

// DefaultComponentWeightKg is assumed when a quote's material matches no scanned component.
const DefaultComponentWeightKg = 1.0

var (
	ErrEmptyScan            = errors.New("scan has no material components")
	ErrInvalidComponentName = errors.New("material component without name")
	ErrInvalidWeight        = errors.New("material component weight must be a finite non-negative number")
)

// MaterialComponent is one material identified in a scanned image.
type MaterialComponent struct {
	Name     string  `json:"name"`
	WeightKg float64 `json:"weight_kg"`
}

// ScanResult is the output of a vision analysis.
type ScanResult struct {
	Components     []MaterialComponent `json:"components"`
	UpcyclingIdeas []string            `json:"upcycling_ideas"`
}

// Validate rejects results that cannot back a trade.
// Upcycling ideas are informational and not checked.
func (s ScanResult) Validate() error {
	if len(s.Components) == 0 {
		return ErrEmptyScan
	}
	for _, c := range s.Components {
		if strings.TrimSpace(c.Name) == "" {
			return ErrInvalidComponentName
		}
		if math.IsNaN(c.WeightKg) || math.IsInf(c.WeightKg, 0) || c.WeightKg < 0 {
			return ErrInvalidWeight
		}
	}
	return nil
}

// PrimaryMaterial is the first component's name, used as the buyer discovery filter.
func (s ScanResult) PrimaryMaterial() string {
	if len(s.Components) == 0 {
		return ""
	}
	return s.Components[0].Name
}

// TotalWeightKg sums all component weights.
func (s ScanResult) TotalWeightKg() float64 {
	total := 0.0
	for _, c := range s.Components {
		total += c.WeightKg
	}
	return total
}

// ComponentWeightFor returns the weight of the first component whose name
// case-insensitively equals material. It falls back to DefaultComponentWeightKg
// when none matches or the match carries no weight.
func (s ScanResult) ComponentWeightFor(material string) float64 {
	fold := cases.Fold()
	want := fold.String(strings.TrimSpace(material))
	for _, c := range s.Components {
		if fold.String(strings.TrimSpace(c.Name)) != want {
			continue
		}
		if c.WeightKg > 0 {
			return c.WeightKg
		}
		return DefaultComponentWeightKg
	}
	return DefaultComponentWeightKg
}
