package response

import "nexus_recycle/internal/domain/entities"

type ComponentResponse struct {
	Name     string  `json:"name"`
	WeightKg float64 `json:"weight_kg"`
}

type ScanResponse struct {
	PrimaryMaterial string              `json:"primary_material"`
	TotalWeightKg   float64             `json:"total_weight_kg"`
	Components      []ComponentResponse `json:"components"`
	UpcyclingIdeas  []string            `json:"upcycling_ideas"`
}

func FromScan(s entities.ScanResult) ScanResponse {
	res := ScanResponse{
		PrimaryMaterial: s.PrimaryMaterial(),
		TotalWeightKg:   s.TotalWeightKg(),
		Components:      make([]ComponentResponse, 0, len(s.Components)),
		UpcyclingIdeas:  s.UpcyclingIdeas,
	}
	if res.UpcyclingIdeas == nil {
		res.UpcyclingIdeas = []string{}
	}
	for _, c := range s.Components {
		res.Components = append(res.Components, ComponentResponse{Name: c.Name, WeightKg: c.WeightKg})
	}
	return res
}
