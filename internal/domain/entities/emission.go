package entities

// DefaultEmissionFactor applies to materials missing from EmissionFactors.
const DefaultEmissionFactor = 1.0

// EmissionFactors maps material name to kg of CO2 avoided per kg recycled.
// Lookups are exact and case-sensitive.
var EmissionFactors = map[string]float64{
	"Plastic":    1.5,
	"Paper":      0.9,
	"Glass":      0.7,
	"Metal":      2.2,
	"Copper":     3.5,
	"Aluminium":  4.1,
	"Electronic": 2.8,
	"Organic":    0.5,
}

func EmissionFactor(material string) float64 {
	if f, ok := EmissionFactors[material]; ok {
		return f
	}
	return DefaultEmissionFactor
}
