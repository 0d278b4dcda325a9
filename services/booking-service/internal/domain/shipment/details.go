package shipment

import (
	"strconv"
	"strings"
)

// Details is the details step exactly as typed. No field is validated
// beyond presence of volume and weight.
type Details struct {
	Volume           string `json:"volume" msgpack:"volume"`
	Weight           string `json:"weight" msgpack:"weight"`
	Length           string `json:"length" msgpack:"length"`
	Width            string `json:"width" msgpack:"width"`
	Height           string `json:"height" msgpack:"height"`
	ShowOtherOptions bool   `json:"show_other_options" msgpack:"show_other_options"`
	PalletCount      string `json:"pallet_count" msgpack:"pallet_count"`
}

// CanContinue reports whether the details step may be left.
// Both strings just need to be non-empty.
func (d Details) CanContinue() bool {
	return d.Volume != "" && d.Weight != ""
}

// Measurements is the numeric reading of Details. A nil field did not parse.
type Measurements struct {
	VolumeM3    *float64 `json:"volume_m3,omitempty"`
	WeightKg    *float64 `json:"weight_kg,omitempty"`
	LengthCm    *float64 `json:"length_cm,omitempty"`
	WidthCm     *float64 `json:"width_cm,omitempty"`
	HeightCm    *float64 `json:"height_cm,omitempty"`
	PalletCount *int     `json:"pallet_count,omitempty"`
}

// Measurements parses whatever fields hold a number. Decimal commas are
// accepted ("2,5"). The pallet count is only read while the other options
// are shown.
func (d Details) Measurements() Measurements {
	m := Measurements{
		VolumeM3: parseDecimal(d.Volume),
		WeightKg: parseDecimal(d.Weight),
		LengthCm: parseDecimal(d.Length),
		WidthCm:  parseDecimal(d.Width),
		HeightCm: parseDecimal(d.Height),
	}
	if d.ShowOtherOptions {
		if n, err := strconv.Atoi(strings.TrimSpace(d.PalletCount)); err == nil && n > 0 {
			m.PalletCount = &n
		}
	}
	return m
}

func parseDecimal(s string) *float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return nil
	}
	return &f
}

// Vehicle is the recommendation card shown on the details step.
type Vehicle struct {
	Name        string  `json:"name"`
	CapacityM3  float64 `json:"capacity_m3"`
	MaxWeightKg float64 `json:"max_weight_kg"`
	Summary     string  `json:"summary"`
}

// DefaultVehicle is the only vehicle class offered.
var DefaultVehicle = Vehicle{
	Name:        "Camion (jusqu'à 3.5T)",
	CapacityM3:  18,
	MaxWeightKg: 900,
	Summary:     "Capacité: 18m³ | 900kg max.",
}

// RecommendedVehicle always returns DefaultVehicle; the entered
// dimensions play no part.
func (d Details) RecommendedVehicle() Vehicle {
	return DefaultVehicle
}
