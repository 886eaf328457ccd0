package network

import (
	"encoding/json"
	"strconv"

	"github.com/cockroachdb/errors"
)

// FrequencyBand is a radio band. The API sends it either as a string
// ("2.4", "5", "6", "60") or as a number (5, 6, 60; occasionally 2.4).
type FrequencyBand string

// Frequency bands.
const (
	FrequencyBand2_4GHz FrequencyBand = "2.4"
	FrequencyBand5GHz   FrequencyBand = "5"
	FrequencyBand6GHz   FrequencyBand = "6"
	FrequencyBand60GHz  FrequencyBand = "60"
)

var frequencyBandsByGHz = map[float64]FrequencyBand{
	2.4: FrequencyBand2_4GHz,
	5:   FrequencyBand5GHz,
	6:   FrequencyBand6GHz,
	60:  FrequencyBand60GHz,
}

// GHz returns the band as a number of gigahertz.
func (b FrequencyBand) GHz() float64 {
	ghz, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return 0
	}
	return ghz
}

// String implements fmt.Stringer.
func (b FrequencyBand) String() string {
	return string(b) + " GHz"
}

// MarshalJSON always writes the string form.
func (b FrequencyBand) MarshalJSON() ([]byte, error) {
	//nolint:wrapcheck // Marshalling a string cannot fail
	return json.Marshal(string(b))
}

// UnmarshalJSON tries the string form first and falls back to the numeric form.
func (b *FrequencyBand) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err == nil {
		band := FrequencyBand(raw)
		switch band {
		case FrequencyBand2_4GHz, FrequencyBand5GHz, FrequencyBand6GHz, FrequencyBand60GHz:
			*b = band
			return nil
		default:
			return errors.Newf("invalid frequency band %q", raw)
		}
	}

	var ghz float64
	if err := json.Unmarshal(data, &ghz); err != nil {
		return errors.Newf("invalid frequency band %s: want a string or a number", data)
	}

	band, ok := frequencyBandsByGHz[ghz]
	if !ok {
		return errors.Newf("invalid frequency band %s", data)
	}

	*b = band
	return nil
}
