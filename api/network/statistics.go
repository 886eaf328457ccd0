package network

import (
	"encoding/json"
	"time"
)

// DeviceStatistics is the latest telemetry snapshot of a device.
// Metrics the device does not report are nil.
type DeviceStatistics struct {
	UptimeSec            int64                `json:"uptimeSec"`
	LastHeartbeatAt      time.Time            `json:"lastHeartbeatAt"`
	NextHeartbeatAt      time.Time            `json:"nextHeartbeatAt"`
	LoadAverage1Min      *float64             `json:"loadAverage1Min,omitempty"`
	LoadAverage5Min      *float64             `json:"loadAverage5Min,omitempty"`
	LoadAverage15Min     *float64             `json:"loadAverage15Min,omitempty"`
	CPUUtilizationPct    *float64             `json:"cpuUtilizationPct,omitempty"`
	MemoryUtilizationPct *float64             `json:"memoryUtilizationPct,omitempty"`
	Uplink               *UplinkStatistics    `json:"uplink,omitempty"`
	Interfaces           *InterfaceStatistics `json:"interfaces,omitempty"`
}

// Uptime returns UptimeSec as a duration.
func (s *DeviceStatistics) Uptime() time.Duration {
	return time.Duration(s.UptimeSec) * time.Second
}

// UplinkStatistics holds uplink throughput in bits per second.
type UplinkStatistics struct {
	TxRateBps int64 `json:"txRateBps"`
	RxRateBps int64 `json:"rxRateBps"`
}

// InterfaceStatistics holds per-interface counters.
type InterfaceStatistics struct {
	Radios []RadioStatistics `json:"radios"`
}

// UnmarshalJSON decodes an absent or null radio list as empty.
func (s *InterfaceStatistics) UnmarshalJSON(data []byte) error {
	type plain InterfaceStatistics

	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		//nolint:wrapcheck // Decode errors are classified by the response handler
		return err
	}

	if decoded.Radios == nil {
		decoded.Radios = []RadioStatistics{}
	}

	*s = InterfaceStatistics(decoded)
	return nil
}

// RadioStatistics holds counters for one radio.
type RadioStatistics struct {
	FrequencyGHz *FrequencyBand `json:"frequencyGHz,omitempty"`
	TxRetriesPct *float64       `json:"txRetriesPct,omitempty"`
}
