package network

import (
	"encoding/json"
	"slices"

	"github.com/cockroachdb/errors"
)

// DeviceState is the lifecycle state of a device.
type DeviceState string

// Device states.
const (
	DeviceStateOnline                DeviceState = "ONLINE"
	DeviceStateOffline               DeviceState = "OFFLINE"
	DeviceStatePendingAdoption       DeviceState = "PENDING_ADOPTION"
	DeviceStateUpdating              DeviceState = "UPDATING"
	DeviceStateGettingReady          DeviceState = "GETTING_READY"
	DeviceStateAdopting              DeviceState = "ADOPTING"
	DeviceStateDeleting              DeviceState = "DELETING"
	DeviceStateConnectionInterrupted DeviceState = "CONNECTION_INTERRUPTED"
	DeviceStateIsolated              DeviceState = "ISOLATED"
)

var deviceStates = []DeviceState{
	DeviceStateOnline,
	DeviceStateOffline,
	DeviceStatePendingAdoption,
	DeviceStateUpdating,
	DeviceStateGettingReady,
	DeviceStateAdopting,
	DeviceStateDeleting,
	DeviceStateConnectionInterrupted,
	DeviceStateIsolated,
}

// Older controllers spell multi-word states without the underscore.
var deviceStateAliases = map[string]DeviceState{
	"PENDINGADOPTION":       DeviceStatePendingAdoption,
	"GETTINGREADY":          DeviceStateGettingReady,
	"CONNECTIONINTERRUPTED": DeviceStateConnectionInterrupted,
}

// UnmarshalJSON accepts only the known device states.
func (s *DeviceState) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, "device state", deviceStates, deviceStateAliases)
}

// PortState is the link state of an Ethernet port.
type PortState string

// Port states.
const (
	PortStateUp      PortState = "UP"
	PortStateDown    PortState = "DOWN"
	PortStateUnknown PortState = "UNKNOWN"
)

// UnmarshalJSON accepts only the known port states.
func (s *PortState) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, "port state", []PortState{PortStateUp, PortStateDown, PortStateUnknown}, nil)
}

// ConnectorType is the physical connector of an Ethernet port.
type ConnectorType string

// Connector types.
const (
	ConnectorRJ45    ConnectorType = "RJ45"
	ConnectorSFP     ConnectorType = "SFP"
	ConnectorSFPPlus ConnectorType = "SFPPLUS"
	ConnectorSFP28   ConnectorType = "SFP28"
	ConnectorQSFP28  ConnectorType = "QSFP28"
)

// UnmarshalJSON accepts only the known connector types. "SFP+" is read as SFPPLUS.
func (c *ConnectorType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, c, "connector type",
		[]ConnectorType{ConnectorRJ45, ConnectorSFP, ConnectorSFPPlus, ConnectorSFP28, ConnectorQSFP28},
		map[string]ConnectorType{"SFP+": ConnectorSFPPlus},
	)
}

// WlanStandard is the 802.11 amendment a radio implements.
type WlanStandard string

// WLAN standards.
const (
	WlanStandard80211A  WlanStandard = "802.11a"
	WlanStandard80211B  WlanStandard = "802.11b"
	WlanStandard80211G  WlanStandard = "802.11g"
	WlanStandard80211N  WlanStandard = "802.11n"
	WlanStandard80211AC WlanStandard = "802.11ac"
	WlanStandard80211AX WlanStandard = "802.11ax"
	WlanStandard80211BE WlanStandard = "802.11be"
)

// UnmarshalJSON accepts only the known WLAN standards.
func (w *WlanStandard) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, w, "WLAN standard", []WlanStandard{
		WlanStandard80211A,
		WlanStandard80211B,
		WlanStandard80211G,
		WlanStandard80211N,
		WlanStandard80211AC,
		WlanStandard80211AX,
		WlanStandard80211BE,
	}, nil)
}

// unmarshalEnum decodes a JSON string into one of values. JSON null leaves
// dst untouched.
func unmarshalEnum[T ~string](data []byte, dst *T, kind string, values []T, aliases map[string]T) error {
	if string(data) == "null" {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrapf(err, "invalid %s", kind)
	}

	if slices.Contains(values, T(raw)) {
		*dst = T(raw)
		return nil
	}

	if value, ok := aliases[raw]; ok {
		*dst = value
		return nil
	}

	return errors.Newf("unknown %s %q", kind, raw)
}
