package network

import (
	"encoding/json"
	"slices"
	"time"
)

// DeviceOverview is a device as it appears in a device listing.
type DeviceOverview struct {
	ID         DeviceID    `json:"id"`
	Name       string      `json:"name"`
	Model      string      `json:"model"`
	MacAddress string      `json:"macAddress"`
	IPAddress  string      `json:"ipAddress"`
	State      DeviceState `json:"state"`
	Features   []string    `json:"features"`
	Interfaces []string    `json:"interfaces"`
}

// UnmarshalJSON requires a device ID.
func (d *DeviceOverview) UnmarshalJSON(data []byte) error {
	type plain DeviceOverview

	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		//nolint:wrapcheck // Decode errors are classified by the response handler
		return err
	}

	if err := requireID("device id", decoded.ID); err != nil {
		return err
	}

	*d = DeviceOverview(decoded)
	return nil
}

// HasFeature reports whether the device advertises the given feature tag,
// for example "switching" or "accessPoint".
func (d *DeviceOverview) HasFeature(feature string) bool {
	return slices.Contains(d.Features, feature)
}

// DeviceDetails is the full description of one adopted device.
type DeviceDetails struct {
	ID                DeviceID            `json:"id"`
	Name              string              `json:"name"`
	Model             string              `json:"model"`
	Supported         bool                `json:"supported"`
	MacAddress        string              `json:"macAddress"`
	IPAddress         string              `json:"ipAddress"`
	State             DeviceState         `json:"state"`
	FirmwareVersion   string              `json:"firmwareVersion"`
	FirmwareUpdatable bool                `json:"firmwareUpdatable"`
	AdoptedAt         *time.Time          `json:"adoptedAt,omitempty"`
	ProvisionedAt     *time.Time          `json:"provisionedAt,omitempty"`
	ConfigurationID   string              `json:"configurationId"`
	Uplink            *DeviceUplink       `json:"uplink,omitempty"`
	Features          *DeviceFeatures     `json:"features,omitempty"`
	Interfaces        *PhysicalInterfaces `json:"interfaces,omitempty"`
}

// UnmarshalJSON requires a device ID.
func (d *DeviceDetails) UnmarshalJSON(data []byte) error {
	type plain DeviceDetails

	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		//nolint:wrapcheck // Decode errors are classified by the response handler
		return err
	}

	if err := requireID("device id", decoded.ID); err != nil {
		return err
	}

	*d = DeviceDetails(decoded)
	return nil
}

// DeviceUplink points at the device this one is connected through.
type DeviceUplink struct {
	DeviceID DeviceID `json:"deviceId"`
}

// UnmarshalJSON requires the uplink device ID.
func (u *DeviceUplink) UnmarshalJSON(data []byte) error {
	type plain DeviceUplink

	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		//nolint:wrapcheck // Decode errors are classified by the response handler
		return err
	}

	if err := requireID("uplink device id", decoded.DeviceID); err != nil {
		return err
	}

	*u = DeviceUplink(decoded)
	return nil
}

// DeviceFeatures lists the roles a device plays. A nil member means the
// device lacks that role.
type DeviceFeatures struct {
	Switching   *SwitchingFeature   `json:"switching,omitempty"`
	AccessPoint *AccessPointFeature `json:"accessPoint,omitempty"`
}

// SwitchingFeature is present on devices that switch traffic.
type SwitchingFeature struct{}

// AccessPointFeature is present on devices that serve wireless clients.
type AccessPointFeature struct{}

// PhysicalInterfaces holds the ports and radios of a device.
type PhysicalInterfaces struct {
	Ports  []EthernetPort  `json:"ports"`
	Radios []WirelessRadio `json:"radios"`
}

// UnmarshalJSON decodes absent or null collections as empty slices.
func (p *PhysicalInterfaces) UnmarshalJSON(data []byte) error {
	type plain PhysicalInterfaces

	var decoded plain
	if err := json.Unmarshal(data, &decoded); err != nil {
		//nolint:wrapcheck // Decode errors are classified by the response handler
		return err
	}

	if decoded.Ports == nil {
		decoded.Ports = []EthernetPort{}
	}
	if decoded.Radios == nil {
		decoded.Radios = []WirelessRadio{}
	}

	*p = PhysicalInterfaces(decoded)
	return nil
}

// EthernetPort is one wired port.
type EthernetPort struct {
	Idx          int           `json:"idx"`
	State        PortState     `json:"state"`
	Connector    ConnectorType `json:"connector"`
	MaxSpeedMbps int           `json:"maxSpeedMbps"`
	SpeedMbps    int           `json:"speedMbps"`
}

// WirelessRadio is one radio of an access point.
type WirelessRadio struct {
	WlanStandard    *WlanStandard  `json:"wlanStandard,omitempty"`
	FrequencyGHz    *FrequencyBand `json:"frequencyGHz,omitempty"`
	ChannelWidthMHz *int           `json:"channelWidthMHz,omitempty"`
	Channel         *int           `json:"channel,omitempty"`
}

// DeviceAction is a command accepted by the device actions endpoint.
type DeviceAction string

// Device actions.
const (
	DeviceActionRestart DeviceAction = "RESTART"
)

type deviceActionRequest struct {
	Action DeviceAction `json:"action"`
}
