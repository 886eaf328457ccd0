package network

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
)

// ClientType is the connection kind of a client, carried in the "type" field.
type ClientType string

// Client types.
const (
	ClientTypeWired    ClientType = "WIRED"
	ClientTypeWireless ClientType = "WIRELESS"
	ClientTypeVPN      ClientType = "VPN"
	ClientTypeTeleport ClientType = "TELEPORT"
)

// BaseClientOverview holds the fields every client kind carries.
type BaseClientOverview struct {
	ID          ClientID  `json:"id"`
	Name        *string   `json:"name,omitempty"`
	ConnectedAt time.Time `json:"connectedAt"`
	IPAddress   *string   `json:"ipAddress,omitempty"`
}

// Base returns the shared fields.
func (b BaseClientOverview) Base() BaseClientOverview {
	return b
}

// WiredClientOverview is a client on an Ethernet port.
type WiredClientOverview struct {
	BaseClientOverview

	MacAddress     string   `json:"macAddress"`
	UplinkDeviceID DeviceID `json:"uplinkDeviceId"`
}

// WirelessClientOverview is a client associated with an access point.
type WirelessClientOverview struct {
	BaseClientOverview

	MacAddress     string   `json:"macAddress"`
	UplinkDeviceID DeviceID `json:"uplinkDeviceId"`
}

// VPNClientOverview is a client connected through a VPN server.
type VPNClientOverview struct {
	BaseClientOverview
}

// TeleportClientOverview is a client connected through Teleport.
type TeleportClientOverview struct {
	BaseClientOverview
}

// ClientVariant is implemented by the four client kinds only.
type ClientVariant interface {
	ClientType() ClientType
	Base() BaseClientOverview
	isClientVariant()
}

func (*WiredClientOverview) ClientType() ClientType    { return ClientTypeWired }
func (*WirelessClientOverview) ClientType() ClientType { return ClientTypeWireless }
func (*VPNClientOverview) ClientType() ClientType      { return ClientTypeVPN }
func (*TeleportClientOverview) ClientType() ClientType { return ClientTypeTeleport }

func (*WiredClientOverview) isClientVariant()    {}
func (*WirelessClientOverview) isClientVariant() {}
func (*VPNClientOverview) isClientVariant()      {}
func (*TeleportClientOverview) isClientVariant() {}

// ClientOverview is a connected client of any kind. The zero value holds
// no variant.
type ClientOverview struct {
	value ClientVariant
}

// NewClientOverview wraps a variant.
func NewClientOverview(v ClientVariant) ClientOverview {
	return ClientOverview{value: v}
}

// Type returns the client kind, or "" for the zero value.
func (c ClientOverview) Type() ClientType {
	if c.value == nil {
		return ""
	}
	return c.value.ClientType()
}

// Base returns the fields shared by every kind.
func (c ClientOverview) Base() BaseClientOverview {
	if c.value == nil {
		return BaseClientOverview{}
	}
	return c.value.Base()
}

// Value returns the concrete variant for use in a type switch.
func (c ClientOverview) Value() ClientVariant {
	return c.value
}

// AsWired returns the wired variant, if that is what c holds.
func (c ClientOverview) AsWired() (*WiredClientOverview, bool) {
	v, ok := c.value.(*WiredClientOverview)
	return v, ok
}

// AsWireless returns the wireless variant, if that is what c holds.
func (c ClientOverview) AsWireless() (*WirelessClientOverview, bool) {
	v, ok := c.value.(*WirelessClientOverview)
	return v, ok
}

// AsVPN returns the VPN variant, if that is what c holds.
func (c ClientOverview) AsVPN() (*VPNClientOverview, bool) {
	v, ok := c.value.(*VPNClientOverview)
	return v, ok
}

// AsTeleport returns the Teleport variant, if that is what c holds.
func (c ClientOverview) AsTeleport() (*TeleportClientOverview, bool) {
	v, ok := c.value.(*TeleportClientOverview)
	return v, ok
}

// UnmarshalJSON selects the variant from the "type" field. A missing or
// unknown type is an error.
func (c *ClientOverview) UnmarshalJSON(data []byte) error {
	var tag struct {
		Type *ClientType `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return errors.Wrap(err, "decode client type")
	}

	if tag.Type == nil {
		return errors.New("client overview has no type")
	}

	var variant ClientVariant
	switch *tag.Type {
	case ClientTypeWired:
		variant = &WiredClientOverview{}
	case ClientTypeWireless:
		variant = &WirelessClientOverview{}
	case ClientTypeVPN:
		variant = &VPNClientOverview{}
	case ClientTypeTeleport:
		variant = &TeleportClientOverview{}
	default:
		return errors.Newf("unknown client type %q", *tag.Type)
	}

	if err := json.Unmarshal(data, variant); err != nil {
		return errors.Wrapf(err, "decode %s client", *tag.Type)
	}

	if err := validateClientIDs(variant); err != nil {
		return errors.Wrapf(err, "decode %s client", *tag.Type)
	}

	c.value = variant
	return nil
}

// validateClientIDs requires the client ID, and the uplink device ID on
// wired and wireless clients.
func validateClientIDs(variant ClientVariant) error {
	if err := requireID("client id", variant.Base().ID); err != nil {
		return err
	}

	switch v := variant.(type) {
	case *WiredClientOverview:
		return requireID("uplink device id", v.UplinkDeviceID)
	case *WirelessClientOverview:
		return requireID("uplink device id", v.UplinkDeviceID)
	}

	return nil
}

// MarshalJSON writes the variant's fields plus its "type".
func (c ClientOverview) MarshalJSON() ([]byte, error) {
	if c.value == nil {
		return []byte("null"), nil
	}

	body, err := json.Marshal(c.value)
	if err != nil {
		return nil, errors.Wrap(err, "encode client")
	}

	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, errors.Wrap(err, "encode client")
	}

	fields["type"], err = json.Marshal(c.value.ClientType())
	if err != nil {
		return nil, errors.Wrap(err, "encode client type")
	}

	//nolint:wrapcheck // Marshalling raw messages cannot fail
	return json.Marshal(fields)
}
