package network

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentifiersAreRequired(t *testing.T) {
	t.Parallel()

	const nilID = "00000000-0000-0000-0000-000000000000"

	tests := []struct {
		name    string
		input   string
		target  func() any
		wantErr string
	}{
		{
			name:    "site without id",
			input:   `{"name":"Default"}`,
			target:  func() any { return &Site{} },
			wantErr: "site id is missing",
		},
		{
			name:    "site with nil id",
			input:   `{"id":"` + nilID + `","name":"Default"}`,
			target:  func() any { return &Site{} },
			wantErr: "site id is missing",
		},
		{
			name:    "device overview without id",
			input:   `{"name":"ap","state":"ONLINE"}`,
			target:  func() any { return &DeviceOverview{} },
			wantErr: "device id is missing",
		},
		{
			name:    "device details without id",
			input:   `{"name":"switch","state":"ONLINE"}`,
			target:  func() any { return &DeviceDetails{} },
			wantErr: "device id is missing",
		},
		{
			name:    "device uplink without device id",
			input:   `{"id":"6204b587-7215-235b-d068-f96ca12eab52","uplink":{}}`,
			target:  func() any { return &DeviceDetails{} },
			wantErr: "uplink device id is missing",
		},
		{
			name:    "client without id",
			input:   `{"type":"VPN","connectedAt":"2025-10-17T06:00:00Z"}`,
			target:  func() any { return &ClientOverview{} },
			wantErr: "client id is missing",
		},
		{
			name:    "wired client without uplink",
			input:   `{"type":"WIRED","id":"3f0e6a1c-7b2d-4e8f-9a0b-1c2d3e4f5a6b","macAddress":"00:11:32:aa:bb:cc"}`,
			target:  func() any { return &ClientOverview{} },
			wantErr: "uplink device id is missing",
		},
		{
			name:    "wireless client with nil uplink",
			input:   `{"type":"WIRELESS","id":"5a6b7c8d-1e2f-4a3b-8c4d-5e6f7a8b9c0d","uplinkDeviceId":"` + nilID + `"}`,
			target:  func() any { return &ClientOverview{} },
			wantErr: "uplink device id is missing",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := json.Unmarshal([]byte(tt.input), tt.target())
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIdentifiersDecode(t *testing.T) {
	t.Parallel()

	var site Site
	require.NoError(t, json.Unmarshal([]byte(`{"id":"88f7af54-98f8-306a-a1c7-c9349722b1f6"}`), &site))
	assert.Equal(t, testSiteID, site.ID)
	assert.Nil(t, site.Name)

	var details DeviceDetails
	require.NoError(t, json.Unmarshal([]byte(
		`{"id":"6204b587-7215-235b-d068-f96ca12eab52","uplink":{"deviceId":"0b4c3b7e-5e1d-4d3a-9a2e-3c6f1d2b7a10"}}`,
	), &details))
	assert.Equal(t, testDeviceID, details.ID)
	require.NotNil(t, details.Uplink)
	assert.Equal(t, testSwitchID, details.Uplink.DeviceID)
}
