package network

import "context"

// NetworkAPIClient is the set of operations offered by APIClient.
// Depend on it to substitute a mock in tests.
//
//nolint:revive // Name kept for clarity at call sites outside the package
type NetworkAPIClient interface {
	ListSites(ctx context.Context, params *PageParams) (*Page[Site], error)
	ListDevices(ctx context.Context, siteID SiteID, params *PageParams) (*Page[DeviceOverview], error)
	GetDeviceDetails(ctx context.Context, siteID SiteID, deviceID DeviceID) (*DeviceDetails, error)
	GetDeviceStatistics(ctx context.Context, siteID SiteID, deviceID DeviceID) (*DeviceStatistics, error)
	RestartDevice(ctx context.Context, siteID SiteID, deviceID DeviceID) error
	GetInfo(ctx context.Context) (*ApplicationInfo, error)
	ListClients(ctx context.Context, siteID SiteID, params *PageParams) (*Page[ClientOverview], error)
}

var _ NetworkAPIClient = (*APIClient)(nil)
