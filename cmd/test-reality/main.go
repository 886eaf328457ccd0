// Command test-reality runs every read operation against a live controller
// and checks each raw response body against the embedded OpenAPI contract.
package main

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lexfrei/go-unifi-network/api/network"
	"github.com/lexfrei/go-unifi-network/observability"
)

var (
	baseURL  string
	apiKey   string
	insecure bool
	verbose  bool
	envFile  string
)

var rootCmd = &cobra.Command{
	Use:          "test-reality",
	Short:        "Check the client against a live UniFi Network application",
	SilenceUsage: true,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return resolveConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVar(&baseURL, "url", "", "integration API base URL (or UNIFI_BASE_URL)")
	rootCmd.Flags().StringVar(&apiKey, "api-key", "", "API key (or UNIFI_API_KEY)")
	rootCmd.Flags().BoolVar(&insecure, "insecure", false, "skip TLS verification (or UNIFI_INSECURE=true)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs and JSON samples")
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load before reading the environment")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

// resolveConfig fills unset flags from the environment.
func resolveConfig(cmd *cobra.Command) error {
	if err := godotenv.Load(envFile); err != nil && cmd.Flags().Changed("env-file") {
		return errors.Wrapf(err, "failed to load %s", envFile)
	}

	if baseURL == "" {
		baseURL = os.Getenv("UNIFI_BASE_URL")
	}
	if apiKey == "" {
		apiKey = os.Getenv("UNIFI_API_KEY")
	}
	if !cmd.Flags().Changed("insecure") {
		if value, err := strconv.ParseBool(os.Getenv("UNIFI_INSECURE")); err == nil {
			insecure = value
		}
	}

	if baseURL == "" || apiKey == "" {
		return errors.New("base URL and API key are required: use --url/--api-key or UNIFI_BASE_URL/UNIFI_API_KEY")
	}

	return nil
}

// TestResult is the outcome of one operation.
type TestResult struct {
	Endpoint   string
	Success    bool
	Error      string
	Issues     []string
	JSONSample string
	Duration   time.Duration
}

// bodyRecorder keeps a copy of the last response body per request path.
type bodyRecorder struct {
	next   http.RoundTripper
	mu     sync.Mutex
	bodies map[string][]byte
}

func (r *bodyRecorder) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := r.next.RoundTrip(req)
	if err != nil {
		//nolint:wrapcheck // Passed through to the client's error classification
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	r.mu.Lock()
	r.bodies[req.URL.Path] = body
	r.mu.Unlock()

	return resp, nil
}

func (r *bodyRecorder) last(suffix string) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	for path, body := range r.bodies {
		if strings.HasSuffix(path, suffix) {
			return body
		}
	}
	return nil
}

type checker struct {
	client   *network.APIClient
	recorder *bodyRecorder
}

func (c *checker) check(ctx context.Context, endpoint, pathSuffix, schema string, call func(context.Context) (any, error)) TestResult {
	start := time.Now()
	result := TestResult{Endpoint: endpoint}

	value, err := call(ctx)
	result.Duration = time.Since(start)

	var apiErr *network.APIError
	if errors.As(err, &apiErr) {
		schema = network.SchemaErrorResponse
	}

	if body := c.recorder.last(pathSuffix); body != nil {
		if verr := network.ValidateResponseBody(schema, body); verr != nil {
			result.Issues = append(result.Issues, verr.Error())
		}
	}

	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.Success = true

	if verbose {
		data, _ := json.MarshalIndent(value, "", "  ")
		result.JSONSample = string(data)
	}

	return result
}

func run(ctx context.Context) error {
	base := logrus.New()
	base.SetLevel(logrus.WarnLevel)
	if verbose {
		base.SetLevel(logrus.DebugLevel)
	}

	transport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return errors.New("unexpected default transport")
	}
	transport = transport.Clone()
	if insecure {
		//nolint:gosec // Opt-in for consoles with self-signed certificates
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	recorder := &bodyRecorder{next: transport, bodies: map[string][]byte{}}

	// TLS is set on the recorder's transport above; InsecureSkipVerify
	// cannot reach through a custom RoundTripper.
	client, err := network.NewWithConfig(&network.ClientConfig{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		HTTPClient: &http.Client{Transport: recorder},
		Timeout:    30 * time.Second,
		Logger:     observability.NewLogrusLogger(base),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create client")
	}

	fmt.Println("Testing go-unifi-network against reality...")
	fmt.Println(strings.Repeat("=", 61))
	fmt.Println()

	c := &checker{client: client, recorder: recorder}
	results := c.runAll(ctx)

	return printSummary(results)
}

func (c *checker) runAll(ctx context.Context) []TestResult {
	results := []TestResult{
		c.check(ctx, "GetInfo", "/v1/info", network.SchemaApplicationInfo, func(ctx context.Context) (any, error) {
			return c.client.GetInfo(ctx)
		}),
	}

	var sites *network.Page[network.Site]
	results = append(results, c.check(ctx, "ListSites", "/v1/sites", network.SchemaSitePage, func(ctx context.Context) (any, error) {
		var err error
		sites, err = c.client.ListSites(ctx, nil)
		return sites, err
	}))
	if sites == nil || len(sites.Data) == 0 {
		return results
	}

	siteID := sites.Data[0].ID

	var devices *network.Page[network.DeviceOverview]
	results = append(results,
		c.check(ctx, "ListDevices", "/devices", network.SchemaDevicePage, func(ctx context.Context) (any, error) {
			var err error
			devices, err = c.client.ListDevices(ctx, siteID, nil)
			return devices, err
		}),
		c.check(ctx, "ListClients", "/clients", network.SchemaClientPage, func(ctx context.Context) (any, error) {
			return c.client.ListClients(ctx, siteID, nil)
		}),
	)
	if devices == nil || len(devices.Data) == 0 {
		return results
	}

	deviceID := devices.Data[0].ID

	return append(results,
		c.check(ctx, "GetDeviceDetails", "/devices/"+deviceID.String(), network.SchemaDeviceDetails, func(ctx context.Context) (any, error) {
			return c.client.GetDeviceDetails(ctx, siteID, deviceID)
		}),
		c.check(ctx, "GetDeviceStatistics", "/statistics/latest", network.SchemaDeviceStatistics, func(ctx context.Context) (any, error) {
			return c.client.GetDeviceStatistics(ctx, siteID, deviceID)
		}),
	)
}

func printSummary(results []TestResult) error {
	fmt.Println("Test Summary")
	fmt.Println(strings.Repeat("=", 61))
	fmt.Println()

	failures, totalIssues := 0, 0
	for _, result := range results {
		status := "OK  "
		switch {
		case !result.Success:
			status = "FAIL"
			failures++
		case len(result.Issues) > 0:
			status = "WARN"
		}

		fmt.Printf("%s %s (%v)\n", status, result.Endpoint, result.Duration.Round(time.Millisecond))

		if result.Error != "" {
			fmt.Printf("   Error: %s\n", result.Error)
		}

		for _, issue := range result.Issues {
			fmt.Printf("   Contract: %s\n", issue)
		}
		totalIssues += len(result.Issues)

		if verbose && result.JSONSample != "" {
			fmt.Printf("   JSON Sample:\n%s\n", indentJSON(result.JSONSample, "      "))
		}

		fmt.Println()
	}

	fmt.Println(strings.Repeat("=", 61))
	if failures == 0 && totalIssues == 0 {
		fmt.Println("All operations decoded and matched the contract.")
		return nil
	}

	return errors.Newf("%d failed operations, %d contract issues", failures, totalIssues)
}

func indentJSON(jsonStr, indent string) string {
	lines := strings.Split(jsonStr, "\n")
	for i, line := range lines {
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}
