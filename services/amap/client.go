// File: services/amap/client.go
package amap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"tripflow/config"
)

const defaultBaseURL = "https://restapi.amap.com/v3"

// RouteMode selects the direction endpoint.
const (
	RouteWalking = "walking"
	RouteDriving = "driving"
	RouteTransit = "transit"
)

// Client wraps the Amap Web API. Every operation returns the raw JSON body;
// interpreting it is the calling agent's job, not ours.
type Client struct {
	key        string
	baseURL    string
	httpClient *http.Client
}

func NewClient(key string) *Client {
	return &Client{
		key:        key,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientWithBaseURL points the client at a different API host (used by tests).
func NewClientWithBaseURL(key, baseURL string) *Client {
	c := NewClient(key)
	c.baseURL = baseURL
	return c
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (string, error) {
	if c.key == "" {
		return "", fmt.Errorf("amap: AMAP_API_KEY is not configured")
	}
	params.Set("key", c.key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("amap: request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("amap: reading %s response failed: %w", path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("amap: %s returned status %d", path, resp.StatusCode)
	}
	return string(body), nil
}

// TextSearch searches points of interest by keyword within a city.
func (c *Client) TextSearch(ctx context.Context, keywords, city string, citylimit bool) (string, error) {
	params := url.Values{}
	params.Set("keywords", keywords)
	params.Set("city", city)
	params.Set("citylimit", strconv.FormatBool(citylimit))
	return c.get(ctx, "/place/text", params)
}

// Weather returns the forecast for a city.
func (c *Client) Weather(ctx context.Context, city string) (string, error) {
	params := url.Values{}
	params.Set("city", city)
	params.Set("extensions", "all")
	return c.get(ctx, "/weather/weatherInfo", params)
}

// Geocode converts an address into coordinates.
func (c *Client) Geocode(ctx context.Context, address, city string) (string, error) {
	params := url.Values{}
	params.Set("address", address)
	if city != "" {
		params.Set("city", city)
	}
	return c.get(ctx, "/geocode/geo", params)
}

// POIDetail fetches the detail record for a point of interest.
func (c *Client) POIDetail(ctx context.Context, id string) (string, error) {
	params := url.Values{}
	params.Set("id", id)
	return c.get(ctx, "/place/detail", params)
}

// geocodeResponse is the subset of the geocode payload we need for routing.
type geocodeResponse struct {
	Status   string `json:"status"`
	Geocodes []struct {
		Location string `json:"location"`
	} `json:"geocodes"`
}

// resolveLocation geocodes an address and returns its "lng,lat" string.
func (c *Client) resolveLocation(ctx context.Context, address, city string) (string, error) {
	raw, err := c.Geocode(ctx, address, city)
	if err != nil {
		return "", err
	}
	var parsed geocodeResponse
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return "", fmt.Errorf("amap: failed to decode geocode response: %w", err)
	}
	if parsed.Status != "1" || len(parsed.Geocodes) == 0 || parsed.Geocodes[0].Location == "" {
		return "", fmt.Errorf("amap: no geocode result for %q", address)
	}
	return parsed.Geocodes[0].Location, nil
}

// DirectionByAddress plans a route between two addresses. Both endpoints are
// geocoded first; transit routing additionally needs the city parameters.
func (c *Client) DirectionByAddress(ctx context.Context, originAddr, destAddr, originCity, destCity, mode string) (string, error) {
	origin, err := c.resolveLocation(ctx, originAddr, originCity)
	if err != nil {
		return "", err
	}
	destination, err := c.resolveLocation(ctx, destAddr, destCity)
	if err != nil {
		return "", err
	}

	params := url.Values{}
	params.Set("origin", origin)
	params.Set("destination", destination)

	switch mode {
	case RouteDriving:
		return c.get(ctx, "/direction/driving", params)
	case RouteTransit:
		params.Set("city", originCity)
		if destCity != "" {
			params.Set("cityd", destCity)
		}
		return c.get(ctx, "/direction/transit/integrated", params)
	default:
		return c.get(ctx, "/direction/walking", params)
	}
}

// Global client instance shared by the agent roster and the geo handlers.
var amapClient *Client

// GetClient returns the shared Amap client, creating it on first use.
func GetClient() *Client {
	if amapClient == nil {
		amapClient = NewClient(config.AppConfig.AmapAPIKey)
	}
	return amapClient
}
