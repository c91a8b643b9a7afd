package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	defaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
	defaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
)

// Observation is a single current-conditions reading.
type Observation struct {
	Temperature float64 `json:"temperature"` // degrees Celsius
	Code        int     `json:"code"`
	Description string  `json:"description"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"windSpeed"`
	FeelsLike   float64 `json:"feelsLike"`
	Location    string  `json:"location,omitempty"`
}

// Client fetches current conditions from Open-Meteo. The API requires no
// credentials.
type Client struct {
	forecastURL  string
	geocodingURL string
	latitude     float64
	longitude    float64
	city         string
	httpClient   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithCoordinates sets the default location for Current.
func WithCoordinates(lat, lon float64) Option {
	return func(c *Client) {
		c.latitude = lat
		c.longitude = lon
	}
}

// WithCity makes Current resolve the location by name through the geocoding
// endpoint instead of using fixed coordinates.
func WithCity(city string) Option {
	return func(c *Client) {
		c.city = city
	}
}

// WithBaseURLs overrides the Open-Meteo endpoints. Used in tests.
func WithBaseURLs(forecastURL, geocodingURL string) Option {
	return func(c *Client) {
		c.forecastURL = forecastURL
		c.geocodingURL = geocodingURL
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates an Open-Meteo client. Without options it reads
// conditions for San Francisco.
func NewClient(opts ...Option) *Client {
	c := &Client{
		forecastURL:  defaultForecastURL,
		geocodingURL: defaultGeocodingURL,
		latitude:     37.7749,
		longitude:    -122.4194,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// forecastResponse mirrors the fields we read from the forecast endpoint.
type forecastResponse struct {
	Current struct {
		Temperature float64 `json:"temperature_2m"`
		Humidity    int     `json:"relative_humidity_2m"`
		FeelsLike   float64 `json:"apparent_temperature"`
		WeatherCode int     `json:"weather_code"`
		WindSpeed   float64 `json:"wind_speed_10m"`
	} `json:"current"`
}

// Current fetches the current conditions for the configured location.
func (c *Client) Current(ctx context.Context) (*Observation, error) {
	if c.city != "" {
		return c.CurrentByCity(ctx, c.city)
	}
	return c.currentAt(ctx, c.latitude, c.longitude)
}

func (c *Client) currentAt(ctx context.Context, lat, lon float64) (*Observation, error) {
	q := url.Values{}
	q.Set("latitude", fmt.Sprintf("%g", lat))
	q.Set("longitude", fmt.Sprintf("%g", lon))
	q.Set("current", "temperature_2m,relative_humidity_2m,apparent_temperature,weather_code,wind_speed_10m")

	var body forecastResponse
	if err := c.getJSON(ctx, c.forecastURL+"?"+q.Encode(), &body); err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}

	return &Observation{
		Temperature: body.Current.Temperature,
		Code:        body.Current.WeatherCode,
		Description: DisplayDescription(body.Current.WeatherCode),
		Humidity:    body.Current.Humidity,
		WindSpeed:   body.Current.WindSpeed,
		FeelsLike:   body.Current.FeelsLike,
	}, nil
}

// geocodingResponse mirrors the fields we read from the geocoding endpoint.
type geocodingResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Name      string  `json:"name"`
	} `json:"results"`
}

// CurrentByCity resolves a city name through the geocoding endpoint and
// fetches current conditions for the first match.
func (c *Client) CurrentByCity(ctx context.Context, city string) (*Observation, error) {
	q := url.Values{}
	q.Set("name", city)
	q.Set("count", "1")
	q.Set("language", "en")
	q.Set("format", "json")

	var geo geocodingResponse
	if err := c.getJSON(ctx, c.geocodingURL+"?"+q.Encode(), &geo); err != nil {
		return nil, fmt.Errorf("geocode %q: %w", city, err)
	}
	if len(geo.Results) == 0 {
		return nil, fmt.Errorf("geocode %q: no results", city)
	}

	hit := geo.Results[0]
	obs, err := c.currentAt(ctx, hit.Latitude, hit.Longitude)
	if err != nil {
		return nil, err
	}
	obs.Location = hit.Name
	return obs, nil
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
