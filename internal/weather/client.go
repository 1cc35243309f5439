package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"alcyxob/workout-planner/internal/domain"
)

// Open-Meteo forecast range limits.
const (
	MaxHourlyForecastDays = 7  // hourly data available this many days out
	MaxDailyForecastDays  = 16 // daily data available this many days out
)

// Hour boundaries for time-of-day grouping of hourly data (24-hour clock).
const (
	morningStart   = 5
	afternoonStart = 12
	eveningStart   = 17
	eveningEnd     = 22
)

// ErrBeyondForecastRange is returned when the requested date is further out
// than the provider supplies data for.
var ErrBeyondForecastRange = errors.New("date is beyond the forecast range")

// Client fetches forecasts from the Open-Meteo public API. No API key is
// required.
type Client struct {
	baseURL    string
	lat, lon   float64
	timezone   string
	httpClient *http.Client
}

// NewClient builds a weather client for a fixed location.
func NewClient(baseURL string, lat, lon float64, timezone string) *Client {
	if baseURL == "" {
		baseURL = "https://api.open-meteo.com/v1/forecast"
	}
	if timezone == "" {
		timezone = "America/Chicago"
	}
	return &Client{
		baseURL:    baseURL,
		lat:        lat,
		lon:        lon,
		timezone:   timezone,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// DayForecast is one day's daily-resolution forecast.
type DayForecast struct {
	Date            domain.DateOnly `json:"date"`
	Temperature     float64         `json:"temperature"` // max apparent, Fahrenheit
	RainProbability int             `json:"rainProbability"`
	WindSpeed       float64         `json:"windspeed"` // mph
	WeatherCode     int             `json:"weatherCode"`
	Description     string          `json:"description"`
}

// SlotForecast summarizes one time-of-day slot from hourly data: mean
// apparent temperature and wind, worst-case rain probability, dominant code.
type SlotForecast struct {
	Temperature     float64 `json:"temperature"`
	RainProbability int     `json:"rainProbability"`
	WindSpeed       float64 `json:"windspeed"`
	WeatherCode     int     `json:"weatherCode"`
	Description     string  `json:"description"`
}

// DaySlots is hourly data for one date grouped into the three daytime slots.
type DaySlots struct {
	Date      domain.DateOnly `json:"date"`
	Morning   *SlotForecast   `json:"morning"`
	Afternoon *SlotForecast   `json:"afternoon"`
	Evening   *SlotForecast   `json:"evening"`
}

type dailyPayload struct {
	Daily struct {
		Time                        []string  `json:"time"`
		ApparentTemperatureMax      []float64 `json:"apparent_temperature_max"`
		PrecipitationProbabilityMax []int     `json:"precipitation_probability_max"`
		WindSpeedMax                []float64 `json:"windspeed_10m_max"`
		WeatherCode                 []int     `json:"weather_code"`
	} `json:"daily"`
}

type hourlySeries struct {
	Time                     []string  `json:"time"`
	ApparentTemperature      []float64 `json:"apparent_temperature"`
	PrecipitationProbability []int     `json:"precipitation_probability"`
	WindSpeed                []float64 `json:"windspeed_10m"`
	WeatherCode              []int     `json:"weather_code"`
}

type hourlyPayload struct {
	Hourly hourlySeries `json:"hourly"`
}

// DailyForecast fetches the daily-resolution forecast for a single date.
func (c *Client) DailyForecast(ctx context.Context, day domain.DateOnly) (*DayForecast, error) {
	today := domain.Today()
	if today.DaysUntil(day) > MaxDailyForecastDays {
		return nil, fmt.Errorf("%w: %s is more than %d days out", ErrBeyondForecastRange, day, MaxDailyForecastDays)
	}

	q := c.baseParams(day, day)
	q.Set("daily", "apparent_temperature_max,precipitation_probability_max,windspeed_10m_max,weather_code")

	var payload dailyPayload
	if err := c.get(ctx, q, &payload); err != nil {
		return nil, err
	}
	d := payload.Daily
	if len(d.Time) == 0 {
		return nil, fmt.Errorf("no forecast data available for %s", day)
	}

	code := at(d.WeatherCode, 0)
	return &DayForecast{
		Date:            day,
		Temperature:     at(d.ApparentTemperatureMax, 0),
		RainProbability: at(d.PrecipitationProbabilityMax, 0),
		WindSpeed:       at(d.WindSpeedMax, 0),
		WeatherCode:     code,
		Description:     DescribeWeatherCode(code),
	}, nil
}

// SlotForecasts fetches the hourly forecast for a date and groups it into
// morning, afternoon and evening summaries. Slots without any hourly samples
// are nil.
func (c *Client) SlotForecasts(ctx context.Context, day domain.DateOnly) (*DaySlots, error) {
	today := domain.Today()
	if today.DaysUntil(day) > MaxHourlyForecastDays {
		return nil, fmt.Errorf("%w: hourly data for %s is more than %d days out", ErrBeyondForecastRange, day, MaxHourlyForecastDays)
	}

	q := c.baseParams(day, day)
	q.Set("hourly", "apparent_temperature,precipitation_probability,windspeed_10m,weather_code")

	var payload hourlyPayload
	if err := c.get(ctx, q, &payload); err != nil {
		return nil, err
	}
	h := payload.Hourly
	if len(h.Time) == 0 {
		return nil, fmt.Errorf("no forecast data available for %s", day)
	}

	var morning, afternoon, evening []int // indexes into the hourly arrays
	for i, ts := range h.Time {
		hour, ok := hourOf(ts)
		if !ok {
			continue
		}
		switch {
		case hour >= morningStart && hour < afternoonStart:
			morning = append(morning, i)
		case hour >= afternoonStart && hour < eveningStart:
			afternoon = append(afternoon, i)
		case hour >= eveningStart && hour < eveningEnd:
			evening = append(evening, i)
		}
	}

	return &DaySlots{
		Date:      day,
		Morning:   summarize(h, morning),
		Afternoon: summarize(h, afternoon),
		Evening:   summarize(h, evening),
	}, nil
}

func (c *Client) baseParams(start, end domain.DateOnly) url.Values {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(c.lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(c.lon, 'f', -1, 64))
	q.Set("start_date", start.String())
	q.Set("end_date", end.String())
	q.Set("temperature_unit", "fahrenheit")
	q.Set("wind_speed_unit", "mph")
	q.Set("timezone", c.timezone)
	return q
}

func (c *Client) get(ctx context.Context, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("weather request failed: status %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding weather response: %w", err)
	}
	return nil
}

// hourOf extracts the hour from an ISO timestamp like "2026-01-15T07:00".
func hourOf(ts string) (int, bool) {
	if len(ts) < 13 || ts[10] != 'T' {
		return 0, false
	}
	hour, err := strconv.Atoi(ts[11:13])
	if err != nil {
		return 0, false
	}
	return hour, true
}

func summarize(h hourlySeries, idx []int) *SlotForecast {
	if len(idx) == 0 {
		return nil
	}
	var tempSum, windSum float64
	maxRain := 0
	codeCounts := map[int]int{}
	for _, i := range idx {
		tempSum += at(h.ApparentTemperature, i)
		windSum += at(h.WindSpeed, i)
		if rain := at(h.PrecipitationProbability, i); rain > maxRain {
			maxRain = rain
		}
		codeCounts[at(h.WeatherCode, i)]++
	}

	dominant, best := 0, -1
	for code, n := range codeCounts {
		if n > best {
			dominant, best = code, n
		}
	}

	n := float64(len(idx))
	return &SlotForecast{
		Temperature:     round1(tempSum / n),
		RainProbability: maxRain,
		WindSpeed:       round1(windSum / n),
		WeatherCode:     dominant,
		Description:     DescribeWeatherCode(dominant),
	}
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

func at[T int | float64](s []T, i int) T {
	if i < len(s) {
		return s[i]
	}
	var zero T
	return zero
}

// DescribeWeatherCode converts a WMO weather code into a short label.
func DescribeWeatherCode(code int) string {
	descriptions := map[int]string{
		0:  "Clear sky",
		1:  "Mostly clear",
		2:  "Partly cloudy",
		3:  "Overcast",
		45: "Foggy",
		48: "Depositing rime fog",
		51: "Light drizzle",
		53: "Moderate drizzle",
		55: "Dense drizzle",
		61: "Slight rain",
		63: "Moderate rain",
		65: "Heavy rain",
		71: "Slight snow",
		73: "Moderate snow",
		75: "Heavy snow",
		77: "Snow grains",
		80: "Slight rain showers",
		81: "Moderate rain showers",
		82: "Violent rain showers",
		85: "Slight snow showers",
		86: "Heavy snow showers",
		95: "Thunderstorm",
		96: "Thunderstorm with hail",
	}
	if desc, ok := descriptions[code]; ok {
		return desc
	}
	return fmt.Sprintf("Unknown (code %d)", code)
}
