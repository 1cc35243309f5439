package service

import (
	"context"
	"time"

	"alcyxob/workout-planner/internal/domain"
	"alcyxob/workout-planner/internal/observability"
	"alcyxob/workout-planner/internal/weather"
)

// SlotWeather is what a calendar cell shows for one (date, slot) pair. A nil
// Forecast with Resolution none means weather is intentionally not shown
// there.
type SlotWeather struct {
	Date       domain.DateOnly       `json:"date"`
	Slot       domain.TimeOfDay      `json:"slot"`
	Resolution string                `json:"resolution"` // "hourly", "daily" or "none"
	Forecast   *weather.SlotForecast `json:"forecast,omitempty"`
}

// WeatherService decides whether a cell gets a forecast and serves it from a
// short-lived cache.
type WeatherService interface {
	SlotWeather(ctx context.Context, day domain.DateOnly, slot domain.TimeOfDay) (*SlotWeather, error)
}

type weatherService struct {
	client *weather.Client
	cache  *weather.Cache
	now    func() time.Time
}

// NewWeatherService creates a new instance of weatherService.
func NewWeatherService(client *weather.Client, cacheTTL time.Duration) WeatherService {
	return &weatherService{
		client: client,
		cache:  weather.NewCache(cacheTTL),
		now:    time.Now,
	}
}

func (s *weatherService) SlotWeather(ctx context.Context, day domain.DateOnly, slot domain.TimeOfDay) (*SlotWeather, error) {
	today := domain.DateOnlyFromTime(s.now())
	result := &SlotWeather{Date: day, Slot: slot, Resolution: "none"}

	resolution := weather.Decide(today, day, slot)
	if resolution == weather.ResolutionNone {
		return result, nil
	}

	if cached, ok := s.cache.Get(day, slot); ok {
		observability.WeatherCacheHits.Inc()
		return cached.(*SlotWeather), nil
	}
	observability.WeatherCacheMisses.Inc()

	switch resolution {
	case weather.ResolutionHourly:
		slots, err := s.client.SlotForecasts(ctx, day)
		if err != nil {
			return nil, err
		}
		result.Resolution = "hourly"
		switch slot {
		case domain.TimeMorning:
			result.Forecast = slots.Morning
		case domain.TimeAfternoon:
			result.Forecast = slots.Afternoon
		case domain.TimeEvening:
			result.Forecast = slots.Evening
		}
	case weather.ResolutionDaily:
		daily, err := s.client.DailyForecast(ctx, day)
		if err != nil {
			return nil, err
		}
		result.Resolution = "daily"
		result.Forecast = &weather.SlotForecast{
			Temperature:     daily.Temperature,
			RainProbability: daily.RainProbability,
			WindSpeed:       daily.WindSpeed,
			WeatherCode:     daily.WeatherCode,
			Description:     daily.Description,
		}
	}

	s.cache.Set(day, slot, result)
	return result, nil
}
