package service

import (
	"context"
	"fmt"
	"net/http"

	"github.com/imroc/req"

	"github.com/liaa-aa/Project-API/internal/domain"
	"github.com/liaa-aa/Project-API/internal/repository"
)

// openWeatherResponse mirrors the fields we read from the OpenWeather
// current-weather API.
type openWeatherResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int32   `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type weatherService struct {
	apiKey    string
	baseURL   string
	eventRepo repository.EventRepository
}

func NewWeatherService(apiKey, baseURL string, eventRepo repository.EventRepository) WeatherService {
	return &weatherService{
		apiKey:    apiKey,
		baseURL:   baseURL,
		eventRepo: eventRepo,
	}
}

func (s *weatherService) fetch(ctx context.Context, location string) (*domain.WeatherReport, error) {
	resp, err := req.Get(s.baseURL, ctx, req.QueryParam{
		"q":     location,
		"appid": s.apiKey,
		"units": "metric",
		"lang":  "id",
	})
	if err != nil {
		return nil, fmt.Errorf("weather lookup failed: %w", err)
	}

	if resp.Response().StatusCode == http.StatusNotFound {
		return nil, domain.ErrLocationNotFound
	}
	if resp.Response().StatusCode >= 400 {
		return nil, fmt.Errorf("weather provider returned status %d", resp.Response().StatusCode)
	}

	var payload openWeatherResponse
	if err := resp.ToJSON(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	report := &domain.WeatherReport{
		City:      payload.Name,
		Country:   payload.Sys.Country,
		Temp:      payload.Main.Temp,
		FeelsLike: payload.Main.FeelsLike,
		Humidity:  payload.Main.Humidity,
		WindSpeed: payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		report.Description = payload.Weather[0].Description
		report.Icon = payload.Weather[0].Icon
	}
	return report, nil
}

func (s *weatherService) GetByCity(ctx context.Context, city string) (*domain.WeatherReport, error) {
	return s.fetch(ctx, city)
}

func (s *weatherService) GetByEvent(ctx context.Context, eventID int32) (*domain.EventWeather, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	report, err := s.fetch(ctx, event.Location)
	if err != nil {
		return nil, err
	}
	return &domain.EventWeather{
		EventID:  event.ID,
		Location: event.Location,
		Weather:  *report,
	}, nil
}
