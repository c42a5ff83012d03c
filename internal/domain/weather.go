package domain

// WeatherReport is the trimmed-down current-weather payload served to
// clients.
type WeatherReport struct {
	City        string  `json:"city"`
	Country     string  `json:"country"`
	Temp        float64 `json:"temp"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int32   `json:"humidity"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	WindSpeed   float64 `json:"wind_speed"`
}

// EventWeather pairs an event's location with its current weather.
type EventWeather struct {
	EventID  int32         `json:"event_id"`
	Location string        `json:"location"`
	Weather  WeatherReport `json:"weather"`
}
