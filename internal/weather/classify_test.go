package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		code int
		want Category
	}{
		{"clear sky", 0, CategoryClear},
		{"partly cloudy", 2, CategoryCloudy},
		{"overcast", 3, CategoryOvercast},
		{"fog", 45, CategoryFog},
		{"drizzle", 53, CategoryRain},
		{"rain", 63, CategoryRain},
		{"snow", 73, CategorySnow},
		{"rain showers", 81, CategoryShowers},
		{"thunderstorm", 95, CategoryStorm},
		{"out of scheme", 120, CategoryStorm},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.code))
		})
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{0, "Clear sky"},
		{1, "Partly cloudy"},
		{3, "Partly cloudy"},
		{45, "Foggy"},
		{48, "Foggy"},
		{55, "Rainy"},
		{67, "Rainy"},
		{75, "Snowy"},
		{80, "Showers"},
		{96, "Thunderstorms"},
		{150, "Unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Describe(tt.code), "code %d", tt.code)
	}
}

func TestDisplayDescriptionAndEmoji(t *testing.T) {
	tests := []struct {
		code      int
		wantDesc  string
		wantEmoji string
	}{
		{0, "Clear Sky", "☀️"},
		{2, "Partly Cloudy", "⛅"},
		{3, "Overcast", "☁️"},
		{48, "Foggy", "🌫️"},
		{61, "Rainy", "🌧️"},
		{75, "Snowy", "🌨️"},
		{82, "Showers", "🌦️"},
		{95, "Stormy", "⛈️"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.wantDesc, DisplayDescription(tt.code), "code %d", tt.code)
		assert.Equal(t, tt.wantEmoji, Emoji(tt.code), "code %d", tt.code)
	}
}
