package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Settings holds everything the service reads from the environment besides
// the Mongo, Redis and port variables consumed by Core's bootstrap.
type Settings struct {
	AppEnv    string `envconfig:"APP_ENV" default:"development"`
	ClientURL string `envconfig:"CLIENT_URL" default:"*"`
	JWTSecret string `envconfig:"JWT_SECRET"`

	CloudinaryCloudName string `envconfig:"CLOUDINARY_CLOUD_NAME"`
	CloudinaryAPIKey    string `envconfig:"CLOUDINARY_API_KEY"`
	CloudinaryAPISecret string `envconfig:"CLOUDINARY_API_SECRET"`
	CloudinaryFolder    string `envconfig:"CLOUDINARY_FOLDER" default:"wellness-hub"`

	AMQPURL        string `envconfig:"AMQP_URL"`
	EventsExchange string `envconfig:"EVENTS_EXCHANGE" default:"wellness.bookings"`

	StaleBookingSchedule string        `envconfig:"STALE_BOOKING_SCHEDULE" default:"5 0 * * *"`
	CacheTTL             time.Duration `envconfig:"CACHE_TTL" default:"10m"`
	MigrationsEnabled    bool          `envconfig:"MIGRATIONS_ENABLED" default:"true"`
}

func Load() (Settings, error) {
	var s Settings
	err := envconfig.Process("", &s)
	return s, err
}

func (s Settings) CloudinaryConfigured() bool {
	return s.CloudinaryCloudName != "" && s.CloudinaryAPIKey != "" && s.CloudinaryAPISecret != ""
}

func (s Settings) AllowedOrigins() []string {
	if s.ClientURL == "" {
		return []string{"*"}
	}
	return []string{s.ClientURL}
}
