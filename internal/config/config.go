package config

import (
	"errors"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration of the application. It is loaded once at
// startup and passed by value into every component that needs it.
type Config struct {
	ServerAddress    string        `mapstructure:"SERVER_ADDRESS"`
	DBSource         string        `mapstructure:"DB_SOURCE"`
	GeminiAPIKey     string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel      string        `mapstructure:"GEMINI_MODEL"`
	NominatimURL     string        `mapstructure:"NOMINATIM_URL"`
	OSRMURL          string        `mapstructure:"OSRM_URL"`
	UserAgent        string        `mapstructure:"USER_AGENT"`
	UploadDir        string        `mapstructure:"UPLOAD_DIR"`
	GeocodeTimeout   time.Duration `mapstructure:"GEOCODE_TIMEOUT"`
	RouteTimeout     time.Duration `mapstructure:"ROUTE_TIMEOUT"`
	InferenceTimeout time.Duration `mapstructure:"INFERENCE_TIMEOUT"`
}

// HasGeminiKey reports whether the inference credential is configured.
func (c Config) HasGeminiKey() bool {
	return c.GeminiAPIKey != ""
}

// HasDatabase reports whether a PostgreSQL connection string is configured.
func (c Config) HasDatabase() bool {
	return c.DBSource != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("GEMINI_API_KEY", "")
	v.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	v.SetDefault("NOMINATIM_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("OSRM_URL", "https://router.project-osrm.org")
	v.SetDefault("USER_AGENT", "food-analyzer-api/1.0")
	v.SetDefault("UPLOAD_DIR", "static/uploads")
	v.SetDefault("GEOCODE_TIMEOUT", 10*time.Second)
	v.SetDefault("ROUTE_TIMEOUT", 15*time.Second)
	v.SetDefault("INFERENCE_TIMEOUT", 30*time.Second)
}

// LoadConfig reads configuration from app.env in path, overridden by the
// process environment. A .env file in the working directory is loaded first
// when present. A missing app.env is not an error.
func LoadConfig(path string) (config Config, err error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, err
		}
	}

	err = v.Unmarshal(&config)
	return config, err
}
