package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		LocationPushInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Dispatch struct {
		BaseURL        string
		RequestTimeout time.Duration
	}

	EventChannel struct {
		URL            string
		ConnectTimeout time.Duration
	}

	Driver struct {
		ID int64
	}

	Sampler struct {
		MinInterval    time.Duration
		SourceInterval time.Duration
		StartLatitude  float64
		StartLongitude float64
	}

	Config struct {
		Tasks        Tasks
		Server       HTTPServer
		Dispatch     Dispatch
		EventChannel EventChannel
		Driver       Driver
		Sampler      Sampler
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	locationPushInterval, err := osGetEnvDuration("BACKGROUND_LOCATION_PUSH_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dispatchTimeout, err := osGetEnvDuration("DISPATCH_API_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	connectTimeout, err := osGetEnvDuration("EVENT_CHANNEL_CONNECT_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	driverID, err := osGetInt64("DRIVER_ID")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	samplerMinInterval, err := osGetEnvDuration("SAMPLER_MIN_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	samplerSourceInterval, err := osGetEnvDuration("SAMPLER_SOURCE_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	startLat, err := osGetFloat("SAMPLER_START_LAT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	startLng, err := osGetFloat("SAMPLER_START_LNG")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			LocationPushInterval: locationPushInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Dispatch: Dispatch{
			BaseURL:        os.Getenv("DISPATCH_API_BASE_URL"),
			RequestTimeout: dispatchTimeout,
		},
		EventChannel: EventChannel{
			URL:            os.Getenv("EVENT_CHANNEL_URL"),
			ConnectTimeout: connectTimeout,
		},
		Driver: Driver{
			ID: driverID,
		},
		Sampler: Sampler{
			MinInterval:    samplerMinInterval,
			SourceInterval: samplerSourceInterval,
			StartLatitude:  startLat,
			StartLongitude: startLng,
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Dispatch.BaseURL == "" {
		return errors.New("DISPATCH_API_BASE_URL is required")
	}

	if cfg.EventChannel.URL == "" {
		return errors.New("EVENT_CHANNEL_URL is required")
	}

	if cfg.Driver.ID == 0 {
		return errors.New("DRIVER_ID is required")
	}

	if cfg.Tasks.LocationPushInterval == time.Duration(0) {
		return errors.New("BACKGROUND_LOCATION_PUSH_INTERVAL is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetInt64(s string) (int64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetFloat(s string) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
