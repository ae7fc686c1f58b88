package config

import (
	"os"
	"strconv"
	"time"
)

// FallbackPolicy controls what the database router does when a request carries a
// tenant code that has no registered connection.
type FallbackPolicy string

const (
	// FallbackMaster degrades to the master connection and logs a consistency warning.
	FallbackMaster FallbackPolicy = "master"
	// FallbackReject fails the operation instead of risking wrong-tenant data.
	FallbackReject FallbackPolicy = "reject"
)

type Config struct {
	ServerPort         int            `json:"server_port"`
	JWTSecretKey       string         `json:"jwt_secret_key"`
	JWTExpirationHours int            `json:"jwt_expiration_hours"`
	DefaultRateLimit   int            `json:"default_rate_limit"`
	GlobalRateLimit    int            `json:"global_rate_limit"`
	SingleDatabaseMode bool           `json:"single_database_mode"`
	AsyncProvisioning  bool           `json:"async_provisioning"`
	RoutingFallback    FallbackPolicy `json:"routing_fallback"`
}

func Load() (*Config, error) {
	serverPort, _ := strconv.Atoi(os.Getenv("SERVER_PORT"))
	if serverPort == 0 {
		serverPort = 10000
	}

	jwtExpirationHours, _ := strconv.Atoi(os.Getenv("JWT_EXPIRATION_HOURS"))
	if jwtExpirationHours == 0 {
		jwtExpirationHours = 24
	}

	defaultRateLimit, _ := strconv.Atoi(os.Getenv("DEFAULT_RATE_LIMIT"))
	if defaultRateLimit == 0 {
		defaultRateLimit = 1000 // 1000 requests per minute per firm
	}

	globalRateLimit, _ := strconv.Atoi(os.Getenv("GLOBAL_RATE_LIMIT"))
	if globalRateLimit == 0 {
		globalRateLimit = 10000 // 10000 requests per minute globally per IP
	}

	fallback := FallbackPolicy(getEnvWithDefault("ROUTING_FALLBACK", string(FallbackMaster)))
	if fallback != FallbackMaster && fallback != FallbackReject {
		fallback = FallbackMaster
	}

	return &Config{
		ServerPort:         serverPort,
		JWTSecretKey:       os.Getenv("JWT_SECRET_KEY"),
		JWTExpirationHours: jwtExpirationHours,
		DefaultRateLimit:   defaultRateLimit,
		GlobalRateLimit:    globalRateLimit,
		SingleDatabaseMode: getEnvBoolWithDefault("SINGLE_DATABASE_MODE", false),
		AsyncProvisioning:  getEnvBoolWithDefault("ASYNC_PROVISIONING", false),
		RoutingFallback:    fallback,
	}, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolWithDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvDurationWithDefault returns environment variable as duration or default if not set
func getEnvDurationWithDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
