package config

import "os"

type Config struct {
	ListenAddr string
	DataDir    string
	LogLevel   string
	LogFile    string
}

// Load reads configuration from the environment with defaults. main loads a
// .env file first, so explicit env vars win over .env entries.
func Load() *Config {
	return &Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		DataDir:    getEnv("DATA_DIR", "./data"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFile:    getEnv("LOG_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if val, exists := os.LookupEnv(key); exists {
		return val
	}
	return defaultVal
}
