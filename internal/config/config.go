package config

import (
	"log"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AgentLogFilePath     string
	ServerLogFilePath    string
	ComputingPower       int
	AgentRequestTimeout  time.Duration
	ServerPort           string
	OrchestratorHost     string
	OrchestratorPort     string
	DBPath               string
	JWTSecret            string
	JWTExpirationMinutes int
	HandlerRetryAttempts int
	HandlerRetryBackoff  time.Duration
}

var (
	AppConfig *Config
	Once      sync.Once
)

// getEnvString читает строковую переменную окружения со значением по умолчанию
func getEnvString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	log.Printf("%s not set. Auto set to %s", key, def)
	return def
}

// getEnvInt читает целочисленную переменную окружения со значением по умолчанию
func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("%s not set. Auto set to %d", key, def)
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("%s not a number. Auto set to %d", key, def)
		return def
	}
	return n
}

// getEnvDurationMS читает длительность в миллисекундах со значением по умолчанию
func getEnvDurationMS(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("%s not set. Auto set to %v", key, def)
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("%s not a number. Auto set to %v", key, def)
		return def
	}
	return time.Duration(n) * time.Millisecond
}

func InitConfig(configPath string) {
	AppConfig = &Config{}

	if _, err := os.Stat(configPath); err == nil {
		err := godotenv.Load(configPath)
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	} else {
		log.Println(".env not found")
		// current path
		log.Println(os.Getwd())
	}

	AppConfig.AgentLogFilePath = os.Getenv("AGENT_LOG_FILE_PATH")
	AppConfig.ServerLogFilePath = os.Getenv("SERVER_LOG_FILE_PATH")

	AppConfig.ComputingPower = getEnvInt("COMPUTING_POWER", 4)
	AppConfig.AgentRequestTimeout = getEnvDurationMS("AGENT_REQUEST_TIMEOUT_MS", 500*time.Millisecond)
	AppConfig.ServerPort = getEnvString("SERVER_PORT", "8080")
	AppConfig.OrchestratorHost = getEnvString("ORCHESTRATOR_HOST", "localhost")
	AppConfig.OrchestratorPort = getEnvString("ORCHESTRATOR_PORT", AppConfig.ServerPort)
	AppConfig.DBPath = getEnvString("DB_PATH", "data/storefront.db")
	AppConfig.JWTSecret = getEnvString("JWT_SECRET", "storefront-dev-secret")
	AppConfig.JWTExpirationMinutes = getEnvInt("JWT_EXPIRATION_MINUTES", 60)
	AppConfig.HandlerRetryAttempts = getEnvInt("HANDLER_RETRY_ATTEMPTS", 3)
	AppConfig.HandlerRetryBackoff = getEnvDurationMS("HANDLER_RETRY_BACKOFF_MS", 100*time.Millisecond)
}
