package config

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/linesmerrill/report-nui/models"
)

// Config holds the project config values
type Config struct {
	Env             string
	Port            string
	BaseUrl         string
	HostUrl         string
	NotifyUrl       string
	ResourceName    string
	Url             string
	DatabaseName    string
	RedisUrl        string
	CooldownSeconds int
	FixturePath     string
}

// New loads an optional .env file, installs the global logger for the
// environment and reads the config values
func New() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		zap.S().Warnw("failed to load .env file", "error", err)
	}

	env := getEnv("ENV", "local")
	logger, err := setLogger(env)
	if err != nil {
		logger = zap.NewExample()
	}
	_ = zap.ReplaceGlobals(logger)

	cooldown, err := strconv.Atoi(getEnv("COOLDOWN_SECONDS", "60"))
	if err != nil || cooldown < 0 {
		zap.S().Warnw("invalid COOLDOWN_SECONDS, using 60", "value", os.Getenv("COOLDOWN_SECONDS"))
		cooldown = 60
	}

	return &Config{
		Env:             env,
		Port:            getEnv("PORT", "8080"),
		BaseUrl:         getEnv("BASE_URL", "/"),
		HostUrl:         os.Getenv("HOST_URL"),
		NotifyUrl:       getEnv("NOTIFY_URL", "ws://localhost:8080/ws"),
		ResourceName:    getEnv("RESOURCE_NAME", "report-nui"),
		Url:             os.Getenv("DB_URI"),
		DatabaseName:    getEnv("DB_NAME", "reports"),
		RedisUrl:        os.Getenv("REDIS_URL"),
		CooldownSeconds: cooldown,
		FixturePath:     os.Getenv("FIXTURE_PATH"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// ErrorStatus is a useful function that will log, write http headers and body for a
// give message, status code and err
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().Errorw(message, "error", err)

	res := models.ErrorMessageResponse{Response: models.MessageError{Message: message}}
	if err != nil {
		res.Response.Error = err.Error()
	}
	b, _ := json.Marshal(res)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatusCode)
	w.Write(b)
}
