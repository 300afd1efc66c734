package config

import (
	"encoding/json"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/logging"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
)

// Config holds the project config values
type Config struct {
	URL                 string
	DatabaseName        string
	BaseURL             string
	Port                string
	SendgridAPIKey      string
	ChatAPIURL          string
	ChatAPIKey          string
	SweepSecret         string
	CalendarSyncEnabled bool
}

// New sets up all config related services
func New() *Config {

	//setup zap logger and replace default logger
	logger := logging.New()
	_ = zap.ReplaceGlobals(logger.Desugar())

	return &Config{
		URL:                 os.Getenv("DB_URI"),
		DatabaseName:        os.Getenv("DB_NAME"),
		BaseURL:             os.Getenv("BASE_URL"),
		Port:                os.Getenv("PORT"),
		SendgridAPIKey:      os.Getenv("SENDGRID_API_KEY"),
		ChatAPIURL:          os.Getenv("CHAT_API_URL"),
		ChatAPIKey:          os.Getenv("CHAT_API_KEY"),
		SweepSecret:         os.Getenv("SWEEP_SECRET"),
		CalendarSyncEnabled: os.Getenv("CAL_SYNC_ENABLED") == "true",
	}

}

// ErrorStatus logs err and writes the standard error response body for a
// given message and status code
func ErrorStatus(message string, httpStatusCode int, w http.ResponseWriter, err error) {
	zap.S().With(err).Error(message)
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	b, _ := json.Marshal(models.ErrorMessageResponse{Response: models.MessageError{Message: message, Error: errMsg}})
	w.WriteHeader(httpStatusCode)
	w.Write(b)
}
