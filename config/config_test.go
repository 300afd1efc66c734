package config_test

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/config"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
)

func TestNew(t *testing.T) {
	os.Setenv("DB_URI", "mongodb://127.0.0.1:27017")
	os.Setenv("DB_NAME", "test")
	os.Setenv("SWEEP_SECRET", "sweep-me")
	os.Setenv("CAL_SYNC_ENABLED", "true")

	conf := config.New()

	assert.Equal(t, "mongodb://127.0.0.1:27017", conf.URL)
	assert.Equal(t, "test", conf.DatabaseName)
	assert.Equal(t, "sweep-me", conf.SweepSecret)
	assert.True(t, conf.CalendarSyncEnabled)
}

func TestErrorStatus(t *testing.T) {
	rr := httptest.NewRecorder()

	config.ErrorStatus("failed to do the thing", 400, rr, errors.New("mocked-error"))

	assert.Equal(t, 400, rr.Code)

	expected, _ := json.Marshal(models.ErrorMessageResponse{Response: models.MessageError{Message: "failed to do the thing", Error: "mocked-error"}})
	assert.Equal(t, string(expected), rr.Body.String())
}
