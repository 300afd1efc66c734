package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/api"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/api/scheduler"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/config"
)

// Sweep exported for testing purposes. These endpoints mirror the cron sweeps
// so operators can trigger them on demand; both are idempotent.
type Sweep struct {
	Scheduler *scheduler.Scheduler
}

// InactivityWarningHandler runs the warning sweep once
func (v Sweep) InactivityWarningHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	warned, err := v.Scheduler.RunInactivityWarnings(ctx)
	if err != nil {
		config.ErrorStatus("failed to run inactivity warning sweep", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"warned": warned,
	})
}

// InactivityCleanupHandler runs the cleanup sweep once
func (v Sweep) InactivityCleanupHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	closed, err := v.Scheduler.RunInactivityCleanup(ctx)
	if err != nil {
		config.ErrorStatus("failed to run inactivity cleanup sweep", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"closed": closed,
	})
}
