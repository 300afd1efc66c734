package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/api"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/api/scheduler"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/config"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/databases"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/notifications"
)

// App stores the router and db connection, so it can be reused
type App struct {
	Router    *mux.Router
	Config    config.Config
	Mailer    notifications.Mailer
	Chat      notifications.ChatClient
	Scheduler *scheduler.Scheduler
	client    databases.ClientHelper
	dbHelper  databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewUserDatabase(a.dbHelper)}
	m.SetupGoGuardian()

	r := mux.NewRouter()
	r.Use(api.TimeoutMiddleware(30 * time.Second))

	userDB := databases.NewUserDatabase(a.dbHelper)
	availabilityDB := databases.NewAvailabilityDatabase(a.dbHelper)
	unavailableDB := databases.NewUnavailableDateDatabase(a.dbHelper)
	bookingDB := databases.NewBookingDatabase(a.dbHelper)
	sessionDB := databases.NewSessionDatabase(a.dbHelper)
	projectDB := databases.NewProjectDatabase(a.dbHelper)
	memberDB := databases.NewProjectMemberDatabase(a.dbHelper)
	applicationDB := databases.NewProjectApplicationDatabase(a.dbHelper)
	invitationDB := databases.NewProjectInvitationDatabase(a.dbHelper)

	av := Availability{DB: availabilityDB, UDB: unavailableDB, CalendarSyncEnabled: a.Config.CalendarSyncEnabled}
	ts := TimeSlot{ADB: availabilityDB, UDB: unavailableDB, BDB: bookingDB}
	bk := Booking{DB: bookingDB, ADB: availabilityDB, UDB: unavailableDB, UserDB: userDB, Client: a.client, Mailer: a.Mailer}
	ms := Mentorship{DB: sessionDB, UserDB: userDB, Mailer: a.Mailer}
	p := Project{DB: projectDB, MDB: memberDB, UserDB: userDB, Client: a.client, Chat: a.Chat, Mailer: a.Mailer}
	mb := Membership{PDB: projectDB, MDB: memberDB, ADB: applicationDB, IDB: invitationDB, UserDB: userDB, Client: a.client, Chat: a.Chat, Mailer: a.Mailer, BaseURL: a.Config.BaseURL}
	mt := Mentor{DB: userDB}
	sw := Sweep{Scheduler: a.Scheduler}

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/token", api.Middleware(http.HandlerFunc(m.CreateToken))).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/mentors", api.Middleware(http.HandlerFunc(mt.MentorsHandler))).Methods("GET")
	apiCreate.Handle("/mentors/{mentor_id}", api.Middleware(http.HandlerFunc(mt.MentorByIDHandler))).Methods("GET")

	apiCreate.Handle("/mentors/{mentor_id}/availability", api.Middleware(http.HandlerFunc(av.GetAvailabilityHandler))).Methods("GET")
	apiCreate.Handle("/mentors/{mentor_id}/availability", api.Middleware(http.HandlerFunc(av.PutAvailabilityHandler))).Methods("PUT")
	apiCreate.Handle("/mentors/{mentor_id}/unavailable-dates", api.Middleware(http.HandlerFunc(av.GetUnavailableDatesHandler))).Methods("GET")
	apiCreate.Handle("/mentors/{mentor_id}/unavailable-dates", api.Middleware(http.HandlerFunc(av.PutUnavailableDatesHandler))).Methods("PUT")
	apiCreate.Handle("/mentors/{mentor_id}/time-slots", api.Middleware(http.HandlerFunc(ts.TimeSlotsHandler))).Methods("GET")

	apiCreate.Handle("/bookings", api.Middleware(http.HandlerFunc(bk.CreateBookingHandler))).Methods("POST")
	apiCreate.Handle("/bookings/{booking_id}", api.Middleware(http.HandlerFunc(bk.BookingByIDHandler))).Methods("GET")
	apiCreate.Handle("/bookings/{booking_id}/cancel", api.Middleware(http.HandlerFunc(bk.CancelBookingHandler))).Methods("POST")
	apiCreate.Handle("/users/{user_id}/bookings", api.Middleware(http.HandlerFunc(bk.BookingsByUserHandler))).Methods("GET")

	apiCreate.Handle("/mentorship-sessions", api.Middleware(http.HandlerFunc(ms.CreateSessionRequestHandler))).Methods("POST")
	apiCreate.Handle("/mentorship-sessions/{session_id}", api.Middleware(http.HandlerFunc(ms.SessionByIDHandler))).Methods("GET")
	apiCreate.Handle("/mentorship-sessions/{session_id}/status", api.Middleware(http.HandlerFunc(ms.UpdateSessionStatusHandler))).Methods("PUT")
	apiCreate.Handle("/mentorship-sessions/{session_id}/contact", api.Middleware(http.HandlerFunc(ms.RecordContactHandler))).Methods("POST")
	apiCreate.Handle("/users/{user_id}/mentorship-sessions", api.Middleware(http.HandlerFunc(ms.SessionsByUserHandler))).Methods("GET")

	apiCreate.Handle("/projects", api.Middleware(http.HandlerFunc(p.CreateProjectHandler))).Methods("POST")
	apiCreate.Handle("/projects", api.Middleware(http.HandlerFunc(p.ProjectsHandler))).Methods("GET")
	apiCreate.Handle("/projects/{project_id}", api.Middleware(http.HandlerFunc(p.ProjectByIDHandler))).Methods("GET")
	apiCreate.Handle("/projects/{project_id}/approve", api.Middleware(http.HandlerFunc(p.ApproveProjectHandler))).Methods("POST")
	apiCreate.Handle("/projects/{project_id}/decline", api.Middleware(http.HandlerFunc(p.DeclineProjectHandler))).Methods("POST")
	apiCreate.Handle("/projects/{project_id}/complete", api.Middleware(http.HandlerFunc(p.CompleteProjectHandler))).Methods("POST")

	apiCreate.Handle("/projects/{project_id}/members", api.Middleware(http.HandlerFunc(mb.ProjectMembersHandler))).Methods("GET")
	apiCreate.Handle("/projects/{project_id}/members/{user_id}", api.Middleware(http.HandlerFunc(mb.RemoveMemberHandler))).Methods("DELETE")
	apiCreate.Handle("/projects/{project_id}/applications", api.Middleware(http.HandlerFunc(mb.ApplyHandler))).Methods("POST")
	apiCreate.Handle("/projects/{project_id}/applications", api.Middleware(http.HandlerFunc(mb.ApplicationsHandler))).Methods("GET")
	apiCreate.Handle("/projects/{project_id}/applications/{application_id}/approve", api.Middleware(http.HandlerFunc(mb.ApproveApplicationHandler))).Methods("POST")
	apiCreate.Handle("/projects/{project_id}/applications/{application_id}/decline", api.Middleware(http.HandlerFunc(mb.DeclineApplicationHandler))).Methods("POST")
	apiCreate.Handle("/projects/{project_id}/invitations", api.Middleware(http.HandlerFunc(mb.InviteHandler))).Methods("POST")
	apiCreate.Handle("/projects/{project_id}/transfer-ownership", api.Middleware(http.HandlerFunc(mb.TransferOwnershipHandler))).Methods("POST")
	apiCreate.Handle("/invitations/{token}/accept", api.Middleware(http.HandlerFunc(mb.AcceptInvitationHandler))).Methods("POST")
	apiCreate.Handle("/invitations/{token}/decline", api.Middleware(http.HandlerFunc(mb.DeclineInvitationHandler))).Methods("POST")

	apiCreate.Handle("/sweeps/inactivity-warning", api.SweepMiddleware(a.Config.SweepSecret, http.HandlerFunc(sw.InactivityWarningHandler))).Methods("POST")
	apiCreate.Handle("/sweeps/inactivity-cleanup", api.SweepMiddleware(a.Config.SweepSecret, http.HandlerFunc(sw.InactivityCleanupHandler))).Methods("POST")

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.client = client
	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("code-with-ahsan api has connected to the database")

	a.Mailer = notifications.NewMailer(a.Config.SendgridAPIKey)
	a.Chat = notifications.NewChatClient(a.Config.ChatAPIURL, a.Config.ChatAPIKey)

	a.Scheduler = scheduler.New(
		databases.NewSessionDatabase(a.dbHelper),
		databases.NewUserDatabase(a.dbHelper),
		a.Mailer,
	)
	a.Scheduler.Start()

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}
