// Package scheduler runs the mentorship inactivity sweeps on a cron schedule.
// Active sessions quiet past the inactivity window get one warning; sessions
// still quiet after the grace window are cancelled for inactivity. Recording
// contact clears the warning and restarts the clock.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/AhsanAyaz/code-with-ahsan-sub003/databases"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/models"
	"github.com/AhsanAyaz/code-with-ahsan-sub003/notifications"
	templates "github.com/AhsanAyaz/code-with-ahsan-sub003/templates/html"
)

const (
	// inactivityWindowDays is how long an active session may go without
	// recorded contact before it gets a warning.
	inactivityWindowDays = 35
	// graceWindowDays is how long a warned session has to show contact
	// before it is cancelled.
	graceWindowDays = 7
)

// Scheduler holds the sweep dependencies and the cron runner
type Scheduler struct {
	SDB    databases.SessionDatabase
	UserDB databases.UserDatabase
	Mailer notifications.Mailer
	cron   *cron.Cron
}

// New creates a Scheduler; call Start to begin the daily sweeps
func New(sdb databases.SessionDatabase, udb databases.UserDatabase, mailer notifications.Mailer) *Scheduler {
	return &Scheduler{
		SDB:    sdb,
		UserDB: udb,
		Mailer: mailer,
		cron:   cron.New(cron.WithLocation(time.UTC)),
	}
}

// Start schedules the daily inactivity sweeps at 03:00 UTC
func (s *Scheduler) Start() {
	_, err := s.cron.AddFunc("0 3 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		if _, err := s.RunInactivityWarnings(ctx); err != nil {
			zap.S().Errorw("inactivity warning sweep failed", "error", err)
		}
		if _, err := s.RunInactivityCleanup(ctx); err != nil {
			zap.S().Errorw("inactivity cleanup sweep failed", "error", err)
		}
	})
	if err != nil {
		zap.S().Errorw("failed to schedule inactivity sweeps", "error", err)
		return
	}
	s.cron.Start()
	zap.S().Info("inactivity sweep scheduler started")
}

// Stop halts the cron runner
func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// RunInactivityWarnings warns every active session whose last contact is
// older than the inactivity window and that has no standing warning. Each
// session is handled independently; one failure never stops the sweep.
// Returns the number of sessions warned.
func (s *Scheduler) RunInactivityWarnings(ctx context.Context) (int, error) {
	cutoff := primitive.NewDateTimeFromTime(time.Now().AddDate(0, 0, -inactivityWindowDays))

	sessions, err := s.SDB.Find(ctx, bson.M{
		"status":             models.SessionStatusActive,
		"lastContactAt":      bson.M{"$lt": cutoff},
		"inactivityWarnedAt": bson.M{"$exists": false},
	})
	if err != nil {
		return 0, err
	}

	warned := 0
	now := primitive.NewDateTimeFromTime(time.Now())
	for _, session := range sessions {
		// repeat the sweep predicates so a session that saw contact or left
		// active between the find and this write is not warned
		filter := bson.M{
			"_id":                session.ID,
			"status":             models.SessionStatusActive,
			"lastContactAt":      bson.M{"$lt": cutoff},
			"inactivityWarnedAt": bson.M{"$exists": false},
		}
		update := bson.M{"$set": bson.M{"inactivityWarnedAt": now, "updatedAt": now}}
		matched, err := s.SDB.UpdateOne(ctx, filter, update)
		if err != nil {
			zap.S().Errorw("failed to warn inactive session", "error", err, "sessionId", session.ID.Hex())
			continue
		}
		if matched == 0 {
			continue
		}
		warned++
		s.emailBothParties(ctx, session, func(name string) (string, string, string) {
			return templates.RenderInactivityWarningEmail(name, inactivityWindowDays, graceWindowDays)
		})
		zap.S().Infow("warned inactive mentorship session",
			"sessionId", session.ID.Hex(),
			"lastContactAt", session.LastContactAt,
		)
	}
	return warned, nil
}

// RunInactivityCleanup cancels every warned session whose grace window has
// lapsed. Contact during the grace window clears the warning flag, which
// takes the session out of this sweep entirely. Returns the number closed.
func (s *Scheduler) RunInactivityCleanup(ctx context.Context) (int, error) {
	cutoff := primitive.NewDateTimeFromTime(time.Now().AddDate(0, 0, -graceWindowDays))

	sessions, err := s.SDB.Find(ctx, bson.M{
		"status":             models.SessionStatusActive,
		"inactivityWarnedAt": bson.M{"$lt": cutoff},
	})
	if err != nil {
		return 0, err
	}

	closed := 0
	now := primitive.NewDateTimeFromTime(time.Now())
	for _, session := range sessions {
		// only a session still active with a lapsed warning may be closed;
		// a concurrent complete or contact refresh makes this match nothing
		filter := bson.M{
			"_id":                session.ID,
			"status":             models.SessionStatusActive,
			"inactivityWarnedAt": bson.M{"$lt": cutoff},
		}
		update := bson.M{"$set": bson.M{
			"status":       models.SessionStatusCancelled,
			"cancelReason": models.CancelReasonInactivity,
			"cancelledAt":  now,
			"updatedAt":    now,
		}}
		matched, err := s.SDB.UpdateOne(ctx, filter, update)
		if err != nil {
			zap.S().Errorw("failed to close inactive session", "error", err, "sessionId", session.ID.Hex())
			continue
		}
		if matched == 0 {
			continue
		}
		closed++
		s.emailBothParties(ctx, session, func(name string) (string, string, string) {
			return templates.RenderInactivityClosedEmail(name)
		})
		zap.S().Infow("closed mentorship session for inactivity",
			"sessionId", session.ID.Hex(),
			"inactivityWarnedAt", session.InactivityWarnedAt,
		)
	}
	return closed, nil
}

func (s *Scheduler) emailBothParties(ctx context.Context, session models.MentorshipSession, render func(name string) (subject, html, plain string)) {
	for _, userID := range []string{session.MentorID, session.MenteeID} {
		email, name := s.getUserContact(ctx, userID)
		if email == "" {
			continue
		}
		subject, html, plain := render(name)
		if err := s.Mailer.Send(email, name, subject, html, plain); err != nil {
			zap.S().Errorw("failed to send sweep email", "error", err, "sessionId", session.ID.Hex(), "userId", userID)
		}
	}
}

func (s *Scheduler) getUserContact(ctx context.Context, userID string) (email, name string) {
	filter := bson.M{"_id": userID}
	if oid, err := primitive.ObjectIDFromHex(userID); err == nil {
		filter = bson.M{"_id": oid}
	}
	user, err := s.UserDB.FindOne(ctx, filter)
	if err != nil || user.Details.Email == "" {
		return "", ""
	}
	name = user.Details.Name
	if name == "" {
		name = user.Details.Username
	}
	return user.Details.Email, name
}
