package handlers

import "errors"

// Sentinel errors surfaced as conflict or validation responses. Handlers
// compare against these to pick the right status code after a transaction.
var (
	errMissingStartDate   = errors.New("startDate query parameter is required")
	errSlotUnavailable    = errors.New("requested slot is no longer available")
	errBookingCancelled   = errors.New("booking is already cancelled")
	errDuplicateSession   = errors.New("a live mentorship session already exists for this pair")
	errSessionNotActive   = errors.New("mentorship session is not active")
	errSessionChanged     = errors.New("session status changed concurrently")
	errCapacityExceeded   = errors.New("project team is at capacity")
	errAlreadyMember      = errors.New("user is already a member of this project")
	errNotMember          = errors.New("user is not a member of this project")
	errOwnerCannotLeave   = errors.New("owner must transfer ownership before leaving")
	errNotOwner           = errors.New("only the project owner may do this")
	errProjectNotActive   = errors.New("project is not active")
	errDuplicateRequest   = errors.New("a pending request already exists for this pair")
	errRequestNotPending  = errors.New("request is no longer pending")
	errSelfTransfer       = errors.New("cannot transfer ownership to the current owner")
)
