package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Project statuses. declined and completed are terminal.
const (
	ProjectStatusPendingApproval = "pending-approval"
	ProjectStatusActive          = "active"
	ProjectStatusDeclined        = "declined"
	ProjectStatusCompleted       = "completed"
)

// Project member roles.
const (
	MemberRoleOwner  = "owner"
	MemberRoleMember = "member"
)

// Pending-request statuses shared by applications and invitations.
const (
	RequestStatusPending  = "pending"
	RequestStatusDeclined = "declined"
)

// Project is a collaborative project listing. MemberCount is a denormalized
// counter kept equal to the number of live ProjectMember records and capped
// at MaxTeamSize; both are maintained inside the same transaction as any
// membership write.
type Project struct {
	ID            primitive.ObjectID  `json:"_id" bson:"_id"`
	CreatorID     string              `json:"creatorId" bson:"creatorId"`
	Title         string              `json:"title" bson:"title"`
	Description   string              `json:"description,omitempty" bson:"description,omitempty"`
	Tags          []string            `json:"tags,omitempty" bson:"tags,omitempty"`
	Status        string              `json:"status" bson:"status"`
	MaxTeamSize   int                 `json:"maxTeamSize" bson:"maxTeamSize"`
	MemberCount   int                 `json:"memberCount" bson:"memberCount"`
	ChatChannelID string              `json:"chatChannelId,omitempty" bson:"chatChannelId,omitempty"`
	DeclineReason string              `json:"declineReason,omitempty" bson:"declineReason,omitempty"`
	CreatedAt     primitive.DateTime  `json:"createdAt" bson:"createdAt"`
	UpdatedAt     primitive.DateTime  `json:"updatedAt" bson:"updatedAt"`
	ApprovedAt    *primitive.DateTime `json:"approvedAt,omitempty" bson:"approvedAt,omitempty"`
	DeclinedAt    *primitive.DateTime `json:"declinedAt,omitempty" bson:"declinedAt,omitempty"`
	CompletedAt   *primitive.DateTime `json:"completedAt,omitempty" bson:"completedAt,omitempty"`
}

// projectTransitions mirrors the session table: pending-approval may be
// approved or declined, active projects may complete, terminal states stay.
var projectTransitions = map[string][]string{
	ProjectStatusPendingApproval: {ProjectStatusActive, ProjectStatusDeclined},
	ProjectStatusActive:          {ProjectStatusCompleted},
	ProjectStatusDeclined:        {},
	ProjectStatusCompleted:       {},
}

// ValidateProjectTransition returns nil when from→to is an allowed edge.
func ValidateProjectTransition(from, to string) error {
	for _, allowed := range projectTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return &InvalidTransitionError{From: from, To: to}
}

// ProjectMember is a live membership record, composite-keyed by
// (projectId, userId).
type ProjectMember struct {
	ID        primitive.ObjectID `json:"_id" bson:"_id"`
	ProjectID primitive.ObjectID `json:"projectId" bson:"projectId"`
	UserID    string             `json:"userId" bson:"userId"`
	Role      string             `json:"role" bson:"role"`
	JoinedAt  primitive.DateTime `json:"joinedAt" bson:"joinedAt"`
}

// ProjectApplication is a user's pending request to join a project. It
// resolves into a ProjectMember (record deleted) or a terminal declined
// status; (projectId, userId) is unique while pending.
type ProjectApplication struct {
	ID         primitive.ObjectID  `json:"_id" bson:"_id"`
	ProjectID  primitive.ObjectID  `json:"projectId" bson:"projectId"`
	UserID     string              `json:"userId" bson:"userId"`
	Message    string              `json:"message,omitempty" bson:"message,omitempty"`
	Status     string              `json:"status" bson:"status"`
	CreatedAt  primitive.DateTime  `json:"createdAt" bson:"createdAt"`
	ResolvedAt *primitive.DateTime `json:"resolvedAt,omitempty" bson:"resolvedAt,omitempty"`
}

// ProjectInvitation is an owner's pending invite of a user, composite-keyed
// like an application. Token is included in the invite DM so acceptance can
// be linked back.
type ProjectInvitation struct {
	ID         primitive.ObjectID  `json:"_id" bson:"_id"`
	ProjectID  primitive.ObjectID  `json:"projectId" bson:"projectId"`
	UserID     string              `json:"userId" bson:"userId"`
	InvitedBy  string              `json:"invitedBy" bson:"invitedBy"`
	Token      string              `json:"token" bson:"token"`
	Status     string              `json:"status" bson:"status"`
	CreatedAt  primitive.DateTime  `json:"createdAt" bson:"createdAt"`
	ResolvedAt *primitive.DateTime `json:"resolvedAt,omitempty" bson:"resolvedAt,omitempty"`
}
