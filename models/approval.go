package models

import "time"

// Approval request states.
const (
	ApprovalPending  = "Pending"
	ApprovalApproved = "Approved"
	ApprovalRejected = "Rejected"
)

// ApprovalRequest is created when a provider registers and resolved by an
// admin. Only approved providers may list venues.
type ApprovalRequest struct {
	ID         string `bson:"id" json:"id"`
	ProviderID string `bson:"providerId" json:"providerId"`
	Status     string `bson:"status" json:"status"`
	Remark     string `bson:"remark,omitempty" json:"remark,omitempty"`

	CreatedAt  time.Time  `bson:"createdAt" json:"createdAt"`
	ResolvedAt *time.Time `bson:"resolvedAt,omitempty" json:"resolvedAt,omitempty"`
}

// AdminNotification is a persistent record shown on the admin dashboard,
// written alongside the fire-and-forget pushes.
type AdminNotification struct {
	ID        string    `bson:"id" json:"id"`
	Event     string    `bson:"event" json:"event"`
	Message   string    `bson:"message" json:"message"`
	IsRead    bool      `bson:"isRead" json:"isRead"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
