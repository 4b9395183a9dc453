// internal/model/invite.go
package model

import "time"

// Invite is a short-lived record keyed by its code in the invites collection.
// It is independent of the chart document; accepting one flips Status and
// never mutates the chart.
type Invite struct {
	Code             string       `json:"code"`
	Email            string       `json:"email"`
	OrganizationID   string       `json:"organization_id"`
	OrganizationCode string       `json:"organization_code"`
	OrganizationName string       `json:"organization_name"`
	CreatedBy        string       `json:"created_by"`
	CreatedAt        time.Time    `json:"created_at"`
	ExpiresAt        time.Time    `json:"expires_at"`
	Status           InviteStatus `json:"status"`
	AcceptedBy       string       `json:"accepted_by,omitempty"`
}

// Expired reports whether the invite is past its expiry at the given time.
func (i *Invite) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}
