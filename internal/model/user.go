// internal/model/user.go
package model

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleMember   Role = "member"
	RoleObserver Role = "observer"
)

type OrganizationRole string

const (
	OrgRoleCreator OrganizationRole = "creator"
	OrgRoleMember  OrganizationRole = "member"
)

// User is the membership record stored in the users collection, keyed by
// user ID. Role guards on the web client read the membership fields to decide
// which phases of setup are unlocked.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	PasswordHash string `json:"password_hash"`

	OrganizationID   string           `json:"organization_id"`
	OrganizationCode string           `json:"organization_code"`
	HasOrganization  bool             `json:"has_organization"`
	Role             Role             `json:"role"`
	OrganizationRole OrganizationRole `json:"organization_role"`
	IsCreator        bool             `json:"is_creator"`
	IsFirstLogin     bool             `json:"is_first_login"`

	LastActiveAt time.Time `json:"last_active_at"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
