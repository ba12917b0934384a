package models

import "time"

// Role identifies which kind of account is signed in
type Role string

const (
	RoleChild    Role = "child"
	RoleGuardian Role = "guardian"
)

// Valid reports whether the role is one of the known roles
func (r Role) Valid() bool {
	return r == RoleChild || r == RoleGuardian
}

// UserIdentity represents the signed-in account. Demo mode accepts any
// credentials, but the guardian password is still hashed before it is
// stored in the state record.
type UserIdentity struct {
	ID               string    `json:"id"`
	ChildName        string    `json:"childName"`
	GuardianName     string    `json:"guardianName"`
	Email            string    `json:"email"`
	Role             Role      `json:"role"`
	PasswordHash     string    `json:"passwordHash,omitempty"`
	VoiceAuthEnabled bool      `json:"voiceAuthEnabled"`
	CreatedAt        time.Time `json:"createdAt"`
}

// DisplayName returns the name matching the active role
func (u *UserIdentity) DisplayName() string {
	if u.Role == RoleGuardian {
		return u.GuardianName
	}
	return u.ChildName
}
