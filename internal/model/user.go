package model

// Role is the flat two-role permission model.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// NormalizeRole maps free-form role strings (CSV imports, legacy data) to
// a known role. Anything unrecognized becomes RoleUser.
func NormalizeRole(s string) Role {
	switch s {
	case "admin", "관리자":
		return RoleAdmin
	default:
		return RoleUser
	}
}

// User is a registered staff account stored in registered_users. Email is
// the identifier. The bootstrap administrator configured via environment
// bypasses this table entirely.
//
// The json tags describe the cache blob, not the API shape: handlers answer
// with dto.UserInfo, so the password hash must survive a cache round-trip
// here and never reach a response.
type User struct {
	Email        string `gorm:"type:varchar(255);primaryKey" json:"email"`
	Name         string `gorm:"type:varchar(100);not null"   json:"name"`
	Role         Role   `gorm:"type:varchar(16);not null;default:'user'" json:"role"`
	PasswordHash string `gorm:"type:varchar(255);not null"   json:"password_hash"`
	Timestamps
}

// TableName names the remote collection.
func (User) TableName() string { return KindUser }

// RecordID implements store.Record.
func (u User) RecordID() string { return u.Email }
