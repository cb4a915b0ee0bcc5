// Package models defines the records persisted in the CEBIP key/value
// medium. JSON field names match the stored layout.
package models

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
)

type MembershipType string

const (
	MembershipBasic   MembershipType = "basic"
	MembershipPremium MembershipType = "premium"
	MembershipVIP     MembershipType = "vip"
)

// User is an administrator or a member. Password holds the stored
// credential: an argon2id hash, or plaintext for records imported from
// older exports.
type User struct {
	ID             string         `json:"id" yaml:"id"`
	Email          string         `json:"email" yaml:"email"`
	Password       string         `json:"password" yaml:"password"`
	Name           string         `json:"name" yaml:"name"`
	Role           Role           `json:"role" yaml:"role"`
	Status         Status         `json:"status" yaml:"status"`
	CreatedAt      time.Time      `json:"createdAt" yaml:"createdAt"`
	LastLogin      *time.Time     `json:"lastLogin,omitempty" yaml:"lastLogin,omitempty"`
	MembershipType MembershipType `json:"membershipType,omitempty" yaml:"membershipType,omitempty"`
	Avatar         string         `json:"avatar,omitempty" yaml:"avatar,omitempty"`
}

func (u User) IsMember() bool { return u.Role == RoleMember }

func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

func (u User) IsActive() bool { return u.Status == StatusActive }

// NewUser carries the caller-supplied fields of a user; the id and
// createdAt are assigned on creation. Password is plaintext here.
type NewUser struct {
	Email          string
	Password       string
	Name           string
	Role           Role
	Status         Status
	MembershipType MembershipType
	Avatar         string
}

// UserPatch is a partial update. Nil fields are left untouched.
// Password, when set, is plaintext and gets hashed before it is stored.
type UserPatch struct {
	Email          *string
	Password       *string
	Name           *string
	Role           *Role
	Status         *Status
	MembershipType *MembershipType
	Avatar         *string
	LastLogin      *time.Time
}

// Apply returns u with the non-nil fields of p merged in. The password is
// copied as given; hashing is the caller's job.
func (p UserPatch) Apply(u User) User {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Password != nil {
		u.Password = *p.Password
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
	if p.MembershipType != nil {
		u.MembershipType = *p.MembershipType
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.LastLogin != nil {
		t := *p.LastLogin
		u.LastLogin = &t
	}
	return u
}
