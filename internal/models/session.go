package models

import "time"

// Session is the signed-in user snapshot plus its opaque token.
type Session struct {
	User  User   `json:"user" yaml:"user"`
	Token string `json:"token" yaml:"token"`
}

// Snapshot is a full backup of the three collections.
type Snapshot struct {
	Users      []User      `json:"users" yaml:"users"`
	Benefits   []Benefit   `json:"benefits" yaml:"benefits"`
	Promotions []Promotion `json:"promotions" yaml:"promotions"`
	ExportDate time.Time   `json:"exportDate" yaml:"exportDate"`
}

// ImportData restores some collections. A nil slice means the collection
// is absent from the import and stays as it is; an empty non-nil slice
// clears it.
type ImportData struct {
	Users      []User      `json:"users,omitempty" yaml:"users,omitempty"`
	Benefits   []Benefit   `json:"benefits,omitempty" yaml:"benefits,omitempty"`
	Promotions []Promotion `json:"promotions,omitempty" yaml:"promotions,omitempty"`
}
