// Package models contains the data types shared by the session store,
// the repositories and the services.
package models

// User is an account record from the remote users collection.
//
// Passwords are stored and compared in plain text; this mirrors the
// current production data and is a known security gap (see DESIGN.md),
// not something to harden silently here.
type User struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}
