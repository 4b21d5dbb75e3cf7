package models

import "strings"

// ProviderAssignment is the therapist a client is paired with, fetched once
// at workflow start and read-only afterwards. Clients without an assignment
// go through manual matching by the practice admins later.
type ProviderAssignment struct {
	ID              string   `json:"id"`
	FirstName       string   `json:"firstName"`
	LastName        string   `json:"lastName"`
	Specializations []string `json:"specializations,omitempty"`
}

// DisplayName joins the name parts, tolerating either being empty.
func (p ProviderAssignment) DisplayName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}
