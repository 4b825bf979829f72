package model

import "time"

type ContactType string

const (
	ContactInvitation ContactType = "invitation"
	ContactRegular    ContactType = "contact"
)

type Contact struct {
	UUID            string      `json:"uuid"`
	Phone           string      `json:"phone"` // country-code-prefixed digit string, unique
	Name            string      `json:"name"`
	Type            ContactType `json:"type"`
	LastInteraction time.Time   `json:"last_interaction"`
	OptOut          bool        `json:"opt_out"`
}
