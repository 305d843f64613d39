package models

import "time"

// CeremonyAttendee tracks one student's ceremony logistics.
type CeremonyAttendee struct {
	StudentID     string     `json:"student_id"`
	Name          string     `json:"name"`
	Program       string     `json:"program"`
	Confirmed     bool       `json:"confirmed"`
	GownCollected bool       `json:"gown_collected"`
	Seat          string     `json:"seat,omitempty"`
	ConfirmedAt   *time.Time `json:"confirmed_at,omitempty"`
}

// CeremonyFilter narrows attendee listings. Search matches name and
// student ID.
type CeremonyFilter struct {
	Search    string
	Confirmed *bool
	Page      int
	PageSize  int
}

// CeremonySummary aggregates logistics for the ceremony screen. The gown
// collection rate is computed over confirmed attendees only; zero confirmed
// attendees renders as "0%" rather than a division error.
type CeremonySummary struct {
	TotalAttendees     int    `json:"total_attendees"`
	ConfirmedCount     int    `json:"confirmed_count"`
	GownCollectedCount int    `json:"gown_collected_count"`
	GownCollectionRate string `json:"gown_collection_rate"`
}
