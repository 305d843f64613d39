package models

import "time"

// AlumniRecord is a graduated student rolled over into the alumni register.
type AlumniRecord struct {
	ID             string    `json:"id"`
	StudentID      string    `json:"student_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Program        string    `json:"program"`
	Faculty        string    `json:"faculty"`
	GraduationYear int       `json:"graduation_year"`
	RolledAt       time.Time `json:"rolled_at"`
}

// AlumniFilter narrows alumni listings. Search matches name, student ID and
// email.
type AlumniFilter struct {
	Search         string
	GraduationYear int
	Page           int
	PageSize       int
}
