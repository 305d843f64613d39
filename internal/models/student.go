package models

import "time"

// ClearanceStatus is the aggregate clearance state of a student. It is
// always derived from the five departmental flags and never stored.
type ClearanceStatus string

const (
	ClearanceCleared    ClearanceStatus = "CLEARED"
	ClearanceInProgress ClearanceStatus = "IN_PROGRESS"
	ClearanceRejected   ClearanceStatus = "REJECTED"
)

// PaymentStatus tracks graduation fee settlement, set by the finance
// workflow and independent of clearance.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "PAID"
	PaymentPending PaymentStatus = "PENDING"
	PaymentWaived  PaymentStatus = "WAIVED"
)

// Department names one of the five offices that must sign off before a
// student may graduate.
type Department string

const (
	DeptAcademic     Department = "academic"
	DeptRegistrar    Department = "registrar"
	DeptExaminations Department = "examinations"
	DeptFinance      Department = "finance"
	DeptAlumni       Department = "alumni"
)

// Departments lists all clearance departments in sign-off order.
var Departments = []Department{DeptAcademic, DeptRegistrar, DeptExaminations, DeptFinance, DeptAlumni}

// KnownDepartment reports whether name is one of the five clearance offices.
func KnownDepartment(name Department) bool {
	for _, d := range Departments {
		if d == name {
			return true
		}
	}
	return false
}

// DepartmentStatus is the per-department review state. A department that has
// not acted yet is Pending; an explicit rejection is sticky and distinct
// from "not yet reviewed".
type DepartmentStatus string

const (
	DeptPending  DepartmentStatus = "PENDING"
	DeptApproved DepartmentStatus = "APPROVED"
	DeptRejected DepartmentStatus = "REJECTED"
)

// DepartmentalClearance holds the five per-office review states.
type DepartmentalClearance struct {
	Academic     DepartmentStatus `json:"academic"`
	Registrar    DepartmentStatus `json:"registrar"`
	Examinations DepartmentStatus `json:"examinations"`
	Finance      DepartmentStatus `json:"finance"`
	Alumni       DepartmentStatus `json:"alumni"`
}

// NewDepartmentalClearance returns a clearance record with every office
// still pending.
func NewDepartmentalClearance() DepartmentalClearance {
	return DepartmentalClearance{
		Academic:     DeptPending,
		Registrar:    DeptPending,
		Examinations: DeptPending,
		Finance:      DeptPending,
		Alumni:       DeptPending,
	}
}

// Get returns the review state for the named department.
func (c DepartmentalClearance) Get(dept Department) DepartmentStatus {
	switch dept {
	case DeptAcademic:
		return c.Academic
	case DeptRegistrar:
		return c.Registrar
	case DeptExaminations:
		return c.Examinations
	case DeptFinance:
		return c.Finance
	case DeptAlumni:
		return c.Alumni
	}
	return ""
}

// Set assigns the review state for the named department.
func (c *DepartmentalClearance) Set(dept Department, status DepartmentStatus) {
	switch dept {
	case DeptAcademic:
		c.Academic = status
	case DeptRegistrar:
		c.Registrar = status
	case DeptExaminations:
		c.Examinations = status
	case DeptFinance:
		c.Finance = status
	case DeptAlumni:
		c.Alumni = status
	}
}

// ApprovedCount returns how many of the five offices have approved.
func (c DepartmentalClearance) ApprovedCount() int {
	count := 0
	for _, dept := range Departments {
		if c.Get(dept) == DeptApproved {
			count++
		}
	}
	return count
}

// Status derives the aggregate clearance state: cleared only when every
// office approved, rejected as soon as any office rejected, otherwise still
// in progress.
func (c DepartmentalClearance) Status() ClearanceStatus {
	approved := 0
	for _, dept := range Departments {
		switch c.Get(dept) {
		case DeptRejected:
			return ClearanceRejected
		case DeptApproved:
			approved++
		}
	}
	if approved == len(Departments) {
		return ClearanceCleared
	}
	return ClearanceInProgress
}

// Progress returns the rounded percentage of approved offices.
func (c DepartmentalClearance) Progress() int {
	return Percent(c.ApprovedCount(), len(Departments))
}

// StudentDocuments flags the paperwork a student has submitted. The
// submission workflow itself is external; these flags arrive with the seed
// or through the document endpoints.
type StudentDocuments struct {
	Transcript    bool `json:"transcript"`
	IDCard        bool `json:"id_card"`
	ClearanceForm bool `json:"clearance_form"`
	FeeReceipt    bool `json:"fee_receipt"`
}

// Student represents one graduation applicant.
type Student struct {
	ID             string                `json:"id"`
	StudentID      string                `json:"student_id"`
	Name           string                `json:"name"`
	Email          string                `json:"email"`
	Phone          string                `json:"phone"`
	Faculty        string                `json:"faculty"`
	Department     string                `json:"department"`
	Program        string                `json:"program"`
	GraduationYear int                   `json:"graduation_year"`
	PaymentStatus  PaymentStatus         `json:"payment_status"`
	Clearance      DepartmentalClearance `json:"departmental_clearance"`
	Documents      StudentDocuments      `json:"documents"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// ClearanceStatus derives the aggregate status from the department flags.
func (s Student) ClearanceStatus() ClearanceStatus {
	return s.Clearance.Status()
}

// Eligible reports whether the student may appear on the graduation list:
// cleared in every department and fees paid. Recomputed on every read,
// never cached.
func (s Student) Eligible() bool {
	return s.ClearanceStatus() == ClearanceCleared && s.PaymentStatus == PaymentPaid
}

// StudentFilter encapsulates allowed search parameters for listing students.
// Search matches case-insensitively against name, student ID and email.
type StudentFilter struct {
	Search         string
	Faculty        string
	Program        string
	GraduationYear int
	Clearance      ClearanceStatus
	Payment        PaymentStatus
	Page           int
	PageSize       int
}
