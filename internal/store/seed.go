package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gradpoint/gms-api/internal/models"
)

// DefaultClassification is the static program → school/level reference
// table the graduation hierarchy is built from.
func DefaultClassification() models.Classification {
	return models.Classification{
		"Computer Science":        {School: "School of Computing", Level: models.LevelBachelor},
		"Information Technology":  {School: "School of Computing", Level: models.LevelBachelor},
		"Software Engineering":    {School: "School of Computing", Level: models.LevelBachelor},
		"Networking Diploma":      {School: "School of Computing", Level: models.LevelDiploma},
		"Business Administration": {School: "School of Business", Level: models.LevelBachelor},
		"Accounting":              {School: "School of Business", Level: models.LevelBachelor},
		"Procurement Diploma":     {School: "School of Business", Level: models.LevelDiploma},
		"Marketing Certificate":   {School: "School of Business", Level: models.LevelCertificate},
		"Civil Engineering":       {School: "School of Engineering", Level: models.LevelBachelor},
		"Electrical Engineering":  {School: "School of Engineering", Level: models.LevelBachelor},
		"Nursing":                 {School: "School of Health Sciences", Level: models.LevelBachelor},
		"Public Health Diploma":   {School: "School of Health Sciences", Level: models.LevelDiploma},
	}
}

type seedProgram struct {
	faculty    string
	department string
	program    string
}

var seedPrograms = []seedProgram{
	{"Faculty of Science", "Computer Science", "Computer Science"},
	{"Faculty of Science", "Computer Science", "Information Technology"},
	{"Faculty of Science", "Computer Science", "Software Engineering"},
	{"Faculty of Science", "Computer Science", "Networking Diploma"},
	{"Faculty of Commerce", "Management", "Business Administration"},
	{"Faculty of Commerce", "Finance", "Accounting"},
	{"Faculty of Commerce", "Management", "Procurement Diploma"},
	{"Faculty of Commerce", "Marketing", "Marketing Certificate"},
	{"Faculty of Engineering", "Civil", "Civil Engineering"},
	{"Faculty of Engineering", "Electrical", "Electrical Engineering"},
	{"Faculty of Medicine", "Nursing", "Nursing"},
	{"Faculty of Medicine", "Community Health", "Public Health Diploma"},
}

var seedNames = []string{
	"Amina Yusuf", "Brian Okello", "Catherine Nambi", "David Ssemwanga",
	"Esther Achieng", "Frank Mugisha", "Grace Atim", "Henry Wasswa",
	"Irene Nakato", "James Odongo", "Kevin Otieno", "Lydia Namusoke",
	"Moses Kiprotich", "Nancy Auma", "Oscar Byaruhanga", "Patricia Adoch",
	"Quinn Masaba", "Rachel Nankya", "Samuel Lokwang", "Teddy Apio",
}

// SeedStudents produces a deterministic mock cohort. Clearance and payment
// state are varied so every screen has something to show out of the box.
func SeedStudents(count, graduationYear int) []models.Student {
	if count <= 0 {
		count = 50
	}
	if graduationYear <= 0 {
		graduationYear = time.Now().UTC().Year()
	}
	now := time.Now().UTC()

	students := make([]models.Student, 0, count)
	for i := 0; i < count; i++ {
		prog := seedPrograms[i%len(seedPrograms)]
		name := seedNames[i%len(seedNames)]
		code := fmt.Sprintf("GRD-%d-%04d", graduationYear, i+1)

		st := models.Student{
			ID:             uuid.NewString(),
			StudentID:      code,
			Name:           name,
			Email:          fmt.Sprintf("student%04d@university.ac", i+1),
			Phone:          fmt.Sprintf("+25670%07d", 1000000+i),
			Faculty:        prog.faculty,
			Department:     prog.department,
			Program:        prog.program,
			GraduationYear: graduationYear,
			PaymentStatus:  models.PaymentPending,
			Clearance:      models.NewDepartmentalClearance(),
			Documents:      models.StudentDocuments{},
			CreatedAt:      now,
			UpdatedAt:      now,
		}

		// Roughly a third fully cleared and paid, a third mid-review,
		// the rest untouched with a sprinkling of rejections.
		switch i % 3 {
		case 0:
			for _, dept := range models.Departments {
				st.Clearance.Set(dept, models.DeptApproved)
			}
			st.PaymentStatus = models.PaymentPaid
			st.Documents = models.StudentDocuments{Transcript: true, IDCard: true, ClearanceForm: true, FeeReceipt: true}
		case 1:
			st.Clearance.Academic = models.DeptApproved
			st.Clearance.Registrar = models.DeptApproved
			if i%7 == 1 {
				st.Clearance.Finance = models.DeptRejected
			}
			if i%2 == 0 {
				st.PaymentStatus = models.PaymentPaid
			}
			st.Documents.Transcript = true
		}
		if i%11 == 5 {
			st.PaymentStatus = models.PaymentWaived
		}

		students = append(students, st)
	}
	return students
}

// SeedUsers provisions the operator accounts, including the stock admin
// login the dashboard ships with.
func SeedUsers() []models.User {
	now := time.Now().UTC()
	mk := func(email, name, password string, role models.UserRole) models.User {
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		return models.User{
			ID:           uuid.NewString(),
			Email:        email,
			PasswordHash: string(hash),
			FullName:     name,
			Role:         role,
			Active:       true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
	}
	return []models.User{
		mk("admin@university.ac", "System Administrator", "admin123", models.RoleSuperAdmin),
		mk("registrar@university.ac", "Registrar Office", "registrar123", models.RoleAdmin),
		mk("finance@university.ac", "Finance Office", "finance123", models.RoleOfficer),
	}
}

// SeedAttendees builds ceremony entries for students already eligible at
// seed time.
func SeedAttendees(students []models.Student) []models.CeremonyAttendee {
	var attendees []models.CeremonyAttendee
	for i, st := range students {
		if !st.Eligible() {
			continue
		}
		attendees = append(attendees, models.CeremonyAttendee{
			StudentID:     st.ID,
			Name:          st.Name,
			Program:       st.Program,
			Confirmed:     i%2 == 0,
			GownCollected: i%4 == 0,
		})
	}
	return attendees
}
