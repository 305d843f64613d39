package models

// Level is the award tier a program belongs to.
type Level string

const (
	LevelBachelor    Level = "Bachelor"
	LevelDiploma     Level = "Diploma"
	LevelCertificate Level = "Certificate"
)

// ProgramClass maps a program to its school and award level. The mapping is
// static reference data supplied at startup, not derived from student fields.
type ProgramClass struct {
	School string
	Level  Level
}

// Classification is the program → school/level lookup used to build the
// graduation hierarchy.
type Classification map[string]ProgramClass

// UnassignedSchool is where programs missing from the classification land,
// so an incomplete lookup degrades to a visible bucket instead of dropping
// eligible students.
const UnassignedSchool = "Unassigned"

// Lookup resolves a program, falling back to the unassigned bucket.
func (c Classification) Lookup(program string) ProgramClass {
	if pc, ok := c[program]; ok {
		return pc
	}
	return ProgramClass{School: UnassignedSchool, Level: LevelBachelor}
}

// HierarchyProgram is a leaf of the graduation hierarchy: one program and
// its eligible students in stable input order.
type HierarchyProgram struct {
	Program  string    `json:"program"`
	Students []Student `json:"students"`
}

// HierarchyLevel groups programs under one award level.
type HierarchyLevel struct {
	Level    Level              `json:"level"`
	Programs []HierarchyProgram `json:"programs"`
}

// HierarchySchool groups levels under one school.
type HierarchySchool struct {
	School string           `json:"school"`
	Levels []HierarchyLevel `json:"levels"`
}

// GraduationHierarchy is the 3-level presentation tree School → Level →
// Program → students. Empty branches are pruned during construction.
type GraduationHierarchy struct {
	Schools []HierarchySchool `json:"schools"`
	Total   int               `json:"total"`
}
