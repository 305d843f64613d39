package service

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/gradpoint/gms-api/internal/models"
)

type graduationStudentStore interface {
	Filter(pred func(models.Student) bool) []models.Student
}

// GraduationService derives the eligible set and the presentation
// hierarchy. Both are pure reads over the student store; callers that need
// stability across a multi-step flow snapshot the result instead of
// re-querying mid-flow, because clearance state can move underneath them.
type GraduationService struct {
	students       graduationStudentStore
	classification models.Classification
	logger         *zap.Logger
}

// NewGraduationService constructs the graduation service.
func NewGraduationService(students graduationStudentStore, classification models.Classification, logger *zap.Logger) *GraduationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GraduationService{students: students, classification: classification, logger: logger}
}

// EligibleStudents returns every student cleared in all departments with
// fees paid, in store order. Recomputed on every call, never cached.
func (s *GraduationService) EligibleStudents(ctx context.Context) []models.Student {
	return s.students.Filter(models.Student.Eligible)
}

// Snapshot pairs the eligible set with its hierarchy so a generate-list
// flow works off one consistent view.
func (s *GraduationService) Snapshot(ctx context.Context) ([]models.Student, models.GraduationHierarchy) {
	eligible := s.EligibleStudents(ctx)
	return eligible, s.BuildHierarchy(eligible)
}

// BuildHierarchy groups the given students into School → Level → Program.
// Empty branches are omitted; student order within a leaf follows the
// input. An empty input yields an empty tree, not an error.
func (s *GraduationService) BuildHierarchy(eligible []models.Student) models.GraduationHierarchy {
	type leafKey struct {
		school  string
		level   models.Level
		program string
	}

	leaves := make(map[leafKey][]models.Student)
	schoolOrder := []string{}
	schoolSeen := map[string]struct{}{}

	for _, st := range eligible {
		pc := s.classification.Lookup(st.Program)
		key := leafKey{school: pc.School, level: pc.Level, program: st.Program}
		leaves[key] = append(leaves[key], st)
		if _, ok := schoolSeen[pc.School]; !ok {
			schoolSeen[pc.School] = struct{}{}
			schoolOrder = append(schoolOrder, pc.School)
		}
	}
	sort.Strings(schoolOrder)

	hierarchy := models.GraduationHierarchy{Total: len(eligible)}
	levelOrder := []models.Level{models.LevelBachelor, models.LevelDiploma, models.LevelCertificate}

	for _, school := range schoolOrder {
		schoolNode := models.HierarchySchool{School: school}
		for _, level := range levelOrder {
			var programs []string
			for key := range leaves {
				if key.school == school && key.level == level {
					programs = append(programs, key.program)
				}
			}
			if len(programs) == 0 {
				continue
			}
			sort.Strings(programs)
			levelNode := models.HierarchyLevel{Level: level}
			for _, program := range programs {
				levelNode.Programs = append(levelNode.Programs, models.HierarchyProgram{
					Program:  program,
					Students: leaves[leafKey{school: school, level: level, program: program}],
				})
			}
			schoolNode.Levels = append(schoolNode.Levels, levelNode)
		}
		if len(schoolNode.Levels) > 0 {
			hierarchy.Schools = append(hierarchy.Schools, schoolNode)
		}
	}
	return hierarchy
}
