package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gradpoint/gms-api/internal/models"
	"github.com/gradpoint/gms-api/internal/store"
	"github.com/gradpoint/gms-api/pkg/jobs"
)

// stoppedDispatcher refuses every job, which makes TaskService fall back
// to inline execution. Tests built on it see tasks complete synchronously.
type stoppedDispatcher struct{}

func (stoppedDispatcher) Enqueue(jobs.Job) error {
	return errors.New("queue not running")
}

// holdingDispatcher accepts jobs without running them, so a submitted task
// stays in flight until the test drains it through Execute.
type holdingDispatcher struct {
	mu   sync.Mutex
	jobs []jobs.Job
}

func (d *holdingDispatcher) Enqueue(job jobs.Job) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.jobs = append(d.jobs, job)
	return nil
}

func (d *holdingDispatcher) drain() []jobs.Job {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := d.jobs
	d.jobs = nil
	return out
}

// newInlineTasks builds a task service whose tasks complete before Submit
// returns.
func newInlineTasks() *TaskService {
	return NewTaskService(store.NewTaskStore(), stoppedDispatcher{}, 0, nil)
}

func testStudent(n int, mutate func(*models.Student)) models.Student {
	st := models.Student{
		ID:             fmt.Sprintf("id-%03d", n),
		StudentID:      fmt.Sprintf("GRD2026%03d", n),
		Name:           fmt.Sprintf("Student %03d", n),
		Email:          fmt.Sprintf("student%03d@university.ac", n),
		Faculty:        "Faculty of Computing",
		Department:     "Computer Science",
		Program:        "BSc Computer Science",
		GraduationYear: 2026,
		PaymentStatus:  models.PaymentPending,
		Clearance:      models.NewDepartmentalClearance(),
	}
	if mutate != nil {
		mutate(&st)
	}
	return st
}

func clearedStudent(n int) models.Student {
	return testStudent(n, func(st *models.Student) {
		for _, dept := range models.Departments {
			st.Clearance.Set(dept, models.DeptApproved)
		}
		st.PaymentStatus = models.PaymentPaid
	})
}

func seededStudents(students ...models.Student) *store.StudentStore {
	s := store.NewStudentStore()
	s.Seed(students)
	return s
}
