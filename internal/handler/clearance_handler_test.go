package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradpoint/gms-api/internal/models"
	"github.com/gradpoint/gms-api/internal/service"
	"github.com/gradpoint/gms-api/internal/store"
)

func newClearanceHandlerFixture(students ...models.Student) *ClearanceHandler {
	studentStore := store.NewStudentStore()
	studentStore.Seed(students)
	return NewClearanceHandler(service.NewClearanceService(studentStore, nil))
}

func pendingStudent(id, code, name string) models.Student {
	return models.Student{
		ID:        id,
		StudentID: code,
		Name:      name,
		Clearance: models.NewDepartmentalClearance(),
	}
}

func TestClearanceHandlerApprove(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newClearanceHandlerFixture(pendingStudent("id-001", "GRD2026001", "John Banda"))

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/clearance/id-001/registrar/approve", nil)
	c.Params = gin.Params{
		{Key: "studentId", Value: "id-001"},
		{Key: "department", Value: "registrar"},
	}

	handler.Approve(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data models.Student `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, models.DeptApproved, envelope.Data.Clearance.Registrar)
}

func TestClearanceHandlerApproveUnknownDepartment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newClearanceHandlerFixture(pendingStudent("id-001", "GRD2026001", "John Banda"))

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/clearance/id-001/library/approve", nil)
	c.Params = gin.Params{
		{Key: "studentId", Value: "id-001"},
		{Key: "department", Value: "library"},
	}

	handler.Approve(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestClearanceHandlerBulkApprove(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newClearanceHandlerFixture(
		pendingStudent("id-001", "GRD2026001", "John Banda"),
		pendingStudent("id-002", "GRD2026002", "Mary Phiri"),
	)

	payload, _ := json.Marshal(BulkApprovePayload{
		IDs:        []string{"id-001", "id-002"},
		Department: "academic",
		Search:     "john",
	})
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/clearance/bulk-approve", bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.BulkApprove(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope struct {
		Data service.BulkApproveResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 1, envelope.Data.Approved)
	assert.Equal(t, []string{"id-002"}, envelope.Data.Skipped)
}

func TestClearanceHandlerBulkApproveEmptySelection(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := newClearanceHandlerFixture()

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/clearance/bulk-approve", bytes.NewReader([]byte(`{"ids":[]}`)))
	c.Request.Header.Set("Content-Type", "application/json")

	handler.BulkApprove(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
