package services

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/projectpulse/dashboard-services/db"
	"github.com/projectpulse/dashboard-services/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetProjectsServiceEmpty(t *testing.T) {

	mockDB := new(MockStore)
	mockDB.On("ListProjects", mock.Anything).Return([]models.Project(nil), nil)

	svc := &Service{DB: mockDB}

	r := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	w := httptest.NewRecorder()

	GetProjectsService(svc, w, r)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	raw, _ := io.ReadAll(res.Body)
	assert.JSONEq(t, "[]", string(raw))
}

func TestCreateProjectService(t *testing.T) {

	payload := models.Project{
		Name:        "Portal",
		Type:        models.ProjectTypeMain,
		Priority:    models.PriorityHigh,
		Status:      models.StatusOngoing,
		TeamMembers: []string{"u1"},
	}
	stored := payload
	stored.ID = "1700000000005"

	mockDB := new(MockStore)
	mockDB.On("CreateProject", mock.Anything, payload).Return(stored, nil)

	svc := &Service{DB: mockDB}

	body, _ := json.Marshal(payload)
	r := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(body))
	w := httptest.NewRecorder()

	CreateProjectService(svc, w, r)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	var got models.Project
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, "1700000000005", got.ID)
	assert.Equal(t, "Portal", got.Name)

	mockDB.AssertExpectations(t)
}

func TestUpdateProjectService(t *testing.T) {

	merged := models.Project{ID: "p1", Name: "Portal", Status: models.StatusLive}

	mockDB := new(MockStore)
	mockDB.On("UpdateProject", mock.Anything, "p1",
		map[string]interface{}{"status": "LIVE"}).Return(merged, nil)

	svc := &Service{DB: mockDB}

	r := httptest.NewRequest(http.MethodPut, "/api/projects/p1", bytes.NewReader([]byte(`{"status":"LIVE"}`)))
	r = mux.SetURLVars(r, map[string]string{"project-id": "p1"})
	w := httptest.NewRecorder()

	UpdateProjectService(svc, w, r)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var got models.Project
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, models.StatusLive, got.Status)

	mockDB.AssertExpectations(t)
}

func TestUpdateProjectServiceNotFound(t *testing.T) {

	mockDB := new(MockStore)
	mockDB.On("UpdateProject", mock.Anything, "missing", mock.Anything).
		Return(models.Project{}, db.ErrNotFound)

	svc := &Service{DB: mockDB}

	r := httptest.NewRequest(http.MethodPut, "/api/projects/missing", bytes.NewReader([]byte(`{"status":"LIVE"}`)))
	r = mux.SetURLVars(r, map[string]string{"project-id": "missing"})
	w := httptest.NewRecorder()

	UpdateProjectService(svc, w, r)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var resp models.ErrorResponse
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	assert.Equal(t, "Project not found", resp.Error)
}

func TestDeleteProjectService(t *testing.T) {

	mockDB := new(MockStore)
	mockDB.On("DeleteProject", mock.Anything, "p1").Return(nil)

	svc := &Service{DB: mockDB}

	r := httptest.NewRequest(http.MethodDelete, "/api/projects/p1", nil)
	r = mux.SetURLVars(r, map[string]string{"project-id": "p1"})
	w := httptest.NewRecorder()

	DeleteProjectService(svc, w, r)

	res := w.Result()
	res.Body.Close()
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	mockDB.AssertExpectations(t)
}

func TestDeleteProjectServiceNotFound(t *testing.T) {

	mockDB := new(MockStore)
	mockDB.On("DeleteProject", mock.Anything, "missing").Return(db.ErrNotFound)

	svc := &Service{DB: mockDB}

	r := httptest.NewRequest(http.MethodDelete, "/api/projects/missing", nil)
	r = mux.SetURLVars(r, map[string]string{"project-id": "missing"})
	w := httptest.NewRecorder()

	DeleteProjectService(svc, w, r)

	res := w.Result()
	res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestUpdateMemberService(t *testing.T) {

	merged := models.Member{"id": "m1", "name": "Dana", "department": "Platform"}

	mockDB := new(MockStore)
	mockDB.On("UpdateMember", mock.Anything, "m1",
		map[string]interface{}{"department": "Platform"}).Return(merged, nil)

	svc := &Service{DB: mockDB}

	r := httptest.NewRequest(http.MethodPut, "/api/members/m1", bytes.NewReader([]byte(`{"department":"Platform"}`)))
	r = mux.SetURLVars(r, map[string]string{"member-id": "m1"})
	w := httptest.NewRecorder()

	UpdateMemberService(svc, w, r)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var got models.Member
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&got))
	assert.Equal(t, "Platform", got.Field("department"))

	mockDB.AssertExpectations(t)
}

func TestDeleteMemberServiceNotFound(t *testing.T) {

	mockDB := new(MockStore)
	mockDB.On("DeleteMember", mock.Anything, "missing").Return(db.ErrNotFound)

	svc := &Service{DB: mockDB}

	r := httptest.NewRequest(http.MethodDelete, "/api/members/missing", nil)
	r = mux.SetURLVars(r, map[string]string{"member-id": "missing"})
	w := httptest.NewRecorder()

	DeleteMemberService(svc, w, r)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var resp models.ErrorResponse
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	assert.Equal(t, "Member not found", resp.Error)
}
