package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/projectpulse/dashboard-services/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testUsers = []models.User{
	{ID: "1", Username: "admin", Password: "admin123", Role: models.RoleSuperAdmin, Name: "Admin", Department: "IT"},
	{ID: "2", Username: "alice", Password: "secret", Role: models.RoleTeamMember, Name: "Alice", Department: "Backend"},
}

func TestLoginService(t *testing.T) {

	mockDB := new(MockStore)
	mockDB.On("ListUsers", mock.Anything).Return(testUsers, nil)

	svc := &Service{DB: mockDB}

	body, _ := json.Marshal(models.LoginRequest{Username: "alice", Password: "secret"})
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	LoginService(svc, w, r)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var resp models.Response
	raw, _ := io.ReadAll(res.Body)
	assert.NoError(t, json.Unmarshal(raw, &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, models.RoleTeamMember, resp.User.Role)

	// The password never appears in the response body.
	assert.NotContains(t, string(raw), "secret")

	mockDB.AssertExpectations(t)
}

func TestLoginServiceBadCredentials(t *testing.T) {

	mockDB := new(MockStore)
	mockDB.On("ListUsers", mock.Anything).Return(testUsers, nil)

	svc := &Service{DB: mockDB}

	cases := []models.LoginRequest{
		{Username: "alice", Password: "wrong"},
		{Username: "ALICE", Password: "secret"}, // username is case-sensitive
		{Username: "nobody", Password: "secret"},
	}

	for _, creds := range cases {
		body, _ := json.Marshal(creds)
		r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
		w := httptest.NewRecorder()

		LoginService(svc, w, r)

		res := w.Result()
		res.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	}
}

func TestLoginServiceStorageFailure(t *testing.T) {

	mockDB := new(MockStore)
	mockDB.On("ListUsers", mock.Anything).Return([]models.User(nil), errors.New("disk gone"))

	svc := &Service{DB: mockDB}

	body, _ := json.Marshal(models.LoginRequest{Username: "alice", Password: "secret"})
	r := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()

	LoginService(svc, w, r)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode)

	var resp models.Response
	assert.NoError(t, json.NewDecoder(res.Body).Decode(&resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Login failed", resp.Message)
}

func TestListUsersServiceStripsPasswords(t *testing.T) {

	mockDB := new(MockStore)
	mockDB.On("ListUsers", mock.Anything).Return(testUsers, nil)

	svc := &Service{DB: mockDB}

	r := httptest.NewRequest(http.MethodGet, "/api/auth/users", nil)
	w := httptest.NewRecorder()

	ListUsersService(svc, w, r)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	raw, _ := io.ReadAll(res.Body)
	var users []models.User
	assert.NoError(t, json.Unmarshal(raw, &users))
	assert.Len(t, users, 2)
	assert.NotContains(t, string(raw), "admin123")
	assert.NotContains(t, string(raw), "secret")
}

func TestListUsersServiceEmpty(t *testing.T) {

	mockDB := new(MockStore)
	mockDB.On("ListUsers", mock.Anything).Return([]models.User{}, nil)

	svc := &Service{DB: mockDB}

	r := httptest.NewRequest(http.MethodGet, "/api/auth/users", nil)
	w := httptest.NewRecorder()

	ListUsersService(svc, w, r)

	res := w.Result()
	defer res.Body.Close()

	raw, _ := io.ReadAll(res.Body)
	assert.JSONEq(t, "[]", string(raw), "empty collection serializes as an array, not null")
}
