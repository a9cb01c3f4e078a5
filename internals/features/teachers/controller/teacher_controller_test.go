package controller_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"skillup_backend/internals/constants"
	"skillup_backend/internals/databases/inmem"
	"skillup_backend/internals/features/teachers/dto"
	"skillup_backend/internals/features/teachers/model"
	teacherRoute "skillup_backend/internals/features/teachers/route"
	usermodel "skillup_backend/internals/features/users/users/model"
)

func passGuard(c *fiber.Ctx) error { return c.Next() }

func setup(t *testing.T) (*fiber.App, *inmem.DB) {
	t.Helper()
	db := inmem.Open()

	app := fiber.New()
	teacherRoute.TeacherRoutes(app, inmem.NewTeacherStore(db), passGuard)
	return app, db
}

func seedRequest(t *testing.T, db *inmem.DB, email, status string) primitive.ObjectID {
	t.Helper()
	teacher := model.TeacherModel{Name: "Siti", Email: email, Status: status}
	id, err := inmem.NewTeacherStore(db).Create(context.Background(), &teacher)
	require.NoError(t, err)
	return id
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCreateTeacher_DefaultsToPending(t *testing.T) {
	app, db := setup(t)

	resp := doJSON(t, app, http.MethodPost, "/teachers", map[string]any{
		"name":  "Siti",
		"email": "siti@skillup.io",
		"title": "Go Mentor",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.Len(t, db.Teachers, 1)
	assert.Equal(t, constants.StatusPending, db.Teachers[0].Status)
}

func TestCreateTeacher_ValidationError(t *testing.T) {
	app, db := setup(t)

	resp := doJSON(t, app, http.MethodPost, "/teachers", map[string]any{"name": "Siti"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Empty(t, db.Teachers)
}

func TestReviewTeacher_ApproveCascadesUserRole(t *testing.T) {
	app, db := setup(t)
	db.Users = append(db.Users, usermodel.UserModel{Email: "siti@skillup.io", Role: constants.RoleStudent})
	id := seedRequest(t, db, "siti@skillup.io", constants.StatusPending)

	resp := doJSON(t, app, http.MethodPut, "/teachers/update-status/"+id.Hex(), map[string]any{"status": "approve"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, constants.StatusApprove, db.Teachers[0].Status)
	assert.Equal(t, constants.RoleTeacher, db.Users[0].Role)

	// review ulang dengan status sama = idempotent
	resp = doJSON(t, app, http.MethodPut, "/teachers/update-status/"+id.Hex(), map[string]any{"status": "approve"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, constants.StatusApprove, db.Teachers[0].Status)
	assert.Equal(t, constants.RoleTeacher, db.Users[0].Role)
}

func TestReviewTeacher_RejectDemotesUserRole(t *testing.T) {
	app, db := setup(t)
	db.Users = append(db.Users, usermodel.UserModel{Email: "siti@skillup.io", Role: constants.RoleTeacher})
	id := seedRequest(t, db, "siti@skillup.io", constants.StatusPending)

	resp := doJSON(t, app, http.MethodPut, "/teachers/update-status/"+id.Hex(), map[string]any{"status": "reject"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, constants.StatusReject, db.Teachers[0].Status)
	assert.Equal(t, constants.RoleStudent, db.Users[0].Role)
}

func TestReviewTeacher_UnknownID(t *testing.T) {
	app, _ := setup(t)
	resp := doJSON(t, app, http.MethodPut, "/teachers/update-status/"+primitive.NewObjectID().Hex(), map[string]any{"status": "approve"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestReviewTeacher_InvalidStatus(t *testing.T) {
	app, db := setup(t)
	id := seedRequest(t, db, "siti@skillup.io", constants.StatusPending)

	resp := doJSON(t, app, http.MethodPut, "/teachers/update-status/"+id.Hex(), map[string]any{"status": "banana"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, constants.StatusPending, db.Teachers[0].Status)
}

func TestGetTeacherStatusLists_Partitioned(t *testing.T) {
	app, db := setup(t)
	seedRequest(t, db, "siti@skillup.io", constants.StatusPending)
	seedRequest(t, db, "siti@skillup.io", constants.StatusApprove)
	seedRequest(t, db, "siti@skillup.io", constants.StatusReject)
	seedRequest(t, db, "lain@skillup.io", constants.StatusPending)

	resp := doJSON(t, app, http.MethodGet, "/teachers?email=siti@skillup.io", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data dto.TeacherStatusListsDTO `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))

	assert.Len(t, envelope.Data.Pending, 1)
	assert.Len(t, envelope.Data.Approve, 1)
	assert.Len(t, envelope.Data.Rejected, 1)
}

func TestResetStatus(t *testing.T) {
	app, db := setup(t)
	seedRequest(t, db, "siti@skillup.io", constants.StatusReject)

	resp := doJSON(t, app, http.MethodPatch, "/teachers/update-status/siti@skillup.io", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, constants.StatusPending, db.Teachers[0].Status)

	// sudah pending: modified 0, tetap 200
	resp = doJSON(t, app, http.MethodPatch, "/teachers/update-status/siti@skillup.io", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestGetTeacherRequests(t *testing.T) {
	app, db := setup(t)
	seedRequest(t, db, "a@skillup.io", constants.StatusPending)
	seedRequest(t, db, "b@skillup.io", constants.StatusApprove)

	resp := doJSON(t, app, http.MethodGet, "/teachers/requests", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data []model.TeacherModel `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Len(t, envelope.Data, 2)
}
