package controller_test

import (
	"bytes"
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
	teachermodel "skillup_backend/internals/features/teachers/model"
	"skillup_backend/internals/features/users/users/model"
	userRoute "skillup_backend/internals/features/users/users/route"
)

func passGuard(c *fiber.Ctx) error { return c.Next() }

func setup(t *testing.T) (*fiber.App, *inmem.DB) {
	t.Helper()
	db := inmem.Open()

	app := fiber.New()
	userRoute.UserRoutes(app, inmem.NewUserStore(db), passGuard)
	return app, db
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

func TestCreateUser_DefaultsToStudentRole(t *testing.T) {
	app, db := setup(t)

	resp := doJSON(t, app, http.MethodPost, "/users", map[string]any{
		"name":     "Budi Santoso",
		"username": "budi",
		"email":    "budi@skillup.io",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	require.Len(t, db.Users, 1)
	assert.Equal(t, constants.RoleStudent, db.Users[0].Role)
	assert.False(t, db.Users[0].CreatedAt.IsZero())
}

func TestCreateUser_ValidationError(t *testing.T) {
	app, db := setup(t)

	resp := doJSON(t, app, http.MethodPost, "/users", map[string]any{
		"name":     "B",
		"username": "budi",
		"email":    "not-an-email",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Empty(t, db.Users)
}

func TestGetUserByEmail_UnknownUserIsNotAnError(t *testing.T) {
	app, _ := setup(t)

	resp := doJSON(t, app, http.MethodGet, "/users/ghost@skillup.io", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "null", string(envelope.Data))
}

func TestGetUserByEmail_Known(t *testing.T) {
	app, db := setup(t)
	db.Users = append(db.Users, model.UserModel{ID: primitive.NewObjectID(), Email: "budi@skillup.io", Role: constants.RoleStudent})

	resp := doJSON(t, app, http.MethodGet, "/users/budi@skillup.io", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data model.UserModel `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, constants.RoleStudent, envelope.Data.Role)
}

func TestListUsers_SearchTerm(t *testing.T) {
	app, db := setup(t)
	db.Users = append(db.Users,
		model.UserModel{Username: "budi", Email: "budi@skillup.io"},
		model.UserModel{Username: "siti", Email: "siti@skillup.io"},
	)

	var envelope struct {
		Data []model.UserModel `json:"data"`
	}

	resp := doJSON(t, app, http.MethodGet, "/users?searchTerm=bud", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "budi", envelope.Data[0].Username)
}

func TestGetProfile(t *testing.T) {
	app, db := setup(t)
	db.Users = append(db.Users, model.UserModel{Email: "budi@skillup.io"})

	resp := doJSON(t, app, http.MethodGet, "/profile", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/profile?email=ghost@skillup.io", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/profile?email=budi@skillup.io", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUpdateUser_RoleCascadesTeacherStatus(t *testing.T) {
	app, db := setup(t)
	db.Users = append(db.Users, model.UserModel{Email: "siti@skillup.io", Role: constants.RoleStudent})
	db.Teachers = append(db.Teachers, teachermodel.TeacherModel{Email: "siti@skillup.io", Status: constants.StatusPending})

	resp := doJSON(t, app, http.MethodPut, "/users/update/siti@skillup.io", map[string]any{"role": "teacher"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, constants.RoleTeacher, db.Users[0].Role)
	assert.Equal(t, constants.StatusApprove, db.Teachers[0].Status)

	// turunkan lagi ke student: status pengajuan balik pending
	resp = doJSON(t, app, http.MethodPut, "/users/update/siti@skillup.io", map[string]any{"role": "student"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, constants.RoleStudent, db.Users[0].Role)
	assert.Equal(t, constants.StatusPending, db.Teachers[0].Status)
}

func TestUpdateUser_UpsertsMissingUser(t *testing.T) {
	app, db := setup(t)

	resp := doJSON(t, app, http.MethodPut, "/users/update/baru@skillup.io", map[string]any{"name": "Baru"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, db.Users, 1)
	assert.Equal(t, "baru@skillup.io", db.Users[0].Email)
	assert.Equal(t, "Baru", db.Users[0].Name)
}

func TestUpdateUser_IgnoresUnlistedFields(t *testing.T) {
	app, db := setup(t)
	db.Users = append(db.Users, model.UserModel{Email: "budi@skillup.io", Role: constants.RoleStudent})

	// email dan role admin-only tidak bisa diubah lewat body bebas
	resp := doJSON(t, app, http.MethodPut, "/users/update/budi@skillup.io", map[string]any{
		"email": "lain@skillup.io",
		"name":  "Budi",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "budi@skillup.io", db.Users[0].Email)
	assert.Equal(t, "Budi", db.Users[0].Name)
}
