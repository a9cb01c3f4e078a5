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

	"skillup_backend/internals/constants"
	"skillup_backend/internals/databases/inmem"
	"skillup_backend/internals/features/classes/model"
	"skillup_backend/internals/features/classes/repository"
	classRoute "skillup_backend/internals/features/classes/route"
)

func passGuard(c *fiber.Ctx) error { return c.Next() }

func setup(t *testing.T) (*fiber.App, *inmem.DB, repository.ClassStore) {
	t.Helper()
	db := inmem.Open()
	store := inmem.NewClassStore(db)

	app := fiber.New()
	classRoute.ClassRoutes(app, store, passGuard)
	return app, db, store
}

func createClass(t *testing.T, store repository.ClassStore, title, email string, enroll int64, status string) model.ClassModel {
	t.Helper()
	cl := model.ClassModel{
		Title:       title,
		Description: "desc",
		Name:        "Teacher",
		Email:       email,
		Price:       49.99,
		Enroll:      enroll,
		Status:      status,
	}
	id, err := store.Create(context.Background(), &cl)
	require.NoError(t, err)
	cl.ID = id
	return cl
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestDeleteClass_RemovesExactlyOne(t *testing.T) {
	app, db, store := setup(t)
	a := createClass(t, store, "Go Basics", "t1@skillup.io", 0, constants.StatusApprove)
	b := createClass(t, store, "Advanced Go", "t1@skillup.io", 0, constants.StatusApprove)

	resp := doJSON(t, app, http.MethodDelete, "/classes/"+a.ID.Hex(), nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, db.Classes, 1)
	assert.Equal(t, b.ID, db.Classes[0].ID)

	// fetch setelah delete harus 404
	resp = doJSON(t, app, http.MethodGet, "/classes/single/"+a.ID.Hex(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteClass_InvalidID(t *testing.T) {
	app, _, _ := setup(t)

	resp := doJSON(t, app, http.MethodDelete, "/classes/not-an-object-id", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteClass_UnknownID(t *testing.T) {
	app, _, store := setup(t)
	createClass(t, store, "Go Basics", "t1@skillup.io", 0, constants.StatusApprove)

	resp := doJSON(t, app, http.MethodDelete, "/classes/65b2f0e4c1a4d2a9e8b00000", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAddAssignment(t *testing.T) {
	app, db, store := setup(t)
	cl := createClass(t, store, "Go Basics", "t1@skillup.io", 0, constants.StatusApprove)

	body := map[string]any{"title": "Week 1", "description": "write a CLI"}
	resp := doJSON(t, app, http.MethodPost, "/classes/add-assignment/"+cl.ID.Hex(), body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, db.Classes[0].Assignments, 1)
	assert.Equal(t, "Week 1", db.Classes[0].Assignments[0].Title)
}

func TestAddAssignment_UnknownClass(t *testing.T) {
	app, _, _ := setup(t)

	body := map[string]any{"title": "Week 1"}
	resp := doJSON(t, app, http.MethodPost, "/classes/add-assignment/65b2f0e4c1a4d2a9e8b00000", body)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUpdateClass_AllowListedFieldsOnly(t *testing.T) {
	app, db, store := setup(t)
	cl := createClass(t, store, "Go Basics", "t1@skillup.io", 7, constants.StatusApprove)

	// enroll & status tidak ada di allow-list → tidak boleh berubah
	body := map[string]any{"classTitle": "Go Basics v2", "enroll": 999, "status": "reject"}
	resp := doJSON(t, app, http.MethodPatch, "/classes/update/"+cl.ID.Hex(), body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "Go Basics v2", db.Classes[0].Title)
	assert.Equal(t, int64(7), db.Classes[0].Enroll)
	assert.Equal(t, constants.StatusApprove, db.Classes[0].Status)
}

func TestUpdateClassStatus(t *testing.T) {
	app, db, store := setup(t)
	cl := createClass(t, store, "Go Basics", "t1@skillup.io", 0, constants.StatusPending)

	resp := doJSON(t, app, http.MethodPatch, "/classes/update-status/"+cl.ID.Hex(), map[string]any{"status": "approve"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, constants.StatusApprove, db.Classes[0].Status)
}

func TestListClasses_Search(t *testing.T) {
	app, _, store := setup(t)
	createClass(t, store, "Go Basics", "t1@skillup.io", 0, constants.StatusApprove)
	createClass(t, store, "Rust Basics", "t2@skillup.io", 0, constants.StatusApprove)

	resp := doJSON(t, app, http.MethodGet, "/classes?search=go", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data []model.ClassModel `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "Go Basics", envelope.Data[0].Title)
}
