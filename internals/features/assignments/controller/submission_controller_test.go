package controller_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillup_backend/internals/databases/inmem"
	"skillup_backend/internals/features/assignments/model"
	submissionRoute "skillup_backend/internals/features/assignments/route"
)

func passGuard(c *fiber.Ctx) error { return c.Next() }

func setup(t *testing.T) (*fiber.App, *inmem.DB) {
	t.Helper()
	db := inmem.Open()

	app := fiber.New()
	submissionRoute.SubmissionRoutes(app, inmem.NewSubmissionStore(db), passGuard)
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

func submitBody(classID string) map[string]any {
	return map[string]any{
		"email":            "budi@skillup.io",
		"classId":          classID,
		"assignment_title": "Day 1 - Hello World",
		"submission":       "https://github.com/budi/day1",
	}
}

func TestSubmitAssignment_NoDedup(t *testing.T) {
	app, db := setup(t)

	resp := doJSON(t, app, http.MethodPost, "/submit-assignment", submitBody("class-1"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp = doJSON(t, app, http.MethodPost, "/submit-assignment", submitBody("class-1"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// submit dua kali = dua dokumen
	require.Len(t, db.Submissions, 2)
	assert.False(t, db.Submissions[0].ID.IsZero())
	assert.NotEqual(t, db.Submissions[0].ID, db.Submissions[1].ID)
}

func TestSubmitAssignment_ValidationError(t *testing.T) {
	app, db := setup(t)

	resp := doJSON(t, app, http.MethodPost, "/submit-assignment", map[string]any{
		"email":   "budi@skillup.io",
		"classId": "class-1",
		// submission kosong
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Empty(t, db.Submissions)
}

func TestCheckAssignment_FiltersByEmailAndClass(t *testing.T) {
	app, _ := setup(t)
	doJSON(t, app, http.MethodPost, "/submit-assignment", submitBody("class-1"))
	doJSON(t, app, http.MethodPost, "/submit-assignment", submitBody("class-1"))
	doJSON(t, app, http.MethodPost, "/submit-assignment", submitBody("class-2"))

	resp := doJSON(t, app, http.MethodGet, "/check-assignment?email=budi@skillup.io&classId=class-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data []model.AssignmentSubmitModel `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Len(t, envelope.Data, 2)

	resp = doJSON(t, app, http.MethodGet, "/check-assignment?email=lain@skillup.io&classId=class-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	envelope.Data = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Empty(t, envelope.Data)
}

func TestCountTodaySubmissions(t *testing.T) {
	app, db := setup(t)
	doJSON(t, app, http.MethodPost, "/submit-assignment", submitBody("class-1"))
	doJSON(t, app, http.MethodPost, "/submit-assignment", submitBody("class-1"))

	// submission kemarin tidak ikut dihitung
	yesterday := time.Now().UTC().AddDate(0, 0, -1).Format(time.RFC3339)
	db.Submissions = append(db.Submissions, model.AssignmentSubmitModel{
		Email:   "budi@skillup.io",
		ClassID: "class-1",
		Date:    yesterday,
	})

	resp := doJSON(t, app, http.MethodGet, "/submitted-assignments/class-1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Data int64 `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, int64(2), envelope.Data)
}
