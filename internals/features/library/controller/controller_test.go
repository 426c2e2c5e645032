package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	middlewares "perpustakaan_backend/internals/middlewares"
	routes "perpustakaan_backend/internals/route"
	"perpustakaan_backend/internals/testutil"
)

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.NewTestDB(t)

	app := fiber.New()
	middlewares.SetupMiddlewares(app, db)
	routes.SetupRoutes(app, db)
	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

func doJSONList(t *testing.T, app *fiber.App, path string) (*http.Response, []map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

func TestHealth(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

// Tanpa pool di locals (stack middleware tidak dipasang), health harus 503.
func TestHealthRequiresDatabase(t *testing.T) {
	db := testutil.NewTestDB(t)
	app := fiber.New()
	routes.SetupRoutes(app, db)

	resp, body := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "database tidak siap", body["error"])
}

func TestAuthorCRUD(t *testing.T) {
	app, _ := newTestApp(t)

	// create
	resp, created := doJSON(t, app, http.MethodPost, "/api/authors", map[string]any{
		"author_name": "Pramoedya Ananta Toer",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Pramoedya Ananta Toer", created["author_name"])
	id := int64(created["author_id"].(float64))
	require.NotZero(t, id)

	// get
	resp, got := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/authors/%d", id), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Pramoedya Ananta Toer", got["author_name"])

	// list
	resp, list := doJSONList(t, app, "/api/authors")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 1)

	// update
	resp, updated := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/authors/%d", id), map[string]any{
		"author_name": "Andrea Hirata",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Andrea Hirata", updated["author_name"])

	// update tanpa field = no-op, tetap 200 dengan data sekarang
	resp, noop := doJSON(t, app, http.MethodPut, fmt.Sprintf("/api/authors/%d", id), map[string]any{})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Andrea Hirata", noop["author_name"])

	// delete
	req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/authors/%d", id), nil)
	delResp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)

	// sesudah delete: 404
	resp, _ = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/authors/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// delete kedua kali: 404
	req = httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/authors/%d", id), nil)
	delResp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, delResp.StatusCode)
}

func TestAuthorValidation(t *testing.T) {
	app, _ := newTestApp(t)

	// nama kosong
	resp, body := doJSON(t, app, http.MethodPost, "/api/authors", map[string]any{
		"author_name": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["error"])

	// id bukan bilangan bulat positif
	resp, body = doJSON(t, app, http.MethodGet, "/api/authors/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["error"])

	resp, _ = doJSON(t, app, http.MethodGet, "/api/authors/0", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// id valid tapi tidak ada
	resp, _ = doJSON(t, app, http.MethodGet, "/api/authors/99", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBookDetailScenario(t *testing.T) {
	app, _ := newTestApp(t)

	resp, author := doJSON(t, app, http.MethodPost, "/api/authors", map[string]any{
		"author_name": "A. Orwell",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	authorID := author["author_id"].(float64)

	resp, book := doJSON(t, app, http.MethodPost, "/api/books", map[string]any{
		"title":      "1984",
		"isbn":       "978-0",
		"author_ids": []float64{authorID},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	bookID := book["book_id"].(float64)

	resp, detail := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/books/%d", int64(bookID)), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	authors, ok := detail["authors"].([]any)
	require.True(t, ok)
	require.Len(t, authors, 1)
	first := authors[0].(map[string]any)
	assert.Equal(t, authorID, first["author_id"])
	assert.Equal(t, "A. Orwell", first["author_name"])

	genres, ok := detail["genres"].([]any)
	require.True(t, ok)
	assert.Empty(t, genres)
}

func TestBookUnknownAuthorID(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/api/books", map[string]any{
		"title":      "Tanpa Penulis",
		"isbn":       "978-9",
		"author_ids": []int64{555},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "author_ids")
}

func TestBookListYearFilterValidation(t *testing.T) {
	app, _ := newTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/api/books?year=banyak", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.NotEmpty(t, body["error"])
}

func seedMemberAndCopies(t *testing.T, app *fiber.App, copies int) (float64, []float64) {
	t.Helper()

	resp, member := doJSON(t, app, http.MethodPost, "/api/members", map[string]any{
		"full_name":   "Budi Santoso",
		"city":        "Bandung",
		"post_code":   "40111",
		"join_date":   "2025-01-01T00:00:00Z",
		"expiry_date": "2026-01-01T00:00:00Z",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	memberID := member["member_id"].(float64)

	resp, book := doJSON(t, app, http.MethodPost, "/api/books", map[string]any{
		"title": "Laskar Pelangi",
		"isbn":  "978-10",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	bookID := book["book_id"].(float64)

	copyIDs := make([]float64, 0, copies)
	for i := 0; i < copies; i++ {
		resp, cp := doJSON(t, app, http.MethodPost, "/api/copies", map[string]any{
			"copy_identifier": fmt.Sprintf("LP-%03d", i+1),
			"book_id":         bookID,
			"status":          "AVAILABLE",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		copyIDs = append(copyIDs, cp["copy_id"].(float64))
	}
	return memberID, copyIDs
}

func TestTransactionBorrowLimit(t *testing.T) {
	app, _ := newTestApp(t)

	memberID, copyIDs := seedMemberAndCopies(t, app, 4)
	checkout := time.Date(2025, 8, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/transactions", map[string]any{
			"member_id":          memberID,
			"copy_id":            copyIDs[i],
			"checkout_timestamp": checkout.Format(time.RFC3339),
			"due_date":           checkout.AddDate(0, 0, 14).Format(time.RFC3339),
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	// pinjaman keempat: 409 dengan jumlah aktif di pesan
	resp, body := doJSON(t, app, http.MethodPost, "/api/transactions", map[string]any{
		"member_id":          memberID,
		"copy_id":            copyIDs[3],
		"checkout_timestamp": checkout.Format(time.RFC3339),
		"due_date":           checkout.AddDate(0, 0, 14).Format(time.RFC3339),
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Contains(t, body["error"], "3")

	_, list := doJSONList(t, app, "/api/transactions")
	assert.Len(t, list, 3)
}

func TestBorrowCheckoutAndCheckin(t *testing.T) {
	app, _ := newTestApp(t)

	memberID, copyIDs := seedMemberAndCopies(t, app, 1)

	resp, trx := doJSON(t, app, http.MethodPost, "/api/borrows/checkout", map[string]any{
		"member_id": memberID,
		"copy_id":   copyIDs[0],
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Nil(t, trx["return_timestamp"])
	trxID := trx["transaction_id"].(float64)

	resp, back := doJSON(t, app, http.MethodPost, "/api/borrows/checkin", map[string]any{
		"transaction_id": trxID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, back["return_timestamp"])

	// checkin transaksi yang tidak ada: 404
	resp, _ = doJSON(t, app, http.MethodPost, "/api/borrows/checkin", map[string]any{
		"transaction_id": 999,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
