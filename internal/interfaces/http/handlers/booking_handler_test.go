package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBookingBody() map[string]interface{} {
	return map[string]interface{}{
		"cleanerId":     1,
		"customerName":  "Jane Doe",
		"customerPhone": "555-0100",
		"address":       "12 Elm Street",
		"date":          "2026-09-01",
		"timeSlot":      "9:00 AM",
		"notes":         "ring the bell",
	}
}

func TestBookingHandler_Create(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/bookings", "", validBookingBody())
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, "pending", body["status"])
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "ring the bell", body["notes"])
}

func TestBookingHandler_CreateMissingFields(t *testing.T) {
	env := newTestEnv(t)

	input := validBookingBody()
	delete(input, "customerName")
	w := env.do(t, http.MethodPost, "/api/v1/bookings", "", input)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_CreateUnknownCleaner(t *testing.T) {
	env := newTestEnv(t)

	input := validBookingBody()
	input["cleanerId"] = 99
	w := env.do(t, http.MethodPost, "/api/v1/bookings", "", input)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_GetAndList(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/bookings", "", validBookingBody())
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["id"].(string)

	w = env.do(t, http.MethodGet, "/api/v1/bookings/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Jane Doe", decodeBody(t, w)["customerName"])

	w = env.do(t, http.MethodGet, "/api/v1/bookings", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeBody(t, w)["items"], 1)

	w = env.do(t, http.MethodGet, "/api/v1/bookings/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/v1/bookings/00000000-0000-0000-0000-000000000000", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBookingHandler_Complete(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/v1/bookings", "", validBookingBody())
	require.Equal(t, http.StatusCreated, w.Code)
	id := decodeBody(t, w)["id"].(string)

	w = env.do(t, http.MethodPut, "/api/v1/bookings/"+id+"/complete", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "completed", decodeBody(t, w)["status"])

	// Completing twice is rejected
	w = env.do(t, http.MethodPut, "/api/v1/bookings/"+id+"/complete", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPut, "/api/v1/bookings/00000000-0000-0000-0000-000000000000/complete", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
