package v1_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicdesk/clinicdesk/internal/domain/doctor"
)

func createDoctor(t *testing.T, router *gin.Engine, firstName, lastName string, age int, email string) doctor.Doctor {
	t.Helper()

	w := perform(t, router, http.MethodPost, "/api/v1/doctors", map[string]any{
		"firstName": firstName,
		"lastName":  lastName,
		"age":       age,
		"email":     email,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var d doctor.Doctor
	decodeData(t, w, &d)
	return d
}

func TestDoctorCreate(t *testing.T) {
	router := newTestRouter(t)

	d := createDoctor(t, router, "Perla", "Amalia", 24, "p.amalia@hospital.accwe")

	assert.Equal(t, int64(1), d.ID)
	assert.Equal(t, "Perla", d.FirstName)
	assert.Equal(t, "p.amalia@hospital.accwe", d.Email)
}

func TestDoctorCreateInvalid(t *testing.T) {
	router := newTestRouter(t)

	w := perform(t, router, http.MethodPost, "/api/v1/doctors", map[string]any{
		"firstName": "Perla",
		"age":       24,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDoctorCreateMalformedJSON(t *testing.T) {
	router := newTestRouter(t)

	w := perform(t, router, http.MethodPost, "/api/v1/doctors", "not an object")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDoctorListEmpty(t *testing.T) {
	router := newTestRouter(t)

	w := perform(t, router, http.MethodGet, "/api/v1/doctors", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}

func TestDoctorList(t *testing.T) {
	router := newTestRouter(t)
	createDoctor(t, router, "Perla", "Amalia", 24, "p.amalia@hospital.accwe")
	createDoctor(t, router, "Miren", "Iniesta", 24, "m.iniesta@hospital.accwe")

	w := perform(t, router, http.MethodGet, "/api/v1/doctors", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doctors []doctor.Doctor
	decodeData(t, w, &doctors)
	assert.Len(t, doctors, 2)
}

func TestDoctorGet(t *testing.T) {
	router := newTestRouter(t)
	created := createDoctor(t, router, "Perla", "Amalia", 24, "p.amalia@hospital.accwe")

	w := perform(t, router, http.MethodGet, "/api/v1/doctors/1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got doctor.Doctor
	decodeData(t, w, &got)
	assert.True(t, got.Equal(&created))
}

func TestDoctorGetNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := perform(t, router, http.MethodGet, "/api/v1/doctors/31", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDoctorGetInvalidID(t *testing.T) {
	router := newTestRouter(t)

	w := perform(t, router, http.MethodGet, "/api/v1/doctors/not-a-number", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDoctorDelete(t *testing.T) {
	router := newTestRouter(t)
	createDoctor(t, router, "Perla", "Amalia", 24, "p.amalia@hospital.accwe")

	w := perform(t, router, http.MethodDelete, "/api/v1/doctors/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(t, router, http.MethodDelete, "/api/v1/doctors/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDoctorDeleteAll(t *testing.T) {
	router := newTestRouter(t)
	createDoctor(t, router, "Perla", "Amalia", 24, "p.amalia@hospital.accwe")

	w := perform(t, router, http.MethodDelete, "/api/v1/doctors", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Succeeds again with nothing left to delete.
	w = perform(t, router, http.MethodDelete, "/api/v1/doctors", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(t, router, http.MethodGet, "/api/v1/doctors", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}
