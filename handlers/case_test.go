package handlers

import (
	"encoding/json"
	"law_console_go/models"
	"law_console_go/services"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCaseHandler(t *testing.T) {
	api := setupTestAPI(t)

	body := `{"title":"Reclamação trabalhista","area":"Trabalhista","claim_value":15000}`
	_, c, rec := setupEcho(http.MethodPost, "/api/processos", strings.NewReader(body))

	assert.NoError(t, api.CreateCase(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var created models.Case
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, models.CaseStatusOpen, created.Status)
	assert.Equal(t, models.AreaTrabalhista, created.Area)
}

func TestCreateCaseValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "Missing title", body: `{"area":"Trabalhista"}`},
		{name: "Invalid area", body: `{"title":"x","area":"Espacial"}`},
		{name: "Malformed body", body: `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := setupTestAPI(t)
			_, c, rec := setupEcho(http.MethodPost, "/api/processos", strings.NewReader(tt.body))

			assert.NoError(t, api.CreateCase(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUpdateCaseHandler(t *testing.T) {
	api := setupTestAPI(t)
	created := api.Cases.CreateCase(services.CreateCaseInput{Title: "Original"})

	body := `{"status":"closed"}`
	_, c, rec := setupEcho(http.MethodPut, "/api/processos/"+created.ID, strings.NewReader(body))
	c.SetParamNames("id")
	c.SetParamValues(created.ID)

	assert.NoError(t, api.UpdateCase(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	updated, found := api.Cases.GetCase(created.ID)
	assert.True(t, found)
	assert.Equal(t, models.CaseStatusClosed, updated.Status)
}

func TestUpdateCaseInvalidStatus(t *testing.T) {
	api := setupTestAPI(t)
	created := api.Cases.CreateCase(services.CreateCaseInput{Title: "Original"})

	body := `{"status":"paused"}`
	_, c, rec := setupEcho(http.MethodPut, "/api/processos/"+created.ID, strings.NewReader(body))
	c.SetParamNames("id")
	c.SetParamValues(created.ID)

	assert.NoError(t, api.UpdateCase(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateCaseNotFound(t *testing.T) {
	api := setupTestAPI(t)

	_, c, rec := setupEcho(http.MethodPut, "/api/processos/missing", strings.NewReader(`{"title":"x"}`))
	c.SetParamNames("id")
	c.SetParamValues("missing")

	assert.NoError(t, api.UpdateCase(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCaseHandler(t *testing.T) {
	api := setupTestAPI(t)
	created := api.Cases.CreateCase(services.CreateCaseInput{Title: "Para remover"})

	_, c, rec := setupEcho(http.MethodDelete, "/api/processos/"+created.ID, nil)
	c.SetParamNames("id")
	c.SetParamValues(created.ID)

	assert.NoError(t, api.DeleteCase(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Soft-deleted: gone from listings, still counted as removed
	_, c2, rec2 := setupEcho(http.MethodGet, "/api/processos", nil)
	assert.NoError(t, api.GetCases(c2))
	var listed []models.Case
	assert.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &listed))
	assert.Empty(t, listed)

	breakdown := api.Queries.StatusBreakdown().Data.(services.StatusBreakdown)
	assert.Equal(t, 1, breakdown.Removidos)
}

func TestGetCasesHiddenQuery(t *testing.T) {
	api := setupTestAPI(t)
	created := api.Cases.CreateCase(services.CreateCaseInput{Title: "Oculto"})
	hidden := true
	api.Cases.UpdateCase(created.ID, services.UpdateCaseInput{Hidden: &hidden})

	_, c, rec := setupEcho(http.MethodGet, "/api/processos", nil)
	assert.NoError(t, api.GetCases(c))
	var listed []models.Case
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	assert.Empty(t, listed)

	_, c2, rec2 := setupEcho(http.MethodGet, "/api/processos?incluir_ocultos=true", nil)
	assert.NoError(t, api.GetCases(c2))
	listed = nil
	assert.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &listed))
	assert.Len(t, listed, 1)
}
