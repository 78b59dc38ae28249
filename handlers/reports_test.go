package handlers

import (
	"bytes"
	"law_console_go/models"
	"law_console_go/services"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestExportCasesReport(t *testing.T) {
	api := setupTestAPI(t)
	api.Cases.CreateCase(services.CreateCaseInput{
		Title:      "Reclamação trabalhista",
		Area:       models.AreaTrabalhista,
		ClaimValue: 15000,
	})
	api.Cases.CreateCase(services.CreateCaseInput{
		Title: "Ação de cobrança",
		Area:  models.AreaCivel,
	})

	_, c, rec := setupEcho(http.MethodGet, "/api/reports/processos", nil)
	assert.NoError(t, api.ExportCasesReport(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "processos_")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Processos")
	assert.NoError(t, err)
	assert.Len(t, rows, 3) // header + two cases
	assert.Equal(t, "Número", rows[0][0])
}

func TestExportCasesReportStatusFilter(t *testing.T) {
	api := setupTestAPI(t)
	created := api.Cases.CreateCase(services.CreateCaseInput{Title: "Fechado", Area: models.AreaCivel})
	status := models.CaseStatusClosed
	api.Cases.UpdateCase(created.ID, services.UpdateCaseInput{Status: &status})
	api.Cases.CreateCase(services.CreateCaseInput{Title: "Aberto", Area: models.AreaCivel})

	_, c, rec := setupEcho(http.MethodGet, "/api/reports/processos?status=closed", nil)
	assert.NoError(t, api.ExportCasesReport(c))

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	assert.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Processos")
	assert.NoError(t, err)
	assert.Len(t, rows, 2) // header + the closed case
	assert.Equal(t, "Fechado", rows[1][1])
}
