package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
)

// ExportCasesReport streams an XLSX workbook of the case collection,
// optionally filtered by status and area query parameters
func (a *API) ExportCasesReport(c echo.Context) error {
	status := c.QueryParam("status")
	area := c.QueryParam("area")
	includeHidden := c.QueryParam("incluir_ocultos") == "true"

	cases := a.Cases.ListCases(includeHidden)

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Processos"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Número", "Título", "Área", "Status", "Valor da Causa",
		"Aberto em", "Atualizado em", "Cliente", "Observações",
	}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	f.SetCellStyle(sheet, "A1", "I1", headerStyle)
	f.SetColWidth(sheet, "A", "I", 20)

	row := 2
	for _, cs := range cases {
		if status != "" && cs.Status != status {
			continue
		}
		if area != "" && cs.Area != area {
			continue
		}

		values := []any{
			cs.CaseNumber,
			cs.Title,
			cs.Area,
			cs.Status,
			cs.ClaimValue,
			cs.OpenedAt.Format("2006-01-02"),
			cs.UpdatedAt.Format("2006-01-02"),
			cs.ClientID,
			cs.Notes,
		}
		for i, value := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, value)
		}
		row++
	}

	c.Response().Header().Set(echo.HeaderContentType,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=processos_%s.xlsx", time.Now().Format("20060102_150405")))

	if err := f.Write(c.Response().Writer); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to generate report",
		})
	}
	return nil
}
