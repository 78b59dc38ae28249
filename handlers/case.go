package handlers

import (
	"law_console_go/models"
	"law_console_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetCases lists the case collection. Hidden cases are included only with
// ?incluir_ocultos=true; deleted cases are never listed.
func (a *API) GetCases(c echo.Context) error {
	includeHidden := c.QueryParam("incluir_ocultos") == "true"
	return c.JSON(http.StatusOK, a.Cases.ListCases(includeHidden))
}

// GetCase returns a single case by ID
func (a *API) GetCase(c echo.Context) error {
	found, ok := a.Cases.GetCase(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Case not found",
		})
	}
	return c.JSON(http.StatusOK, found)
}

// CreateCase creates a new case from the posted fields
func (a *API) CreateCase(c echo.Context) error {
	var input services.CreateCaseInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if input.Title == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Title is required",
		})
	}
	if input.Area != "" && !models.IsValidCaseArea(input.Area) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid area",
		})
	}

	created := a.Cases.CreateCase(input)
	return c.JSON(http.StatusCreated, created)
}

// UpdateCase applies a partial update to a case
func (a *API) UpdateCase(c echo.Context) error {
	var input services.UpdateCaseInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	// Status transitions are deliberately unconstrained, but the value must
	// still come from the fixed enumeration
	if input.Status != nil && !models.IsValidCaseStatus(*input.Status) {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid status. Must be one of: open, suspended, archived, closed",
		})
	}

	if !a.Cases.UpdateCase(c.Param("id"), input) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Case not found",
		})
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteCase soft-deletes a case; the record is retained and counted as
// removed in the breakdowns
func (a *API) DeleteCase(c echo.Context) error {
	if !a.Cases.DeleteCase(c.Param("id")) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Case not found",
		})
	}
	return c.NoContent(http.StatusNoContent)
}
