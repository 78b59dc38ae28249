package handlers

import (
	"law_console_go/services"
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetClients lists the client collection, optionally including hidden ones
func (a *API) GetClients(c echo.Context) error {
	includeHidden := c.QueryParam("incluir_ocultos") == "true"
	return c.JSON(http.StatusOK, a.Clients.ListClients(includeHidden))
}

// CreateClient creates a new client from the posted fields
func (a *API) CreateClient(c echo.Context) error {
	var input services.CreateClientInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if input.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Name is required",
		})
	}

	created := a.Clients.CreateClient(input)
	return c.JSON(http.StatusCreated, created)
}

// UpdateClient applies a partial update to a client
func (a *API) UpdateClient(c echo.Context) error {
	var input services.UpdateClientInput
	if err := c.Bind(&input); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "Invalid request body",
		})
	}

	if !a.Clients.UpdateClient(c.Param("id"), input) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "Client not found",
		})
	}
	return c.NoContent(http.StatusNoContent)
}
