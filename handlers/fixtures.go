package handlers

import (
	"law_console_go/db"
	"law_console_go/models"
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetInvoices serves the read-only billing fixtures ("financeiro")
func GetInvoices(c echo.Context) error {
	var invoices []models.Invoice
	if err := db.DB.Order("due_date").Find(&invoices).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch invoices",
		})
	}
	return c.JSON(http.StatusOK, invoices)
}

// GetAppointments serves the read-only calendar fixtures ("agenda")
func GetAppointments(c echo.Context) error {
	var appointments []models.Appointment
	if err := db.DB.Order("starts_at").Find(&appointments).Error; err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Failed to fetch appointments",
		})
	}
	return c.JSON(http.StatusOK, appointments)
}
