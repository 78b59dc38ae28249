package services

import (
	"law_console_go/models"
	"log"
	"time"

	"gorm.io/gorm"
)

// SeedFixtures populates the financeiro/agenda fixtures on first start.
// The fixtures are served read-only and never mutated afterward, so the
// seed is skipped whenever any invoices already exist.
func SeedFixtures(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Invoice{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("[SEED] Fixtures already present, skipping seed")
		return nil
	}

	now := time.Now()
	paidAt := now.AddDate(0, 0, -12)

	invoices := []models.Invoice{
		{
			ClientName:  "Maria Oliveira",
			Description: "Honorários - reclamação trabalhista",
			Amount:      3500.00,
			Status:      models.InvoiceStatusPaid,
			DueDate:     now.AddDate(0, 0, -15),
			PaidAt:      &paidAt,
		},
		{
			ClientName:  "João Santos",
			Description: "Honorários - ação de cobrança",
			Amount:      1800.00,
			Status:      models.InvoiceStatusPending,
			DueDate:     now.AddDate(0, 0, 10),
		},
		{
			ClientName:  "Transportes Silva Ltda",
			Description: "Consultoria tributária - parcela 2/4",
			Amount:      4200.00,
			Status:      models.InvoiceStatusOverdue,
			DueDate:     now.AddDate(0, 0, -30),
		},
	}
	if err := db.Create(&invoices).Error; err != nil {
		return err
	}

	appointments := []models.Appointment{
		{
			Title:      "Audiência inicial - 2ª Vara do Trabalho",
			Location:   "Fórum Trabalhista, sala 204",
			StartsAt:   now.AddDate(0, 0, 3).Truncate(time.Hour),
			EndsAt:     now.AddDate(0, 0, 3).Truncate(time.Hour).Add(2 * time.Hour),
			ClientName: "Maria Oliveira",
		},
		{
			Title:      "Reunião de alinhamento",
			Location:   "Escritório",
			StartsAt:   now.AddDate(0, 0, 1).Truncate(time.Hour),
			EndsAt:     now.AddDate(0, 0, 1).Truncate(time.Hour).Add(time.Hour),
			ClientName: "Transportes Silva Ltda",
			Notes:      "Revisar documentos da consultoria",
		},
	}
	if err := db.Create(&appointments).Error; err != nil {
		return err
	}

	log.Printf("[SEED] Created %d invoices and %d appointments", len(invoices), len(appointments))
	return nil
}
