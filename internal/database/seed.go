package database

import (
	"log"

	"facturation/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seed loads the starter dataset: two clients and the ten-product catalog.
// It is idempotent — a non-empty table is left untouched — so it can run on
// every startup.
func Seed(db *gorm.DB) error {
	var clientCount int64
	if err := db.Model(&model.Client{}).Count(&clientCount).Error; err != nil {
		return err
	}
	if clientCount == 0 {
		clients := []model.Client{
			{Code: "CLI001", Name: "Entreprise ABC", Contact: "contact@abc.com", IFU: "1234567890123"},
			{Code: "CLI002", Name: "Société XYZ", Contact: "info@xyz.com", IFU: "9876543210987"},
		}
		if err := db.Create(&clients).Error; err != nil {
			return err
		}
		log.Printf("seeded %d clients", len(clients))
	}

	var productCount int64
	if err := db.Model(&model.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount == 0 {
		products := []model.Product{
			{Code: "PROD01", Label: "Ordinateur portable", UnitPrice: decimal.NewFromInt(800)},
			{Code: "PROD02", Label: "Souris sans fil", UnitPrice: decimal.NewFromInt(25)},
			{Code: "PROD03", Label: "Clavier mécanique", UnitPrice: decimal.NewFromInt(120)},
			{Code: "PROD04", Label: "Écran 24\"", UnitPrice: decimal.NewFromInt(180)},
			{Code: "PROD05", Label: "Imprimante laser", UnitPrice: decimal.NewFromInt(350)},
			{Code: "PROD06", Label: "Scanner", UnitPrice: decimal.NewFromInt(150)},
			{Code: "PROD07", Label: "Webcam HD", UnitPrice: decimal.NewFromInt(80)},
			{Code: "PROD08", Label: "Casque audio", UnitPrice: decimal.NewFromInt(95)},
			{Code: "PROD09", Label: "Disque dur externe", UnitPrice: decimal.NewFromInt(120)},
			{Code: "PROD10", Label: "Clé USB 32GB", UnitPrice: decimal.NewFromInt(15)},
		}
		if err := db.Create(&products).Error; err != nil {
			return err
		}
		log.Printf("seeded %d catalog products", len(products))
	}

	return nil
}
