package config

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"p9e.in/landreg/models"
)

// SeedAdminHierarchy inserts a starter region/zone/woreda/office chain so a
// fresh install has reference data to register parcels against. Skips
// everything once any region exists.
func SeedAdminHierarchy() {
	var count int64
	DB.Model(&models.Region{}).Count(&count)
	if count > 0 {
		return
	}

	log.Println("Seeding administrative hierarchy...")

	regions := []models.Region{
		{Name: "Addis Ababa", Code: "AA"},
		{Name: "Oromia", Code: "OR"},
		{Name: "Amhara", Code: "AM"},
		{Name: "Sidama", Code: "SI"},
	}
	for i := range regions {
		if err := DB.Create(&regions[i]).Error; err != nil {
			log.Printf("Warning: seed region %s: %v", regions[i].Code, err)
		}
	}

	zone := models.Zone{RegionID: regions[0].ID, Name: "Bole", Code: "AA-BO"}
	if err := DB.Create(&zone).Error; err != nil {
		log.Printf("Warning: seed zone: %v", err)
		return
	}
	woreda := models.Woreda{ZoneID: zone.ID, Name: "Woreda 03", Code: "AA-BO-03"}
	if err := DB.Create(&woreda).Error; err != nil {
		log.Printf("Warning: seed woreda: %v", err)
		return
	}
	office := models.OversightOffice{
		WoredaID: woreda.ID,
		Name:     "Bole Woreda 03 Land Administration Office",
		Code:     "AA-BO-03-LAO",
	}
	if err := DB.Create(&office).Error; err != nil {
		log.Printf("Warning: seed oversight office: %v", err)
	}
}

// SeedAdminUser creates the bootstrap admin account when none exists. The
// password comes from ADMIN_PASSWORD so it never lands in the repo.
func SeedAdminUser() {
	var count int64
	DB.Model(&models.User{}).Where("role = ?", "admin").Count(&count)
	if count > 0 {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Println("ADMIN_PASSWORD not set, skipping admin user seeding")
		return
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Warning: hash admin password: %v", err)
		return
	}

	admin := models.User{
		Name:         "System Administrator",
		Email:        "admin@landreg.gov.et",
		Phone:        "0900000000",
		PasswordHash: string(hash),
		Role:         "admin",
	}
	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Warning: seed admin user: %v", err)
		return
	}
	log.Println("Seeded bootstrap admin user")
}
