// Provisioning script: creates the schema, seeds reference data and the
// bootstrap admin account. Safe to re-run; existing rows are left alone.
package main

import (
	"log"
	"os"

	"srif-api/config"
	"srif-api/models"
	"srif-api/utils"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var defaultAffiliations = []models.Affiliation{
	{Code: "medicine", NameEn: "AlMaarefa University, College of Medicine", NameAr: "جامعة المعرفة، كلية الطب"},
	{Code: "pharmacy", NameEn: "AlMaarefa University, College of Pharmacy", NameAr: "جامعة المعرفة، كلية الصيدلة"},
	{Code: "medical-sciences", NameEn: "AlMaarefa University, College of Medical Sciences", NameAr: "جامعة المعرفة، كلية العلوم الطبية"},
	{Code: "alumni", NameEn: "Alumni/Graduate of AlMaarefa University", NameAr: "خريج جامعة المعرفة"},
	{Code: "external", NameEn: "External University/Institution", NameAr: "جامعة/مؤسسة خارجية", IsExternal: true},
}

var defaultSettings = []models.Setting{
	{Key: "event_name_en", Value: "Scientific Research and Innovation Forum 2026", Description: strPtr("Event name in English")},
	{Key: "event_name_ar", Value: "منتدى البحث العلمي والابتكار 2026", Description: strPtr("Event name in Arabic")},
	{Key: "event_start_date", Value: "2026-05-05", Description: strPtr("Event start date")},
	{Key: "event_end_date", Value: "2026-05-06", Description: strPtr("Event end date")},
	{Key: "submission_deadline", Value: "2026-04-18", Description: strPtr("Abstract submission deadline")},
	{Key: "contact_email", Value: "rs@um.edu.sa", Description: strPtr("Contact email address")},
	{Key: "submissions_open", Value: "true", Description: strPtr("Whether submissions are open")},
}

func strPtr(s string) *string {
	return &s
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := config.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	log.Println("Initializing SRIF 2026 database...")

	if err := db.AutoMigrate(
		&models.User{},
		&models.Affiliation{},
		&models.ResearchSubmission{},
		&models.InnovationSubmission{},
		&models.Announcement{},
		&models.Setting{},
		&models.ActivityLog{},
		&models.ContactMessage{},
		&models.GalleryImage{},
		&models.Committee{},
		&models.CommitteeMember{},
		&models.Speaker{},
	); err != nil {
		log.Fatal("Schema creation failed: ", err)
	}
	log.Println("Tables created successfully")

	for _, aff := range defaultAffiliations {
		if err := db.Where("code = ?", aff.Code).FirstOrCreate(&aff).Error; err != nil {
			log.Fatal("Failed to seed affiliations: ", err)
		}
	}
	log.Println("Default affiliations inserted")

	for _, setting := range defaultSettings {
		if err := db.Where("`key` = ?", setting.Key).FirstOrCreate(&setting).Error; err != nil {
			log.Fatal("Failed to seed settings: ", err)
		}
	}
	log.Println("Default settings inserted")

	if err := seedAdmin(db); err != nil {
		log.Fatal("Failed to seed admin user: ", err)
	}

	log.Println("Database initialization complete")
}

// seedAdmin creates the bootstrap super_admin from ADMIN_EMAIL/ADMIN_PASSWORD.
func seedAdmin(db *gorm.DB) error {
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@um.edu.sa"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "srif2026admin"
	}

	var existing models.User
	if err := db.First(&existing, "email = ?", adminEmail).Error; err == nil {
		log.Printf("Admin user %s already exists, skipping", adminEmail)
		return nil
	}

	hashed, err := utils.HashPassword(adminPassword, utils.BootstrapHashCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:    adminEmail,
		Password: hashed,
		Name:     "System Administrator",
		Role:     models.RoleSuperAdmin,
		IsActive: true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("Default admin user created: %s", adminEmail)
	return nil
}
