// Additive schema migrations, guarded by an applied-migrations ledger. New
// migrations go at the end of the registry; applied versions are skipped.
package main

import (
	"log"
	"time"

	"srif-api/config"
	"srif-api/models"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

type appliedMigration struct {
	ID        int       `gorm:"primaryKey;column:id"`
	Version   string    `gorm:"column:version;size:20"`
	Name      string    `gorm:"column:name;size:100"`
	AppliedAt time.Time `gorm:"column:applied_at"`
}

func (appliedMigration) TableName() string {
	return "migrations"
}

type migration struct {
	Version string
	Name    string
	Run     func(db *gorm.DB) error
}

var registry = []migration{
	{
		Version: "1.0.0",
		Name:    "initial_setup",
		// The initial schema is handled by cmd/init-db.
		Run: func(db *gorm.DB) error { return nil },
	},
	{
		Version: "1.1.0",
		Name:    "add_contact_messages",
		Run: func(db *gorm.DB) error {
			return db.AutoMigrate(&models.ContactMessage{})
		},
	},
	{
		Version: "1.2.0",
		Name:    "add_submission_tracking",
		Run: func(db *gorm.DB) error {
			if !db.Migrator().HasColumn(&models.ResearchSubmission{}, "track") {
				if err := db.Exec("ALTER TABLE research_submissions ADD COLUMN track VARCHAR(100)").Error; err != nil {
					return err
				}
			}
			if !db.Migrator().HasColumn(&models.InnovationSubmission{}, "category") {
				if err := db.Exec("ALTER TABLE innovation_submissions ADD COLUMN category VARCHAR(100)").Error; err != nil {
					return err
				}
			}
			return nil
		},
	},
	{
		Version: "1.3.0",
		Name:    "add_presentation_type",
		Run: func(db *gorm.DB) error {
			for _, model := range []any{&models.ResearchSubmission{}, &models.InnovationSubmission{}} {
				if !db.Migrator().HasColumn(model, "presentation_type") {
					if err := db.Migrator().AddColumn(model, "PresentationType"); err != nil {
						return err
					}
				}
			}
			return nil
		},
	},
	{
		Version: "1.4.0",
		Name:    "add_announcement_image",
		Run: func(db *gorm.DB) error {
			if !db.Migrator().HasColumn(&models.Announcement{}, "image_path") {
				return db.Migrator().AddColumn(&models.Announcement{}, "ImagePath")
			}
			return nil
		},
	},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	db, err := config.InitDB()
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	log.Println("Running database migrations...")

	if err := db.AutoMigrate(&appliedMigration{}); err != nil {
		log.Fatal("Failed to create migrations table: ", err)
	}

	var applied []appliedMigration
	if err := db.Find(&applied).Error; err != nil {
		log.Fatal("Failed to read applied migrations: ", err)
	}
	appliedVersions := make(map[string]bool, len(applied))
	for _, m := range applied {
		appliedVersions[m.Version] = true
	}

	for _, m := range registry {
		if appliedVersions[m.Version] {
			log.Printf("Skipping %s: %s (already applied)", m.Version, m.Name)
			continue
		}

		log.Printf("Applying migration %s: %s", m.Version, m.Name)
		if err := m.Run(db); err != nil {
			log.Fatalf("Migration %s failed: %v", m.Version, err)
		}
		record := appliedMigration{Version: m.Version, Name: m.Name, AppliedAt: time.Now()}
		if err := db.Create(&record).Error; err != nil {
			log.Fatalf("Failed to record migration %s: %v", m.Version, err)
		}
	}

	log.Println("All migrations applied successfully")
}
