package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"contest-backend/internal/config"
	"contest-backend/internal/database"
	"contest-backend/internal/database/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// JudgeData matches one entry in the judges seed file
type JudgeData struct {
	ExternalID string `yaml:"external_id"`
	Password   string `yaml:"password"`
	Name       string `yaml:"name"`
	IsAdmin    bool   `yaml:"is_admin"`
}

// Seeds judge accounts from a YAML file. Existing judges (by external id) get their
// name, password and admin flag refreshed; new ones are created.
//
// Usage: go run scripts/seed_judges.go [judges.yaml]
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	path := "scripts/judges.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", path, err)
	}

	var judges []JudgeData
	if err := yaml.Unmarshal(data, &judges); err != nil {
		log.Fatalf("Failed to parse %s: %v", path, err)
	}

	created, updated := 0, 0
	for _, j := range judges {
		if j.ExternalID == "" || j.Password == "" {
			log.Printf("Skipping judge with missing external_id or password: %+v", j)
			continue
		}
		wasCreated, err := upsertJudge(db, &j)
		if err != nil {
			log.Printf("Failed to seed judge %s: %v", j.ExternalID, err)
			continue
		}
		if wasCreated {
			created++
		} else {
			updated++
		}
	}

	fmt.Printf("Seeded judges: %d created, %d updated\n", created, updated)
}

func upsertJudge(db *gorm.DB, data *JudgeData) (bool, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	var judge models.Judge
	err = db.First(&judge, "external_id = ?", data.ExternalID).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, err
		}
		judge = models.Judge{
			ExternalID:     data.ExternalID,
			HashedPassword: string(hash),
			Name:           data.Name,
			IsAdmin:        data.IsAdmin,
		}
		return true, db.Create(&judge).Error
	}

	judge.HashedPassword = string(hash)
	judge.Name = data.Name
	judge.IsAdmin = data.IsAdmin
	return false, db.Save(&judge).Error
}
