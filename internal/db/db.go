package db

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"newsroom/internal/config"
	"newsroom/internal/content"
	"newsroom/internal/user"
)

var DB *gorm.DB

func Init(cfg *config.Config) error {
	db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{})
	if err != nil {
		return err
	}

	if err := Migrate(db); err != nil {
		return err
	}
	if err := SeedReferenceData(db); err != nil {
		return err
	}

	DB = db
	log.Printf("Database connected, migrated and seeded")
	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&user.Role{},
		&user.User{},
		&content.Category{},
		&content.Article{},
		&content.Comment{},
	)
}

// SeedReferenceData inserts the fixed role and category sets. Idempotent:
// rows already present are left untouched.
func SeedReferenceData(db *gorm.DB) error {
	roles := []user.Role{
		{Name: "Admin", Rank: user.RankAdmin},
		{Name: "Journalist", Rank: user.RankJournalist},
		{Name: "User", Rank: user.RankUser},
	}
	for i := range roles {
		if err := db.Where(user.Role{Name: roles[i].Name}).FirstOrCreate(&roles[i]).Error; err != nil {
			return err
		}
	}

	categories := []content.Category{
		{Name: "Politikë"},
		{Name: "Sport"},
		{Name: "Cultbiz"},
		{Name: "Biznes"},
		{Name: "Life"},
	}
	for i := range categories {
		if err := db.Where(content.Category{Name: categories[i].Name}).FirstOrCreate(&categories[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// RoleByRank looks up a seeded role by its rank.
func RoleByRank(db *gorm.DB, rank user.Rank) (*user.Role, error) {
	var role user.Role
	if err := db.Where("rank = ?", rank).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}
