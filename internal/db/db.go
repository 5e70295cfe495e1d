package db

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DB is the shared database handle for the application.
var DB *gorm.DB

// Init opens the database, runs migrations and seeds the settings rows.
// An empty databasePath falls back to abcsitio.db in the working directory.
func Init(databasePath string) error {
	path := strings.TrimSpace(databasePath)
	if path == "" {
		path = "abcsitio.db"
	}

	if err := ensureParentDir(path); err != nil {
		return err
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}

	if err = DB.AutoMigrate(
		&SiteSetting{},
		&Service{},
		&Highlight{},
		&CompanyValue{},
		&ContactMessage{},
	); err != nil {
		return err
	}

	return SeedSettings(DB)
}

// SeedSettings inserts any missing settings rows with an empty value.
// Existing rows are left untouched; the admin UI only edits values and the
// public pages resolve empty values against the defaults table.
func SeedSettings(gdb *gorm.DB) error {
	for _, def := range SettingDefinitions {
		var count int64
		if err := gdb.Model(&SiteSetting{}).Where("key = ?", def.Key).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		row := SiteSetting{
			ID:    uuid.NewString(),
			Key:   def.Key,
			Label: def.Label,
			Group: def.Group,
		}
		if err := gdb.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("database path parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
