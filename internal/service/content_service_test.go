package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/abcsitio/internal/db"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupContentTestDB(t *testing.T) (*gorm.DB, func()) {
	t.Helper()

	dsn := fmt.Sprintf("file:content-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := gdb.AutoMigrate(&db.Service{}, &db.Highlight{}, &db.CompanyValue{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return gdb, func() {
		sqlDB, err := gdb.DB()
		if err == nil {
			sqlDB.Close()
		}
	}
}

func TestSaveNewAssignsIdentifier(t *testing.T) {
	gdb, cleanup := setupContentTestDB(t)
	defer cleanup()

	svc := NewContentService(gdb)
	saved, err := svc.Save(CollectionHighlights, ContentItem{
		Title:        "Transparencia",
		Description:  "Informes claros",
		IconName:     "ShieldCheck",
		DisplayOrder: 1,
	}, true)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("expected a generated id for a new item")
	}
}

func TestListOrdersByDisplayOrder(t *testing.T) {
	gdb, cleanup := setupContentTestDB(t)
	defer cleanup()

	svc := NewContentService(gdb)
	// Deliberately out of order, with a duplicate order value and a gap.
	for _, order := range []int{7, 2, 2, 30} {
		if _, err := svc.Save(CollectionValues, ContentItem{
			Title:        fmt.Sprintf("Valor %d", order),
			DisplayOrder: order,
		}, true); err != nil {
			t.Fatalf("Save returned error: %v", err)
		}
	}

	items, err := svc.List(CollectionValues)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	for i := 1; i < len(items); i++ {
		if items[i].DisplayOrder < items[i-1].DisplayOrder {
			t.Fatalf("items not in non-decreasing order at index %d", i)
		}
	}
}

func TestServiceVisibilityFilters(t *testing.T) {
	gdb, cleanup := setupContentTestDB(t)
	defer cleanup()

	svc := NewContentService(gdb)
	saved, err := svc.Save(CollectionServices, ContentItem{
		Title:        "Administración integral",
		DisplayOrder: 5,
		IsActive:     true,
		IsFeatured:   false,
	}, true)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	active := true
	actives, err := svc.ListServices(ServiceFilter{Active: &active})
	if err != nil {
		t.Fatalf("ListServices returned error: %v", err)
	}
	if len(actives) != 1 || actives[0].ID != saved.ID {
		t.Fatal("expected the active service to be listed")
	}

	featured := true
	featureds, err := svc.ListServices(ServiceFilter{Featured: &featured})
	if err != nil {
		t.Fatalf("ListServices returned error: %v", err)
	}
	if len(featureds) != 0 {
		t.Fatal("expected no featured services")
	}
}

func TestUpdatePersistsClearedFlags(t *testing.T) {
	gdb, cleanup := setupContentTestDB(t)
	defer cleanup()

	svc := NewContentService(gdb)
	saved, err := svc.Save(CollectionServices, ContentItem{
		Title:      "Vigilancia",
		IsActive:   true,
		IsFeatured: true,
	}, true)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	saved.IsActive = false
	saved.IsFeatured = false
	if _, err := svc.Save(CollectionServices, saved, false); err != nil {
		t.Fatalf("update returned error: %v", err)
	}

	items, err := svc.List(CollectionServices)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].IsActive || items[0].IsFeatured {
		t.Fatal("expected cleared flags to be persisted")
	}
}

func TestDeleteNonexistentIDSucceeds(t *testing.T) {
	gdb, cleanup := setupContentTestDB(t)
	defer cleanup()

	svc := NewContentService(gdb)
	if err := svc.Delete(CollectionServices, "no-such-id"); err != nil {
		t.Fatalf("expected idempotent delete, got error: %v", err)
	}
}

func TestDeleteRemovesItem(t *testing.T) {
	gdb, cleanup := setupContentTestDB(t)
	defer cleanup()

	svc := NewContentService(gdb)
	saved, err := svc.Save(CollectionHighlights, ContentItem{Title: "Seguridad"}, true)
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if err := svc.Delete(CollectionHighlights, saved.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	items, err := svc.List(CollectionHighlights)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty collection after delete, got %d items", len(items))
	}
}

func TestUnknownCollectionIsRejected(t *testing.T) {
	gdb, cleanup := setupContentTestDB(t)
	defer cleanup()

	svc := NewContentService(gdb)
	if _, err := svc.List(Collection(99)); err != ErrUnknownCollection {
		t.Fatalf("expected ErrUnknownCollection, got %v", err)
	}
	if err := svc.Delete(Collection(99), "id"); err != ErrUnknownCollection {
		t.Fatalf("expected ErrUnknownCollection, got %v", err)
	}
}
