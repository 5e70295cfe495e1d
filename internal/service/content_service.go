package service

import (
	"errors"
	"fmt"

	"github.com/abcsitio/internal/db"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Collection identifies one of the three admin-editable content collections.
// Dispatching on a closed set of tags keeps table selection typed instead of
// passing table names around as strings.
type Collection int

const (
	CollectionServices Collection = iota
	CollectionHighlights
	CollectionValues
)

// ErrUnknownCollection reports a Collection value outside the closed set.
var ErrUnknownCollection = errors.New("unknown content collection")

// ContentItem is the shared shape of the three collections. IsActive and
// IsFeatured only apply to services and are ignored elsewhere.
type ContentItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	IconName     string `json:"icon_name"`
	DisplayOrder int    `json:"display_order"`
	IsActive     bool   `json:"is_active"`
	IsFeatured   bool   `json:"is_featured"`
}

// ServiceFilter narrows a service listing by the visibility flags. Nil
// fields mean no constraint.
type ServiceFilter struct {
	Active   *bool
	Featured *bool
}

// ContentService provides CRUD over the content collections.
type ContentService struct {
	db *gorm.DB
}

// NewContentService returns a new ContentService instance.
func NewContentService(gdb *gorm.DB) *ContentService {
	return &ContentService{db: gdb}
}

// List returns the items of a collection in ascending display order. Equal
// orders fall back to id so the sequence stays stable across calls; display
// orders are caller-supplied and never required to be unique or contiguous.
func (s *ContentService) List(col Collection) ([]ContentItem, error) {
	switch col {
	case CollectionServices:
		return s.ListServices(ServiceFilter{})
	case CollectionHighlights:
		var rows []db.Highlight
		if err := s.ordered().Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("list highlights: %w", err)
		}
		items := make([]ContentItem, 0, len(rows))
		for _, r := range rows {
			items = append(items, ContentItem{
				ID:           r.ID,
				Title:        r.Title,
				Description:  r.Description,
				IconName:     r.IconName,
				DisplayOrder: r.DisplayOrder,
			})
		}
		return items, nil
	case CollectionValues:
		var rows []db.CompanyValue
		if err := s.ordered().Find(&rows).Error; err != nil {
			return nil, fmt.Errorf("list company values: %w", err)
		}
		items := make([]ContentItem, 0, len(rows))
		for _, r := range rows {
			items = append(items, ContentItem{
				ID:           r.ID,
				Title:        r.Title,
				Description:  r.Description,
				IconName:     r.IconName,
				DisplayOrder: r.DisplayOrder,
			})
		}
		return items, nil
	default:
		return nil, ErrUnknownCollection
	}
}

// ListServices returns services in ascending display order, optionally
// narrowed by the visibility flags.
func (s *ContentService) ListServices(filter ServiceFilter) ([]ContentItem, error) {
	query := s.ordered()
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}
	if filter.Featured != nil {
		query = query.Where("is_featured = ?", *filter.Featured)
	}

	var rows []db.Service
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}

	items := make([]ContentItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, ContentItem{
			ID:           r.ID,
			Title:        r.Title,
			Description:  r.Description,
			IconName:     r.IconName,
			DisplayOrder: r.DisplayOrder,
			IsActive:     r.IsActive,
			IsFeatured:   r.IsFeatured,
		})
	}
	return items, nil
}

// Save inserts or updates one item. A new item gets a fresh id; an update
// touches the row matching item.ID. Display order and icon names are stored
// as given — unknown icons only degrade at render time, and duplicate or
// gapped orders are tolerated. Data-layer errors propagate verbatim so the
// operator can see what went wrong.
func (s *ContentService) Save(col Collection, item ContentItem, isNew bool) (ContentItem, error) {
	if isNew {
		item.ID = uuid.NewString()
		var err error
		switch col {
		case CollectionServices:
			err = s.db.Create(&db.Service{
				ID:           item.ID,
				Title:        item.Title,
				Description:  item.Description,
				IconName:     item.IconName,
				DisplayOrder: item.DisplayOrder,
				IsActive:     item.IsActive,
				IsFeatured:   item.IsFeatured,
			}).Error
		case CollectionHighlights:
			err = s.db.Create(&db.Highlight{
				ID:           item.ID,
				Title:        item.Title,
				Description:  item.Description,
				IconName:     item.IconName,
				DisplayOrder: item.DisplayOrder,
			}).Error
		case CollectionValues:
			err = s.db.Create(&db.CompanyValue{
				ID:           item.ID,
				Title:        item.Title,
				Description:  item.Description,
				IconName:     item.IconName,
				DisplayOrder: item.DisplayOrder,
			}).Error
		default:
			return ContentItem{}, ErrUnknownCollection
		}
		if err != nil {
			return ContentItem{}, fmt.Errorf("insert content item: %w", err)
		}
		return item, nil
	}

	// Updates go through a column map so false flags and zero orders are
	// written instead of being skipped as zero values.
	updates := map[string]interface{}{
		"title":         item.Title,
		"description":   item.Description,
		"icon_name":     item.IconName,
		"display_order": item.DisplayOrder,
	}

	var err error
	switch col {
	case CollectionServices:
		updates["is_active"] = item.IsActive
		updates["is_featured"] = item.IsFeatured
		err = s.db.Model(&db.Service{}).Where("id = ?", item.ID).Updates(updates).Error
	case CollectionHighlights:
		err = s.db.Model(&db.Highlight{}).Where("id = ?", item.ID).Updates(updates).Error
	case CollectionValues:
		err = s.db.Model(&db.CompanyValue{}).Where("id = ?", item.ID).Updates(updates).Error
	default:
		return ContentItem{}, ErrUnknownCollection
	}

	if err != nil {
		return ContentItem{}, fmt.Errorf("update content item: %w", err)
	}
	return item, nil
}

// Delete hard-deletes one item by id. Deleting an id that no longer exists
// still succeeds: a delete touching zero rows is not an error.
func (s *ContentService) Delete(col Collection, id string) error {
	var err error
	switch col {
	case CollectionServices:
		err = s.db.Where("id = ?", id).Delete(&db.Service{}).Error
	case CollectionHighlights:
		err = s.db.Where("id = ?", id).Delete(&db.Highlight{}).Error
	case CollectionValues:
		err = s.db.Where("id = ?", id).Delete(&db.CompanyValue{}).Error
	default:
		return ErrUnknownCollection
	}

	if err != nil {
		return fmt.Errorf("delete content item: %w", err)
	}
	return nil
}

// Count returns the number of items in a collection.
func (s *ContentService) Count(col Collection) (int64, error) {
	var count int64
	var err error
	switch col {
	case CollectionServices:
		err = s.db.Model(&db.Service{}).Count(&count).Error
	case CollectionHighlights:
		err = s.db.Model(&db.Highlight{}).Count(&count).Error
	case CollectionValues:
		err = s.db.Model(&db.CompanyValue{}).Count(&count).Error
	default:
		return 0, ErrUnknownCollection
	}
	if err != nil {
		return 0, fmt.Errorf("count content items: %w", err)
	}
	return count, nil
}

func (s *ContentService) ordered() *gorm.DB {
	return s.db.Order("display_order ASC, id ASC")
}
