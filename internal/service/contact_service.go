package service

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/abcsitio/internal/db"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	// ErrFieldsRequired reports a contact submission with a missing field.
	ErrFieldsRequired = errors.New("name, email and message are required")
	// ErrMessageNotFound reports an operation on a message id that does not exist.
	ErrMessageNotFound = errors.New("contact message not found")
)

// DefaultMessagePageSize matches the admin inbox page size.
const DefaultMessagePageSize = 10

// ContactInput carries the three public form fields.
type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// MessagePage is one page of the admin inbox plus the global counters.
type MessagePage struct {
	Items       []db.ContactMessage `json:"items"`
	TotalCount  int64               `json:"total_count"`
	UnreadCount int64               `json:"unread_count"`
	TotalPages  int                 `json:"total_pages"`
	Page        int                 `json:"page"`
}

// ContactService handles contact form submissions and the admin inbox.
type ContactService struct {
	db *gorm.DB
}

// NewContactService returns a new ContactService instance.
func NewContactService(gdb *gorm.DB) *ContactService {
	return &ContactService{db: gdb}
}

// Submit validates and stores one contact message. Validation runs before
// anything touches the data layer; a submission with any empty field never
// reaches the store.
func (s *ContactService) Submit(input ContactInput) (*db.ContactMessage, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	message := strings.TrimSpace(input.Message)

	if name == "" || email == "" || message == "" {
		return nil, ErrFieldsRequired
	}

	row := db.ContactMessage{
		ID:      uuid.NewString(),
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.db.Create(&row).Error; err != nil {
		return nil, fmt.Errorf("store contact message: %w", err)
	}
	return &row, nil
}

// List returns one page of messages, newest first, together with the total
// and unread counters. Pages are 1-indexed; out-of-range pages clamp to 1.
func (s *ContactService) List(page, pageSize int) (MessagePage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultMessagePageSize
	}

	var total int64
	if err := s.db.Model(&db.ContactMessage{}).Count(&total).Error; err != nil {
		return MessagePage{}, fmt.Errorf("count contact messages: %w", err)
	}

	var unread int64
	if err := s.db.Model(&db.ContactMessage{}).Where("is_read = ?", false).Count(&unread).Error; err != nil {
		return MessagePage{}, fmt.Errorf("count unread messages: %w", err)
	}

	var items []db.ContactMessage
	offset := (page - 1) * pageSize
	if err := s.db.Order("created_at DESC, id DESC").
		Limit(pageSize).
		Offset(offset).
		Find(&items).Error; err != nil {
		return MessagePage{}, fmt.Errorf("list contact messages: %w", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))
	if totalPages < 1 {
		totalPages = 1
	}

	return MessagePage{
		Items:       items,
		TotalCount:  total,
		UnreadCount: unread,
		TotalPages:  totalPages,
		Page:        page,
	}, nil
}

// ToggleRead flips the read flag of one message. Toggling twice returns the
// message to its original state.
func (s *ContactService) ToggleRead(id string) (*db.ContactMessage, error) {
	var row db.ContactMessage
	if err := s.db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMessageNotFound
		}
		return nil, fmt.Errorf("load contact message: %w", err)
	}

	row.IsRead = !row.IsRead
	if err := s.db.Model(&db.ContactMessage{}).Where("id = ?", id).Update("is_read", row.IsRead).Error; err != nil {
		return nil, fmt.Errorf("update contact message: %w", err)
	}
	return &row, nil
}

// Delete removes one message. Deleting an id that no longer exists still
// succeeds.
func (s *ContactService) Delete(id string) error {
	if err := s.db.Where("id = ?", id).Delete(&db.ContactMessage{}).Error; err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}
	return nil
}

// UnreadCount returns the number of unread messages for the dashboard badge.
func (s *ContactService) UnreadCount() (int64, error) {
	var unread int64
	if err := s.db.Model(&db.ContactMessage{}).Where("is_read = ?", false).Count(&unread).Error; err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return unread, nil
}

// TotalCount returns the number of stored messages.
func (s *ContactService) TotalCount() (int64, error) {
	var total int64
	if err := s.db.Model(&db.ContactMessage{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count contact messages: %w", err)
	}
	return total, nil
}
