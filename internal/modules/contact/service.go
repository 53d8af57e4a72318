package contact

import (
	"errors"

	"github.com/mutantboi/blog-core/internal/models"
	"github.com/mutantboi/blog-core/internal/pkg/pagination"
	"gorm.io/gorm"
)

// Service handles contact message persistence.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Create stores a submitted contact message together with its request
// metadata.
func (s *Service) Create(dto *CreateMessageDTO, ip, userAgent string) (*models.ContactMessageModel, error) {
	msg := models.ContactMessageModel{
		Name:      dto.Name,
		Email:     dto.Email,
		Subject:   dto.Subject,
		Message:   dto.Message,
		IPAddress: ip,
		UserAgent: userAgent,
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// List returns messages newest first, optionally only unread ones.
func (s *Service) List(q pagination.Query, unreadOnly bool) ([]models.ContactMessageModel, pagination.Meta, error) {
	tx := s.db.Model(&models.ContactMessageModel{}).Order("created_at DESC, id DESC")
	if unreadOnly {
		tx = tx.Where("is_read = ?", false)
	}
	var msgs []models.ContactMessageModel
	meta, err := pagination.Paginate(tx, q, &msgs)
	return msgs, meta, err
}

// MarkRead flags a message as read.
func (s *Service) MarkRead(id string) (*models.ContactMessageModel, error) {
	return s.setFlag(id, "is_read")
}

// MarkReplied flags a message as replied, which implies read.
func (s *Service) MarkReplied(id string) (*models.ContactMessageModel, error) {
	msg, err := s.setFlag(id, "is_replied")
	if err != nil || msg == nil {
		return msg, err
	}
	if !msg.IsRead {
		return s.setFlag(id, "is_read")
	}
	return msg, nil
}

func (s *Service) setFlag(id, column string) (*models.ContactMessageModel, error) {
	var msg models.ContactMessageModel
	if err := s.db.First(&msg, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if err := s.db.Model(&msg).Update(column, true).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}
