package contact

import (
	"time"

	"github.com/mutantboi/blog-core/internal/models"
)

type CreateMessageDTO struct {
	Name    string `json:"name"    binding:"required,max=100"`
	Email   string `json:"email"   binding:"required,email"`
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required,max=5000"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IPAddress string    `json:"ipAddress,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	IsRead    bool      `json:"isRead"`
	IsReplied bool      `json:"isReplied"`
	Created   time.Time `json:"createdAt"`
}

func toResponse(m *models.ContactMessageModel) messageResponse {
	return messageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		IPAddress: m.IPAddress,
		UserAgent: m.UserAgent,
		IsRead:    m.IsRead,
		IsReplied: m.IsReplied,
		Created:   m.CreatedAt,
	}
}
