package contact

import (
	"github.com/gin-gonic/gin"
	"github.com/mutantboi/blog-core/internal/models"
	"github.com/mutantboi/blog-core/internal/pkg/mail"
	"github.com/mutantboi/blog-core/internal/pkg/pagination"
	"github.com/mutantboi/blog-core/internal/pkg/response"
	"go.uber.org/zap"
)

type Handler struct {
	svc      *Service
	sender   *mail.Sender
	siteName string
	log      *zap.Logger
}

func NewHandler(svc *Service, sender *mail.Sender, siteName string, log *zap.Logger) *Handler {
	return &Handler{svc: svc, sender: sender, siteName: siteName, log: log}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, rateMW, authMW, adminMW gin.HandlerFunc) {
	g := rg.Group("/contact")

	g.POST("", rateMW, h.create)

	a := g.Group("", authMW, adminMW)
	a.GET("", h.list)
	a.PUT("/:id/read", h.markRead)
	a.PUT("/:id/replied", h.markReplied)
}

// POST /contact
func (h *Handler) create(c *gin.Context) {
	var dto CreateMessageDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	msg, err := h.svc.Create(&dto, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		response.InternalError(c, err)
		return
	}

	// Emails go out after the response; a mail outage must not lose
	// the stored message.
	go h.notify(msg)

	response.Created(c, gin.H{"success": true, "message": "Message sent successfully"})
}

func (h *Handler) notify(msg *models.ContactMessageModel) {
	if err := h.sender.SendContactNotify(mail.ContactNotifyData{
		Name:    msg.Name,
		Email:   msg.Email,
		Subject: msg.Subject,
		Message: msg.Message,
	}); err != nil {
		h.log.Warn("contact notification failed", zap.String("message", msg.ID), zap.Error(err))
	}
	if err := h.sender.SendAutoReply(msg.Email, msg.Subject, mail.AutoReplyData{
		Name:     msg.Name,
		SiteName: h.siteName,
	}); err != nil {
		h.log.Warn("contact auto-reply failed", zap.String("message", msg.ID), zap.Error(err))
	}
}

// GET /contact?page=&limit=&unread=true
func (h *Handler) list(c *gin.Context) {
	q := pagination.FromContext(c)
	unreadOnly := c.Query("unread") == "true"

	msgs, meta, err := h.svc.List(q, unreadOnly)
	if err != nil {
		response.InternalError(c, err)
		return
	}

	out := make([]messageResponse, len(msgs))
	for i := range msgs {
		out[i] = toResponse(&msgs[i])
	}
	response.OK(c, gin.H{
		"messages":      out,
		"totalPages":    meta.TotalPages,
		"currentPage":   meta.CurrentPage,
		"totalMessages": meta.Total,
	})
}

// PUT /contact/:id/read
func (h *Handler) markRead(c *gin.Context) {
	msg, err := h.svc.MarkRead(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if msg == nil {
		response.NotFound(c, "Message not found")
		return
	}
	response.OK(c, toResponse(msg))
}

// PUT /contact/:id/replied
func (h *Handler) markReplied(c *gin.Context) {
	msg, err := h.svc.MarkReplied(c.Param("id"))
	if err != nil {
		response.InternalError(c, err)
		return
	}
	if msg == nil {
		response.NotFound(c, "Message not found")
		return
	}
	response.OK(c, toResponse(msg))
}
