package auth

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/mutantboi/blog-core/internal/middleware"
	"github.com/mutantboi/blog-core/internal/models"
	"github.com/mutantboi/blog-core/internal/pkg/jwt"
	"github.com/mutantboi/blog-core/internal/pkg/response"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var errInvalidCredentials = errors.New("invalid credentials")

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type userResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	DisplayName string `json:"displayName,omitempty"`
}

func toUserResponse(u *models.UserModel) userResponse {
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		Role:        u.Role,
		DisplayName: u.DisplayName,
	}
}

type Service struct{ db *gorm.DB }

func NewService(db *gorm.DB) *Service { return &Service{db: db} }

// Login verifies the credentials and issues a signed token. A missing
// user and a wrong password are indistinguishable to the caller.
func (s *Service) Login(dto *LoginDTO) (string, *models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, "username = ?", dto.Username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, errInvalidCredentials
		}
		return "", nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(dto.Password)) != nil {
		return "", nil, errInvalidCredentials
	}

	token, err := jwt.Sign(user.ID)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

type Handler struct{ svc *Service }

func NewHandler(svc *Service) *Handler { return &Handler{svc: svc} }

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	g := rg.Group("/auth")
	g.POST("/login", h.login)
	g.GET("/me", authMW, h.me)
}

// POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	token, user, err := h.svc.Login(&dto)
	if err != nil {
		if errors.Is(err, errInvalidCredentials) {
			response.UnauthorizedMsg(c, "Invalid credentials")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.OK(c, gin.H{"token": token, "user": toUserResponse(user)})
}

// GET /auth/me
func (h *Handler) me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		response.Unauthorized(c)
		return
	}
	response.OK(c, toUserResponse(user))
}
