// File: /controllers/auth_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"eventfdr-api/models"
	"eventfdr-api/repositories"
	"eventfdr-api/services"
	"eventfdr-api/utils"
)

type AuthController struct {
	users        repositories.UserRepository
	jwtSecret    string
	emailService *services.EmailService
}

func NewAuthController(users repositories.UserRepository, jwtSecret string, emailService *services.EmailService) *AuthController {
	return &AuthController{
		users:        users,
		jwtSecret:    jwtSecret,
		emailService: emailService,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register creates a user account. Duplicate emails are a conflict.
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if req.Phone != "" && !utils.IsValidPhone(req.Phone) {
		utils.SendValidationError(c, "invalid phone number")
		return
	}

	if _, err := ac.users.GetByEmail(email); err == nil {
		utils.SendError(c, http.StatusConflict, "An account with this email already exists")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		ID:       "user-" + utils.NewID(),
		Name:     req.Name,
		Email:    email,
		Password: string(hashedPassword),
		Phone:    req.Phone,
	}

	if err := ac.users.Create(&user); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	if ac.emailService != nil {
		go func() {
			if err := ac.emailService.SendWelcomeEmail(user.Email, user.Name); err != nil {
				log.Printf("Failed to send welcome email: %v", err)
			}
		}()
	}

	user.Password = ""
	c.JSON(http.StatusCreated, utils.APIResponse{
		Success: true,
		Message: "Registration successful",
		Data:    user,
	})
}

// Login checks credentials and issues a JWT.
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := ac.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		utils.SendError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := ac.generateJWT(user)
	if err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	user.Password = ""
	utils.SendSuccess(c, AuthResponse{
		Token: token,
		User:  *user,
	})
}

// Logout is client-side in a stateless JWT setup.
func (ac *AuthController) Logout(c *gin.Context) {
	utils.SendSuccessMessage(c, "Successfully logged out", nil)
}

func (ac *AuthController) generateJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.ID,
		"email":     user.Email,
		"user_name": user.Name,
		"exp":       time.Now().Add(time.Hour * 24 * 7).Unix(), // 7 days
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(ac.jwtSecret))
}
