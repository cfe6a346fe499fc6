// File: /controllers/user_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventfdr-api/repositories"
	"eventfdr-api/utils"
)

type UserController struct {
	users repositories.UserRepository
}

func NewUserController(users repositories.UserRepository) *UserController {
	return &UserController{users: users}
}

func (uc *UserController) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := uc.users.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	user.Password = ""
	utils.SendSuccess(c, user)
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	var req struct {
		Name   *string `json:"name"`
		Phone  *string `json:"phone"`
		Avatar *string `json:"avatar"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		if *req.Phone != "" && !utils.IsValidPhone(*req.Phone) {
			utils.SendValidationError(c, "invalid phone number")
			return
		}
		updates["phone"] = *req.Phone
	}
	if req.Avatar != nil {
		updates["avatar"] = req.Avatar
	}

	user, err := uc.users.Update(userID, updates)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			utils.SendError(c, http.StatusNotFound, "User not found")
			return
		}
		utils.SendError(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	user.Password = ""
	utils.SendSuccessMessage(c, "Profile updated successfully", user)
}
