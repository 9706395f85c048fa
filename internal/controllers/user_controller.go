package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wallet-tracker-api/internal/dto"
	"wallet-tracker-api/internal/services"
	"wallet-tracker-api/pkg/utils"
)

type UserController struct {
	userService services.UserService
}

func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a user and its wallet
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.APIResponse{data=dto.UserResponse}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /users/register [post]
func (uc *UserController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err)
		return
	}

	user, wallet, err := uc.userService.Register(&req)
	if err != nil {
		utils.SendError(c, err)
		return
	}

	utils.SendSuccessResponse(c, http.StatusCreated, "User registered", dto.ToUserResponse(user, wallet))
}
