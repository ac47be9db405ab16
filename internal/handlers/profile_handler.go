package handlers

import (
	"net/http"

	"joblink_backend/internal/services"
	"joblink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/employee-profile", h.CompleteEmployeeProfile)
	rg.POST("/employer-profile", h.CompleteEmployerProfile)
}

// CompleteEmployeeProfile godoc
// @Summary      Create or update the employee profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        request body dto.EmployeeProfileRequest true "Profile payload"
// @Success      200 {object} map[string]interface{}
// @Router       /employee-profile [post]
func (h *ProfileHandler) CompleteEmployeeProfile(c *gin.Context) {
	var req dto.EmployeeProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.CompleteEmployeeProfile(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Employee profile created successfully",
		"profile": profile,
	})
}

// CompleteEmployerProfile godoc
// @Summary      Create or update the employer profile
// @Tags         profiles
// @Accept       json
// @Produce      json
// @Param        request body dto.EmployerProfileRequest true "Profile payload"
// @Success      200 {object} map[string]interface{}
// @Router       /employer-profile [post]
func (h *ProfileHandler) CompleteEmployerProfile(c *gin.Context) {
	var req dto.EmployerProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	profile, err := h.profileService.CompleteEmployerProfile(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Employer profile created successfully",
		"profile": profile,
	})
}
