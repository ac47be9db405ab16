package handlers

import (
	"net/http"

	"joblink_backend/internal/services"
	"joblink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SavedJobHandler struct {
	*BaseHandler
	savedJobService services.SavedJobService
}

func NewSavedJobHandler(base *BaseHandler, savedJobService services.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{
		BaseHandler:     base,
		savedJobService: savedJobService,
	}
}

func (h *SavedJobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/saved-jobs", h.Save)
	rg.DELETE("/saved-jobs/:id", h.Unsave)
	rg.GET("/user/:userId/saved-jobs", h.ListByUser)
}

// Save godoc
// @Summary      Save a job for later
// @Tags         saved-jobs
// @Accept       json
// @Produce      json
// @Param        request body dto.SaveJobRequest true "Save payload"
// @Success      201 {object} map[string]interface{}
// @Router       /saved-jobs [post]
func (h *SavedJobHandler) Save(c *gin.Context) {
	var req dto.SaveJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	savedJob, err := h.savedJobService.Save(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Job saved successfully",
		"savedJob": savedJob,
	})
}

// Unsave godoc
// @Summary      Remove a saved job
// @Tags         saved-jobs
// @Produce      json
// @Param        id path string true "Saved job ID"
// @Success      200 {object} map[string]interface{}
// @Router       /saved-jobs/{id} [delete]
func (h *SavedJobHandler) Unsave(c *gin.Context) {
	if err := h.savedJobService.Unsave(c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job removed from saved",
	})
}

// ListByUser godoc
// @Summary      List a user's saved jobs
// @Tags         saved-jobs
// @Produce      json
// @Param        userId path string true "User ID"
// @Success      200 {object} map[string]interface{}
// @Router       /user/{userId}/saved-jobs [get]
func (h *SavedJobHandler) ListByUser(c *gin.Context) {
	savedJobs, err := h.savedJobService.List(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"savedJobs": savedJobs,
	})
}
