package handlers

import (
	"net/http"

	"joblink_backend/internal/services"
	"joblink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/applications", h.Apply)
	rg.PUT("/applications/:id", h.UpdateStatus)
	rg.GET("/user/:userId/applications", h.ListByApplicant)
	rg.GET("/job/:jobId/applications", h.ListByJob)
}

// Apply godoc
// @Summary      Apply to a job
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        request body dto.ApplyRequest true "Application payload"
// @Success      201 {object} map[string]interface{}
// @Router       /applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.Apply(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"message":     "Application submitted successfully",
		"application": application,
	})
}

// UpdateStatus godoc
// @Summary      Move an application through the review pipeline
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id      path string                              true "Application ID"
// @Param        request body dto.UpdateApplicationStatusRequest true "New status"
// @Success      200 {object} map[string]interface{}
// @Router       /applications/{id} [put]
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	application, err := h.applicationService.UpdateStatus(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Application status updated",
		"application": application,
	})
}

// ListByApplicant godoc
// @Summary      List applications submitted by a user
// @Tags         applications
// @Produce      json
// @Param        userId path string true "Applicant ID"
// @Success      200 {object} map[string]interface{}
// @Router       /user/{userId}/applications [get]
func (h *ApplicationHandler) ListByApplicant(c *gin.Context) {
	applications, err := h.applicationService.ListByApplicant(c.Param("userId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"applications": applications,
	})
}

// ListByJob godoc
// @Summary      List applications received for a job
// @Tags         applications
// @Produce      json
// @Param        jobId path string true "Job ID"
// @Success      200 {object} map[string]interface{}
// @Router       /job/{jobId}/applications [get]
func (h *ApplicationHandler) ListByJob(c *gin.Context) {
	applications, err := h.applicationService.ListByJob(c.Param("jobId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"applications": applications,
	})
}
