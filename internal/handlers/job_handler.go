package handlers

import (
	"net/http"

	"joblink_backend/internal/services"
	"joblink_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/jobs", h.CreateJob)
	rg.GET("/jobs", h.ListJobs)
	rg.GET("/jobs/:id", h.GetJob)
	rg.PUT("/jobs/:id", h.UpdateJob)
	rg.DELETE("/jobs/:id", h.DeleteJob)
	rg.GET("/employer/:employerId/jobs", h.ListEmployerJobs)
}

// CreateJob godoc
// @Summary      Post a new job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateJobRequest true "Job payload"
// @Success      201 {object} map[string]interface{}
// @Router       /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Job posted successfully",
		"job":     job,
	})
}

// ListJobs godoc
// @Summary      List jobs with optional filters
// @Tags         jobs
// @Produce      json
// @Param        search   query string false "Substring match on title, company or description"
// @Param        location query string false "Substring match on location"
// @Param        type     query string false "Exact job type"
// @Param        status   query string false "Job status, defaults to active"
// @Success      200 {object} map[string]interface{}
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var query dto.JobFilterQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	jobs, err := h.jobService.ListJobs(&query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"jobs":    jobs,
	})
}

// GetJob godoc
// @Summary      Fetch a single job
// @Tags         jobs
// @Produce      json
// @Param        id path string true "Job ID"
// @Success      200 {object} map[string]interface{}
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.jobService.GetJob(c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"job":     job,
	})
}

// UpdateJob godoc
// @Summary      Update job fields
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id      path string               true "Job ID"
// @Param        request body dto.UpdateJobRequest true "Fields to change"
// @Success      200 {object} map[string]interface{}
// @Router       /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job updated successfully",
		"job":     job,
	})
}

// DeleteJob godoc
// @Summary      Delete a job
// @Tags         jobs
// @Produce      json
// @Param        id         path  string true  "Job ID"
// @Param        employerId query string false "Acting employer, checked against the job owner when present"
// @Success      200 {object} map[string]interface{}
// @Router       /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.jobService.DeleteJob(c.Param("id"), c.Query("employerId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job deleted successfully",
	})
}

// ListEmployerJobs godoc
// @Summary      List jobs posted by one employer
// @Tags         jobs
// @Produce      json
// @Param        employerId path string true "Employer ID"
// @Success      200 {object} map[string]interface{}
// @Router       /employer/{employerId}/jobs [get]
func (h *JobHandler) ListEmployerJobs(c *gin.Context) {
	jobs, err := h.jobService.ListEmployerJobs(c.Param("employerId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"jobs":    jobs,
	})
}
