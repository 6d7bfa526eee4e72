package v1

import (
	"net/http"
	"time"

	"cv360-backend/internal/delivery/http/middleware"
	"cv360-backend/internal/delivery/http/response"
	"cv360-backend/internal/domain"
	"cv360-backend/pkg/apperror"
	"cv360-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(protected *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := protected.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.POST("", middleware.RequireRole(domain.RoleEmployer), handler.Create)
	}
}

type CreateJobRequest struct {
	Title           string `json:"title" binding:"required"`
	Description     string `json:"description" binding:"required"`
	Location        string `json:"location" binding:"required"`
	SalaryRange     string `json:"salary_range" binding:"required"`
	JobType         string `json:"job_type" binding:"required"`
	Requirements    string `json:"requirements"`
	IsInternational bool   `json:"is_international"`
	Deadline        string `json:"deadline"` // YYYY-MM-DD
}

// List godoc
// @Summary      List jobs
// @Description  Employers see their own jobs in every approval state; workers and admins see approved jobs only. Newest first.
// @Tags         jobs
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c, middleware.CallerID(c))
	if err != nil {
		c.Error(err)
		return
	}

	if jobs == nil {
		jobs = []domain.JobWithEmployer{}
	}
	response.Success(c, http.StatusOK, "Job list", jobs)
}

// Create godoc
// @Summary      Create a job posting
// @Description  Employer only. New jobs start unapproved.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      CreateJobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Format(err)))
		return
	}

	job := &domain.Job{
		Title:           req.Title,
		Description:     req.Description,
		Location:        req.Location,
		SalaryRange:     req.SalaryRange,
		JobType:         req.JobType,
		Requirements:    req.Requirements,
		IsInternational: req.IsInternational,
	}

	if req.Deadline != "" {
		deadline, err := time.Parse("2006-01-02", req.Deadline)
		if err != nil {
			c.Error(apperror.BadRequest("deadline must be a YYYY-MM-DD date"))
			return
		}
		job.Deadline = &deadline
	}

	if err := h.jobUC.CreateJob(c, middleware.CallerID(c), job); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created successfully", gin.H{
		"job_id": job.ID,
	})
}
