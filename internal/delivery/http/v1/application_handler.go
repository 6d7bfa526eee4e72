package v1

import (
	"net/http"

	"cv360-backend/internal/delivery/http/middleware"
	"cv360-backend/internal/delivery/http/response"
	"cv360-backend/internal/domain"
	"cv360-backend/pkg/apperror"
	"cv360-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
}

func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &ApplicationHandler{applicationUC: applicationUC}

	protected.POST("/applications", middleware.RequireRole(domain.RoleWorker), handler.Create)
}

type ApplyRequest struct {
	JobID   int64  `json:"job_id" binding:"required"`
	Message string `json:"message"`
}

// Create godoc
// @Summary      Apply for a job
// @Description  Worker only. One application per worker per job.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application  body      ApplyRequest  true  "Application JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /applications [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Create(c *gin.Context) {
	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Format(err)))
		return
	}

	app, err := h.applicationUC.Apply(c, middleware.CallerID(c), req.JobID, req.Message)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Application submitted successfully", app)
}
