package v1

import (
	"net/http"

	"cv360-backend/internal/delivery/http/middleware"
	"cv360-backend/internal/delivery/http/response"
	"cv360-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	adminUC domain.AdminUsecase
}

func NewAdminHandler(protected *gin.RouterGroup, adminUC domain.AdminUsecase) {
	handler := &AdminHandler{adminUC: adminUC}

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole(domain.RoleAdmin))
	{
		admin.GET("/stats", handler.Stats)
		admin.GET("/users", handler.Users)
		admin.GET("/users/export", handler.ExportUsers)
	}
}

// Stats godoc
// @Summary      Dashboard statistics
// @Description  Admin only. Fresh aggregate counts over the store.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/stats [get]
// @Security     BearerAuth
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.adminUC.GetStats(c)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Statistics", stats)
}

// Users godoc
// @Summary      List all users
// @Description  Admin only. Public fields only, never the password hash.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/users [get]
// @Security     BearerAuth
func (h *AdminHandler) Users(c *gin.Context) {
	users, err := h.adminUC.ListUsers(c)
	if err != nil {
		c.Error(err)
		return
	}

	if users == nil {
		users = []domain.UserSummary{}
	}
	response.Success(c, http.StatusOK, "User list", users)
}

// ExportUsers godoc
// @Summary      Export users as XLSX
// @Description  Admin only. Downloads the user listing as a spreadsheet.
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/users/export [get]
// @Security     BearerAuth
func (h *AdminHandler) ExportUsers(c *gin.Context) {
	data, filename, err := h.adminUC.ExportUsers(c)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
