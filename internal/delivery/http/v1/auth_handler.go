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

type AuthHandler struct {
	authUC domain.AuthUsecase
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, limiter gin.HandlerFunc) {
	handler := &AuthHandler{authUC: authUC}

	public.POST("/register", limiter, handler.Register)
	public.POST("/login", limiter, handler.Login)

	protected.GET("/profile", handler.Profile)
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"required,oneof=worker employer admin"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Register godoc
// @Summary      User Registration
// @Description  Register a new account. The role is fixed at registration.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        register  body      RegisterRequest  true  "Registration Details"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(validation.Format(err)))
		return
	}

	user := &domain.User{
		Username: req.Username,
		Email:    req.Email,
		Role:     req.Role,
		FullName: req.FullName,
		Phone:    req.Phone,
		Location: req.Location,
	}

	token, err := h.authUC.Register(c.Request.Context(), user, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "User created successfully", gin.H{
		"token": token,
		"user":  user,
	})
}

// Login godoc
// @Summary      User Login
// @Description  Login with username (or email) and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login  body      LoginRequest  true  "Login Credentials"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Username and password required"))
		return
	}

	token, user, err := h.authUC.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Profile godoc
// @Summary      Current user's profile
// @Description  Returns the authenticated user plus their CV profile (null when absent)
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile [get]
// @Security     BearerAuth
func (h *AuthHandler) Profile(c *gin.Context) {
	profile, err := h.authUC.GetProfile(c.Request.Context(), middleware.CallerID(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile", profile)
}
