package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/leadradar/leadradar-api/internal/application"
	"github.com/leadradar/leadradar-api/internal/config"
	"github.com/leadradar/leadradar-api/internal/domain/user"
	"github.com/leadradar/leadradar-api/pkg/metrics"
	"github.com/leadradar/leadradar-api/pkg/response"
	"github.com/leadradar/leadradar-api/pkg/utils"
)

type UserHandler struct {
	svc *application.UserService
	m   *metrics.Metrics
}

func NewUserHandler(svc *application.UserService, m *metrics.Metrics) *UserHandler {
	return &UserHandler{svc: svc, m: m}
}

// Login godoc
// @Summary Sign in with email and password
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param email formData string true "Email"
// @Param password formData string true "Password"
// @Param redirectTo formData string false "Post-login redirect target"
// @Success 200 {object} response.TokenResponse "Session token and user info"
// @Success 303 "Redirect to redirectTo after setting the session cookie"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 401 {object} response.ErrorResponse "Invalid email or password"
// @Router /api/auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginInput
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	u, token, err := h.svc.LoginUser(req.Email, req.Password)
	if err != nil {
		if h.m != nil {
			h.m.RecordLoginAttempt(false)
		}
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid email or password"})
		return
	}
	if h.m != nil {
		h.m.RecordLoginAttempt(true)
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		config.SessionCookieName,
		token,
		config.SessionMaxAgeDays*24*3600,
		"/",
		"",
		config.IsProduction, // Secure only in production
		true,
	)

	if req.RedirectTo != "" {
		c.Redirect(http.StatusSeeOther, req.RedirectTo)
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:     token,
		UID:       u.ID,
		AccountID: u.AccountID,
		Email:     u.Email,
	})
}

// Register godoc
// @Summary Register a new account with its owner user
// @Tags auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param input body user.RegisterInput true "Account registration info"
// @Success 201 {object} response.MessageResponse "Account registered successfully"
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Email already registered"
// @Failure 500 {object} response.ErrorResponse "Failed to register account"
// @Router /api/auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.RegisterInput

	if err := c.ShouldBind(&input); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			msgs := make([]string, 0, len(verr))

			labels := map[string]string{
				"AccountName": "account name",
				"Email":       "email",
				"Name":        "name",
				"Password":    "password",
			}

			for _, fe := range verr {
				field := fe.StructField()
				lbl, ok := labels[field]
				if !ok {
					lbl = strings.ToLower(field)
				}

				var msg string
				switch fe.Tag() {
				case "required":
					msg = fmt.Sprintf("%s is required", lbl)
				case "min":
					msg = fmt.Sprintf("%s must be at least %s characters", lbl, fe.Param())
				case "email":
					msg = fmt.Sprintf("%s must be a valid email address", lbl)
				default:
					msg = fmt.Sprintf("%s is invalid", lbl)
				}
				msgs = append(msgs, msg)
			}

			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: strings.Join(msgs, "; ")})
			return
		}

		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "Invalid input"})
		return
	}

	if _, err := h.svc.RegisterAccount(input); err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
		} else {
			c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, response.MessageResponse{Message: "Account registered successfully"})
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} response.MessageResponse "Logout successful"
// @Router /api/auth/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	c.SetCookie(
		config.SessionCookieName,
		"",
		-1,
		"/",
		"",
		false,
		true,
	)

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Logout successful"})
}

// Me godoc
// @Summary Current session user
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} user.User
// @Failure 401 {object} response.ErrorResponse "Unauthorized"
// @Router /api/auth/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
		return
	}

	u, err := h.svc.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: "User not found"})
		return
	}
	c.JSON(http.StatusOK, u)
}
