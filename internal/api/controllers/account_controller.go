package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"degreedecider/internal/models/request_models"
	"degreedecider/internal/services"
	"degreedecider/pkg/middleware"
	"degreedecider/pkg/utils"
)

type AccountController struct {
	sessionGate services.SessionGate
}

func NewAccountController(sessionGate services.SessionGate) *AccountController {
	return &AccountController{
		sessionGate: sessionGate,
	}
}

// SignUp godoc
// @Summary Register a new account
// @Description Create a confirmed user account with a display name
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Sign-up payload"
// @Success 200 {object} map[string]response_models.UserIdentity
// @Failure 400 {object} utils.ErrorResponse
// @Security AnonKey
// @Router /signup [post]
func (a *AccountController) SignUp(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email, password, and name are required")
		return
	}

	user, err := a.sessionGate.SignUp(c.Request.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"user": user})
}

// SignIn godoc
// @Summary Sign in with email and password
// @Tags Accounts
// @Accept json
// @Produce json
// @Param request body request_models.SignInRequest true "Sign-in payload"
// @Success 200 {object} response_models.Session
// @Failure 401 {object} utils.ErrorResponse
// @Router /signin [post]
func (a *AccountController) SignIn(c *gin.Context) {
	var req request_models.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	session, err := a.sessionGate.SignIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, session)
}

// SignOut godoc
// @Summary Sign out the bearer token's session
// @Tags Accounts
// @Produce json
// @Security BearerAuth
// @Router /signout [post]
func (a *AccountController) SignOut(c *gin.Context) {
	if err := a.sessionGate.SignOut(c.Request.Context(), c.GetString(middleware.AccessTokenKey)); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"success": true})
}

// CurrentSession reports the session behind the bearer token, or null.
func (a *AccountController) CurrentSession(c *gin.Context) {
	session, err := a.sessionGate.GetCurrentSession(c.Request.Context(), middleware.BearerToken(c))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"session": session})
}
