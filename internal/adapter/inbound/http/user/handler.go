package userhttp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civicteams/server/internal/adapter/inbound/http/common"
	"github.com/civicteams/server/internal/port/inbound"
)

// Handler serves the user directory.
type Handler struct {
	users inbound.UserDomain
	teams inbound.TeamDomain
}

// NewHandler creates a new user handler.
func NewHandler(users inbound.UserDomain, teams inbound.TeamDomain) *Handler {
	return &Handler{users: users, teams: teams}
}

// RegisterRoutes registers user routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.POST("", h.Register)
		users.GET("", h.ListUsers)
		users.GET("/:id", h.GetUser)
		users.GET("/:id/team", h.GetUserTeam)
	}
}

// Register handles user registration.
//
//	@Summary		Register user
//	@Description	Create a citizen or business user profile
//	@Tags			User
//	@Accept			json
//	@Produce		json
//	@Param			request	body		inbound.RegisterUserInput	true	"User profile"
//	@Success		201		{object}	model.User
//	@Failure		400		{object}	common.ErrorResponse
//	@Failure		409		{object}	common.ErrorResponse
//	@Router			/users [post]
func (h *Handler) Register(c *gin.Context) {
	var req inbound.RegisterUserInput
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BadRequest(c, err.Error())
		return
	}

	u, err := h.users.Register(c.Request.Context(), &req)
	if err != nil {
		common.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, u)
}

// ListUsers handles GET /users.
//
//	@Summary	List users
//	@Tags		User
//	@Produce	json
//	@Success	200	{array}	model.User
//	@Router		/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.users.ListUsers(c.Request.Context())
	if err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /users/:id.
//
//	@Summary	Get user
//	@Tags		User
//	@Produce	json
//	@Param		id	path		string	true	"User ID"
//	@Success	200	{object}	model.User
//	@Failure	404	{object}	common.ErrorResponse
//	@Router		/users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}

	u, err := h.users.GetUser(c.Request.Context(), id)
	if err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// GetUserTeam handles GET /users/:id/team.
//
//	@Summary	Get the team a user belongs to
//	@Tags		User
//	@Produce	json
//	@Param		id	path		string	true	"User ID"
//	@Success	200	{object}	model.Team
//	@Failure	404	{object}	common.ErrorResponse
//	@Router		/users/{id}/team [get]
func (h *Handler) GetUserTeam(c *gin.Context) {
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}

	team, err := h.teams.GetTeamOfUser(c.Request.Context(), id)
	if err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}
