package teamhttp

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/civicteams/server/internal/adapter/inbound/http/common"
	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/inbound"
)

// DisbandResponse reports the issue a disbanded team released, if any.
type DisbandResponse struct {
	Message       string       `json:"message"`
	ReleasedIssue *model.Issue `json:"released_issue,omitempty"`
}

// Handler serves team registry and assignment routes.
type Handler struct {
	teams       inbound.TeamDomain
	assignments inbound.AssignmentDomain
}

// NewHandler creates a new team handler.
func NewHandler(teams inbound.TeamDomain, assignments inbound.AssignmentDomain) *Handler {
	return &Handler{teams: teams, assignments: assignments}
}

// RegisterRoutes registers team routes. auth guards every mutating route.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	teams := r.Group("/teams")
	{
		teams.GET("", h.ListTeams)
		teams.GET("/:id", h.GetTeam)

		teams.POST("", auth, h.CreateTeam)
		teams.DELETE("/:id", auth, h.Disband)
		teams.POST("/:id/members", auth, h.AddMember)
		teams.DELETE("/:id/members/:user_id", auth, h.RemoveMember)
		teams.POST("/:id/leave", auth, h.LeaveTeam)

		teams.POST("/:id/issue", auth, h.AssignIssue)
		teams.DELETE("/:id/issue", auth, h.UnassignIssue)
		teams.POST("/:id/issue/resolve", auth, h.ResolveIssue)
	}
}

// CreateTeam handles POST /teams.
//
//	@Summary		Create team
//	@Description	Create a team led by the caller
//	@Tags			Team
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		inbound.CreateTeamInput	true	"Team"
//	@Success		201		{object}	model.Team
//	@Failure		400		{object}	common.ErrorResponse
//	@Failure		403		{object}	common.ErrorResponse
//	@Failure		409		{object}	common.ErrorResponse
//	@Router			/teams [post]
func (h *Handler) CreateTeam(c *gin.Context) {
	userID, ok := common.CurrentUser(c)
	if !ok {
		return
	}

	var req inbound.CreateTeamInput
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BadRequest(c, err.Error())
		return
	}

	team, err := h.teams.CreateTeam(c.Request.Context(), userID, &req)
	if err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, team)
}

// ListTeams handles GET /teams.
//
//	@Summary	List teams
//	@Tags		Team
//	@Produce	json
//	@Success	200	{array}	model.Team
//	@Router		/teams [get]
func (h *Handler) ListTeams(c *gin.Context) {
	teams, err := h.teams.ListTeams(c.Request.Context())
	if err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

// GetTeam handles GET /teams/:id.
//
//	@Summary	Get team
//	@Tags		Team
//	@Produce	json
//	@Param		id	path		string	true	"Team ID"
//	@Success	200	{object}	model.Team
//	@Failure	404	{object}	common.ErrorResponse
//	@Router		/teams/{id} [get]
func (h *Handler) GetTeam(c *gin.Context) {
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}

	team, err := h.teams.GetTeam(c.Request.Context(), id)
	if err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// Disband handles DELETE /teams/:id.
//
//	@Summary		Disband team
//	@Description	Delete the team; its current issue returns to Reported
//	@Tags			Team
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Team ID"
//	@Success		200	{object}	DisbandResponse
//	@Failure		403	{object}	common.ErrorResponse
//	@Failure		404	{object}	common.ErrorResponse
//	@Router			/teams/{id} [delete]
func (h *Handler) Disband(c *gin.Context) {
	userID, ok := common.CurrentUser(c)
	if !ok {
		return
	}
	teamID, ok := common.ParseID(c, "id")
	if !ok {
		return
	}

	released, err := h.teams.Disband(c.Request.Context(), teamID, userID)
	if err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, DisbandResponse{Message: "team disbanded", ReleasedIssue: released})
}

// AddMember handles POST /teams/:id/members.
//
//	@Summary	Add member
//	@Tags		Team
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string					true	"Team ID"
//	@Param		request	body		inbound.AddMemberInput	true	"Member"
//	@Success	200		{object}	model.Team
//	@Failure	403		{object}	common.ErrorResponse
//	@Failure	409		{object}	common.ErrorResponse
//	@Router		/teams/{id}/members [post]
func (h *Handler) AddMember(c *gin.Context) {
	userID, ok := common.CurrentUser(c)
	if !ok {
		return
	}
	teamID, ok := common.ParseID(c, "id")
	if !ok {
		return
	}

	var req inbound.AddMemberInput
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BadRequest(c, err.Error())
		return
	}

	team, err := h.teams.AddMember(c.Request.Context(), teamID, req.UserID, userID)
	if err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// RemoveMember handles DELETE /teams/:id/members/:user_id.
//
//	@Summary	Remove member
//	@Tags		Team
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string	true	"Team ID"
//	@Param		user_id	path		string	true	"Member user ID"
//	@Success	200		{object}	model.Team
//	@Failure	403		{object}	common.ErrorResponse
//	@Failure	404		{object}	common.ErrorResponse
//	@Router		/teams/{id}/members/{user_id} [delete]
func (h *Handler) RemoveMember(c *gin.Context) {
	actorID, ok := common.CurrentUser(c)
	if !ok {
		return
	}
	teamID, ok := common.ParseID(c, "id")
	if !ok {
		return
	}
	memberID, ok := common.ParseID(c, "user_id")
	if !ok {
		return
	}

	team, err := h.teams.RemoveMember(c.Request.Context(), teamID, memberID, actorID)
	if err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, team)
}

// LeaveTeam handles POST /teams/:id/leave.
//
//	@Summary	Leave team
//	@Tags		Team
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Team ID"
//	@Success	200	{object}	common.MessageResponse
//	@Failure	404	{object}	common.ErrorResponse
//	@Failure	422	{object}	common.ErrorResponse
//	@Router		/teams/{id}/leave [post]
func (h *Handler) LeaveTeam(c *gin.Context) {
	userID, ok := common.CurrentUser(c)
	if !ok {
		return
	}
	teamID, ok := common.ParseID(c, "id")
	if !ok {
		return
	}

	if err := h.teams.LeaveTeam(c.Request.Context(), teamID, userID); err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.MessageResponse{Message: "left team"})
}

// AssignIssue handles POST /teams/:id/issue.
//
//	@Summary		Claim an issue
//	@Description	Make a Reported issue the team's current issue
//	@Tags			Team
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string						true	"Team ID"
//	@Param			request	body		inbound.AssignIssueInput	true	"Issue"
//	@Success		200		{object}	inbound.AssignmentOutput
//	@Failure		403		{object}	common.ErrorResponse
//	@Failure		409		{object}	common.ErrorResponse
//	@Router			/teams/{id}/issue [post]
func (h *Handler) AssignIssue(c *gin.Context) {
	userID, ok := common.CurrentUser(c)
	if !ok {
		return
	}
	teamID, ok := common.ParseID(c, "id")
	if !ok {
		return
	}

	var req inbound.AssignIssueInput
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BadRequest(c, err.Error())
		return
	}

	out, err := h.assignments.AssignIssue(c.Request.Context(), teamID, req.IssueID, userID)
	if err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// UnassignIssue handles DELETE /teams/:id/issue.
//
//	@Summary	Release the current issue
//	@Tags		Team
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Team ID"
//	@Success	200	{object}	inbound.AssignmentOutput
//	@Failure	403	{object}	common.ErrorResponse
//	@Failure	422	{object}	common.ErrorResponse
//	@Router		/teams/{id}/issue [delete]
func (h *Handler) UnassignIssue(c *gin.Context) {
	h.release(c, h.assignments.UnassignIssue)
}

// ResolveIssue handles POST /teams/:id/issue/resolve.
//
//	@Summary		Resolve the current issue
//	@Description	Mark the current issue Resolved and credit every member
//	@Tags			Team
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string	true	"Team ID"
//	@Success		200	{object}	inbound.AssignmentOutput
//	@Failure		403	{object}	common.ErrorResponse
//	@Failure		422	{object}	common.ErrorResponse
//	@Router			/teams/{id}/issue/resolve [post]
func (h *Handler) ResolveIssue(c *gin.Context) {
	h.release(c, h.assignments.ResolveIssue)
}

func (h *Handler) release(c *gin.Context, op func(ctx context.Context, teamID, actorID uuid.UUID) (*inbound.AssignmentOutput, error)) {
	userID, ok := common.CurrentUser(c)
	if !ok {
		return
	}
	teamID, ok := common.ParseID(c, "id")
	if !ok {
		return
	}

	out, err := op(c.Request.Context(), teamID, userID)
	if err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
