package invitationhttp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civicteams/server/internal/adapter/inbound/http/common"
	"github.com/civicteams/server/internal/port/inbound"
)

// Handler serves the invitation broker.
type Handler struct {
	invitations inbound.InvitationDomain
}

// NewHandler creates a new invitation handler.
func NewHandler(invitations inbound.InvitationDomain) *Handler {
	return &Handler{invitations: invitations}
}

// RegisterRoutes registers invitation routes. Every route requires auth.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	r.POST("/teams/:id/invitations", auth, h.Invite)

	invitations := r.Group("/invitations", auth)
	{
		invitations.GET("", h.ListInvitations)
		invitations.POST("/:id/respond", h.Respond)
	}
}

// Invite handles POST /teams/:id/invitations.
//
//	@Summary	Invite a user to the team
//	@Tags		Invitation
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Team ID"
//	@Param		request	body		inbound.InviteInput	true	"Recipient"
//	@Success	201		{object}	model.Invitation
//	@Failure	403		{object}	common.ErrorResponse
//	@Failure	409		{object}	common.ErrorResponse
//	@Router		/teams/{id}/invitations [post]
func (h *Handler) Invite(c *gin.Context) {
	senderID, ok := common.CurrentUser(c)
	if !ok {
		return
	}
	teamID, ok := common.ParseID(c, "id")
	if !ok {
		return
	}

	var req inbound.InviteInput
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BadRequest(c, err.Error())
		return
	}

	inv, err := h.invitations.Invite(c.Request.Context(), teamID, req.RecipientID, senderID)
	if err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// ListInvitations handles GET /invitations.
//
//	@Summary	List pending invitations addressed to the caller
//	@Tags		Invitation
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	model.Invitation
//	@Router		/invitations [get]
func (h *Handler) ListInvitations(c *gin.Context) {
	userID, ok := common.CurrentUser(c)
	if !ok {
		return
	}

	invitations, err := h.invitations.ListInvitations(c.Request.Context(), userID)
	if err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, invitations)
}

// Respond handles POST /invitations/:id/respond.
//
//	@Summary		Accept or decline an invitation
//	@Description	Either answer consumes the invitation
//	@Tags			Invitation
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string					true	"Invitation ID"
//	@Param			request	body		inbound.RespondInput	true	"Decision"
//	@Success		200		{object}	inbound.RespondOutput
//	@Failure		403		{object}	common.ErrorResponse
//	@Failure		404		{object}	common.ErrorResponse
//	@Failure		409		{object}	common.ErrorResponse
//	@Router			/invitations/{id}/respond [post]
func (h *Handler) Respond(c *gin.Context) {
	userID, ok := common.CurrentUser(c)
	if !ok {
		return
	}
	invitationID, ok := common.ParseID(c, "id")
	if !ok {
		return
	}

	var req inbound.RespondInput
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BadRequest(c, err.Error())
		return
	}

	out, err := h.invitations.Respond(c.Request.Context(), invitationID, userID, req.Decision)
	if err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
