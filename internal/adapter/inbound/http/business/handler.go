package businesshttp

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/civicteams/server/internal/adapter/inbound/http/common"
	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/inbound"
	"github.com/civicteams/server/internal/port/outbound"
	"github.com/civicteams/server/internal/shared/logger"
)

// BusinessResponse is a listing with downloadable URLs for its images.
type BusinessResponse struct {
	*model.Business
	ImageURLs []string `json:"image_urls,omitempty"`
}

// Handler serves the business directory.
type Handler struct {
	businesses    inbound.BusinessDomain
	images        outbound.ImageURLPort
	presignExpiry time.Duration
}

// NewHandler creates a business handler. images may be nil.
func NewHandler(businesses inbound.BusinessDomain, images outbound.ImageURLPort, presignExpiry time.Duration) *Handler {
	if presignExpiry <= 0 {
		presignExpiry = 15 * time.Minute
	}
	return &Handler{businesses: businesses, images: images, presignExpiry: presignExpiry}
}

// RegisterRoutes registers business routes. Listing management acts on the
// caller's own listing.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	businesses := r.Group("/businesses")
	{
		businesses.GET("", h.ListBusinesses)
		businesses.POST("", auth, h.CreateBusiness)
		businesses.GET("/mine", auth, h.GetMine)
		businesses.PATCH("/mine", auth, h.UpdateMine)
		businesses.DELETE("/mine", auth, h.DeleteMine)
		businesses.GET("/:id", h.GetBusiness)
	}
}

// CreateBusiness handles POST /businesses.
//
//	@Summary		Create business listing
//	@Description	List the caller's business; only business accounts may own a listing, one each
//	@Tags			Business
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		inbound.CreateBusinessInput	true	"Listing"
//	@Success		201		{object}	BusinessResponse
//	@Failure		400		{object}	common.ErrorResponse
//	@Failure		403		{object}	common.ErrorResponse
//	@Failure		409		{object}	common.ErrorResponse
//	@Router			/businesses [post]
func (h *Handler) CreateBusiness(c *gin.Context) {
	userID, ok := common.CurrentUser(c)
	if !ok {
		return
	}

	var req inbound.CreateBusinessInput
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BadRequest(c, err.Error())
		return
	}

	b, err := h.businesses.CreateBusiness(c.Request.Context(), userID, &req)
	if err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.toResponse(c.Request.Context(), b))
}

// ListBusinesses handles GET /businesses.
//
//	@Summary	List businesses
//	@Tags		Business
//	@Produce	json
//	@Success	200	{array}	BusinessResponse
//	@Router		/businesses [get]
func (h *Handler) ListBusinesses(c *gin.Context) {
	list, err := h.businesses.ListBusinesses(c.Request.Context())
	if err != nil {
		common.HandleError(c, err)
		return
	}

	data := make([]*BusinessResponse, len(list))
	for i, b := range list {
		data[i] = h.toResponse(c.Request.Context(), b)
	}
	c.JSON(http.StatusOK, data)
}

// GetBusiness handles GET /businesses/:id.
//
//	@Summary	Get business
//	@Tags		Business
//	@Produce	json
//	@Param		id	path		string	true	"Business ID"
//	@Success	200	{object}	BusinessResponse
//	@Failure	404	{object}	common.ErrorResponse
//	@Router		/businesses/{id} [get]
func (h *Handler) GetBusiness(c *gin.Context) {
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}

	b, err := h.businesses.GetBusiness(c.Request.Context(), id)
	if err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(c.Request.Context(), b))
}

// GetMine handles GET /businesses/mine.
//
//	@Summary	Get the caller's business listing
//	@Tags		Business
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	BusinessResponse
//	@Failure	401	{object}	common.ErrorResponse
//	@Failure	404	{object}	common.ErrorResponse
//	@Router		/businesses/mine [get]
func (h *Handler) GetMine(c *gin.Context) {
	userID, ok := common.CurrentUser(c)
	if !ok {
		return
	}

	b, err := h.businesses.GetBusinessOfOwner(c.Request.Context(), userID)
	if err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(c.Request.Context(), b))
}

// UpdateMine handles PATCH /businesses/mine.
//
//	@Summary		Update the caller's business listing
//	@Description	Omitted fields keep their value; images are appended
//	@Tags			Business
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		inbound.UpdateBusinessInput	true	"Changes"
//	@Success		200		{object}	BusinessResponse
//	@Failure		400		{object}	common.ErrorResponse
//	@Failure		404		{object}	common.ErrorResponse
//	@Router			/businesses/mine [patch]
func (h *Handler) UpdateMine(c *gin.Context) {
	userID, ok := common.CurrentUser(c)
	if !ok {
		return
	}

	var req inbound.UpdateBusinessInput
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BadRequest(c, err.Error())
		return
	}

	b, err := h.businesses.UpdateBusiness(c.Request.Context(), userID, &req)
	if err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(c.Request.Context(), b))
}

// DeleteMine handles DELETE /businesses/mine.
//
//	@Summary	Delete the caller's business listing
//	@Tags		Business
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	common.MessageResponse
//	@Failure	404	{object}	common.ErrorResponse
//	@Router		/businesses/mine [delete]
func (h *Handler) DeleteMine(c *gin.Context) {
	userID, ok := common.CurrentUser(c)
	if !ok {
		return
	}

	if err := h.businesses.DeleteBusiness(c.Request.Context(), userID); err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, common.MessageResponse{Message: "business deleted"})
}

func (h *Handler) toResponse(ctx context.Context, b *model.Business) *BusinessResponse {
	resp := &BusinessResponse{Business: b}
	if h.images == nil || len(b.ImageRefs) == 0 {
		return resp
	}

	resp.ImageURLs = make([]string, 0, len(b.ImageRefs))
	for _, key := range b.ImageRefs {
		u, err := h.images.PresignGet(ctx, key, h.presignExpiry)
		if err != nil {
			logger.FromContext(ctx).Warn("failed to presign business image",
				zap.String("business_id", b.ID.String()),
				zap.Error(err),
			)
			continue
		}
		resp.ImageURLs = append(resp.ImageURLs, u)
	}
	return resp
}
