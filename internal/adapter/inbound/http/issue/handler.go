package issuehttp

import (
	"context"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/civicteams/server/internal/adapter/inbound/http/common"
	"github.com/civicteams/server/internal/model"
	"github.com/civicteams/server/internal/port/inbound"
	"github.com/civicteams/server/internal/port/outbound"
	"github.com/civicteams/server/internal/shared/logger"
	"github.com/civicteams/server/internal/utils/middleware"
	"github.com/civicteams/server/internal/utils/pagination"
)

// IssueResponse is an issue with downloadable URLs for its images.
type IssueResponse struct {
	*model.Issue
	ImageURLs []string `json:"image_urls,omitempty"`
}

// IssueListResponse is a page of issues.
type IssueListResponse struct {
	Data       []*IssueResponse    `json:"data"`
	Pagination pagination.PageInfo `json:"pagination"`
}

// ListQuery holds the query parameters of issue listings.
type ListQuery struct {
	pagination.Pagination
	Status string `form:"status"`
}

// Handler serves issue reporting and browsing.
type Handler struct {
	issues        inbound.IssueDomain
	images        outbound.ImageURLPort
	presignExpiry time.Duration
}

// NewHandler creates an issue handler. images may be nil, in which case
// responses carry only the stored image keys.
func NewHandler(issues inbound.IssueDomain, images outbound.ImageURLPort, presignExpiry time.Duration) *Handler {
	if presignExpiry <= 0 {
		presignExpiry = 15 * time.Minute
	}
	return &Handler{issues: issues, images: images, presignExpiry: presignExpiry}
}

// RegisterRoutes registers issue routes. The report chain runs before
// POST /issues and the protected chain before routes that need a caller.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup, report, protected []gin.HandlerFunc) {
	issues := r.Group("/issues")
	{
		issues.POST("", append(slices.Clone(report), h.Report)...)
		issues.GET("", h.ListIssues)
		issues.GET("/mine", append(slices.Clone(protected), h.ListMine)...)
		issues.GET("/resolved", h.ListResolved)
		issues.GET("/:id", h.GetIssue)
	}
}

// Report handles issue reporting.
//
//	@Summary		Report an issue
//	@Description	Store a new issue; category and severity are filled in by the classifier in the background
//	@Tags			Issue
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			Idempotency-Key	header		string						false	"Replay protection key"
//	@Param			request			body		inbound.ReportIssueInput	true	"Issue report"
//	@Success		201				{object}	IssueResponse
//	@Failure		400				{object}	common.ErrorResponse
//	@Router			/issues [post]
func (h *Handler) Report(c *gin.Context) {
	var req inbound.ReportIssueInput
	if err := c.ShouldBindJSON(&req); err != nil {
		common.BadRequest(c, err.Error())
		return
	}

	var reporterID *uuid.UUID
	if middleware.IsAuthenticated(c) {
		id := middleware.GetUserID(c)
		reporterID = &id
	}

	issue, err := h.issues.Report(c.Request.Context(), reporterID, &req)
	if err != nil {
		common.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, h.toResponse(c.Request.Context(), issue))
}

// GetIssue handles GET /issues/:id.
//
//	@Summary	Get issue
//	@Tags		Issue
//	@Produce	json
//	@Param		id	path		string	true	"Issue ID"
//	@Success	200	{object}	IssueResponse
//	@Failure	404	{object}	common.ErrorResponse
//	@Router		/issues/{id} [get]
func (h *Handler) GetIssue(c *gin.Context) {
	id, ok := common.ParseID(c, "id")
	if !ok {
		return
	}

	issue, err := h.issues.GetIssue(c.Request.Context(), id)
	if err != nil {
		common.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.toResponse(c.Request.Context(), issue))
}

// ListIssues handles GET /issues.
//
//	@Summary	List issues
//	@Tags		Issue
//	@Produce	json
//	@Param		status		query		string	false	"Reported, Assigned or Resolved"
//	@Param		page		query		int		false	"Page number"
//	@Param		page_size	query		int		false	"Page size"
//	@Success	200			{object}	IssueListResponse
//	@Router		/issues [get]
func (h *Handler) ListIssues(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		common.BadRequest(c, err.Error())
		return
	}

	filter := &model.IssueFilter{}
	if q.Status != "" {
		status := model.IssueStatus(q.Status)
		filter.Status = &status
	}
	h.list(c, &q.Pagination, filter)
}

// ListMine handles GET /issues/mine.
//
//	@Summary	List issues reported by the caller
//	@Tags		Issue
//	@Produce	json
//	@Security	BearerAuth
//	@Param		page		query		int	false	"Page number"
//	@Param		page_size	query		int	false	"Page size"
//	@Success	200			{object}	IssueListResponse
//	@Failure	401			{object}	common.ErrorResponse
//	@Router		/issues/mine [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID, ok := common.CurrentUser(c)
	if !ok {
		return
	}

	var p pagination.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		common.BadRequest(c, err.Error())
		return
	}
	h.list(c, &p, &model.IssueFilter{ReporterID: &userID})
}

// ListResolved handles GET /issues/resolved.
//
//	@Summary	List resolved issues
//	@Tags		Issue
//	@Produce	json
//	@Param		page		query		int	false	"Page number"
//	@Param		page_size	query		int	false	"Page size"
//	@Success	200			{object}	IssueListResponse
//	@Router		/issues/resolved [get]
func (h *Handler) ListResolved(c *gin.Context) {
	var p pagination.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		common.BadRequest(c, err.Error())
		return
	}
	status := model.IssueStatusResolved
	h.list(c, &p, &model.IssueFilter{Status: &status})
}

func (h *Handler) list(c *gin.Context, p *pagination.Pagination, filter *model.IssueFilter) {
	p.Normalize()
	filter.Limit = p.Limit()
	filter.Offset = p.Offset()

	issues, total, err := h.issues.ListIssues(c.Request.Context(), filter)
	if err != nil {
		common.HandleError(c, err)
		return
	}

	data := make([]*IssueResponse, len(issues))
	for i, issue := range issues {
		data[i] = h.toResponse(c.Request.Context(), issue)
	}
	c.JSON(http.StatusOK, IssueListResponse{Data: data, Pagination: p.Info(total)})
}

// toResponse presigns image keys. A key that cannot be presigned is left out
// of ImageURLs rather than failing the read.
func (h *Handler) toResponse(ctx context.Context, issue *model.Issue) *IssueResponse {
	resp := &IssueResponse{Issue: issue}
	if h.images == nil || len(issue.ImageRefs) == 0 {
		return resp
	}

	resp.ImageURLs = make([]string, 0, len(issue.ImageRefs))
	for _, key := range issue.ImageRefs {
		u, err := h.images.PresignGet(ctx, key, h.presignExpiry)
		if err != nil {
			logger.FromContext(ctx).Warn("failed to presign issue image",
				zap.String("issue_id", issue.ID.String()),
				zap.Error(err),
			)
			continue
		}
		resp.ImageURLs = append(resp.ImageURLs, u)
	}
	return resp
}
