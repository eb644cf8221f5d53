package structures

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"sitestudio-backend/internal/blocks"
	"sitestudio-backend/internal/blocks/profession"
	"sitestudio-backend/internal/shared/server/middleware"
	"sitestudio-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches catalog, engine and structure routes.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/catalog/business-types", h.catalog)

	rg.POST("/blocks/select", h.selectBlocks)
	rg.POST("/blocks/alternatives", h.alternatives)
	rg.POST("/blocks/mobile", h.mobile)
	rg.POST("/blocks/profession", h.professionBlocks)

	rg.POST("/projects/:projectId/structures", h.create)
	rg.GET("/projects/:projectId/structures", h.list)
	rg.GET("/structures/:id", h.get)
	rg.POST("/structures/:id/publish", h.publish)
}

func (h *Handler) catalog(c *gin.Context) {
	types := blocks.BusinessTypes()
	names := make([]string, 0, len(types))
	for _, bt := range types {
		names = append(names, string(bt))
	}
	respond.OK(c, gin.H{
		"businessTypes":    names,
		"professionTrades": profession.Trades(),
	})
}

func (h *Handler) selectBlocks(c *gin.Context) {
	var criteria blocks.Criteria
	if err := c.ShouldBindJSON(&criteria); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
		return
	}
	c.Set("businessType", string(criteria.BusinessType))
	respond.OK(c, gin.H{"blocks": h.Svc.Select(criteria)})
}

func (h *Handler) alternatives(c *gin.Context) {
	var req alternativesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
		return
	}
	lists, err := h.Svc.Alternatives(req.Blocks, req.Count)
	if err != nil {
		h.writeError(c, err)
		return
	}
	respond.OK(c, gin.H{"alternatives": lists})
}

func (h *Handler) mobile(c *gin.Context) {
	var req mobileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
		return
	}
	respond.OK(c, gin.H{"blocks": nonNil(h.Svc.OptimizeMobile(req.Blocks))})
}

func (h *Handler) professionBlocks(c *gin.Context) {
	var req professionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
		return
	}
	c.Set("businessType", req.BusinessType)
	respond.OK(c, gin.H{"blocks": h.Svc.ProfessionBlocks(req.BusinessType, req.AIAnalysis, req.FormData)})
}

func (h *Handler) create(c *gin.Context) {
	operatorID := middleware.OperatorIDFromContext(c)
	projectID := c.Param("projectId")
	c.Set("projectId", projectID)

	var body composeRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
		return
	}
	c.Set("businessType", string(body.Criteria.BusinessType))

	structure, err := h.Svc.Create(c.Request.Context(), operatorID, projectID, body.toRequest())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Set("structureId", structure.ID)
	respond.Created(c, toResponse(structure))
}

func (h *Handler) list(c *gin.Context) {
	operatorID := middleware.OperatorIDFromContext(c)
	projectID := c.Param("projectId")
	c.Set("projectId", projectID)

	limit := 20
	offset := 0
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit < 0 {
		limit = 0
	}
	if limit > 50 {
		limit = 50
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = 0
	}

	items, err := h.Svc.ListByProject(c.Request.Context(), operatorID, projectID, limit, offset)
	if err != nil {
		h.writeError(c, err)
		return
	}

	resp := make([]StructureResponse, 0, len(items))
	for _, s := range items {
		resp = append(resp, toResponse(s))
	}
	respond.OK(c, gin.H{"structures": resp, "limit": limit, "offset": offset})
}

func (h *Handler) get(c *gin.Context) {
	operatorID := middleware.OperatorIDFromContext(c)
	id := c.Param("id")
	c.Set("structureId", id)

	structure, err := h.Svc.Get(c.Request.Context(), operatorID, id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Set("projectId", structure.ProjectID)
	respond.OK(c, toResponse(structure))
}

func (h *Handler) publish(c *gin.Context) {
	operatorID := middleware.OperatorIDFromContext(c)
	id := c.Param("id")
	c.Set("structureId", id)

	structure, err := h.Svc.Publish(c.Request.Context(), operatorID, id, middleware.RequestIDFromContext(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Set("projectId", structure.ProjectID)
	respond.OK(c, toResponse(structure))
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, err.Error(), nil)
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, ErrorCodeNotFound, "structure not found", nil)
	case errors.Is(err, ErrForbidden):
		respond.Error(c, http.StatusForbidden, ErrorCodeForbidden, "structure belongs to another operator", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "failed to process structure", nil)
	}
}
