package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/freelance-pricing/internal/budget"
	"github.com/nurpe/freelance-pricing/internal/model"
	"github.com/nurpe/freelance-pricing/internal/service"
)

type Handler struct {
	estimates *service.EstimateService
	budgets   *service.BudgetService
	market    *service.MarketService
	log       zerolog.Logger
}

func NewHandler(estimates *service.EstimateService, budgets *service.BudgetService, market *service.MarketService, log zerolog.Logger) *Handler {
	return &Handler{estimates: estimates, budgets: budgets, market: market, log: log}
}

func (h *Handler) Register(router *gin.Engine) {
	router.GET("/healthz", h.health)

	api := router.Group("/api/v1")
	api.POST("/estimates/:category", h.estimate)
	api.POST("/rates/hourly", h.hourlyRate)
	api.GET("/rates/defaults", h.rateDefaults)
	api.GET("/market-rates", h.listMarketRates)
	api.GET("/market-rates/lookup", h.lookupMarketRate)

	budgets := api.Group("/budgets")
	budgets.POST("", h.createBudget)
	budgets.GET("/:id", h.getBudget)
	budgets.DELETE("/:id", h.deleteBudget)
	budgets.PATCH("/:id", h.applyChange)
	budgets.PUT("/:id/result", h.setResult)
	budgets.POST("/:id/generate", h.generateBudget)
	budgets.POST("/:id/edit", h.toggleEdit)
	budgets.PUT("/:id/price", h.selectPrice)
	budgets.GET("/:id/pages", h.budgetPages)
	budgets.GET("/:id/pdf", h.renderBudget("pdf"))
	budgets.GET("/:id/xlsx", h.renderBudget("xlsx"))
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) estimate(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	result, err := h.estimates.Estimate(c.Request.Context(), service.EstimateInput{
		Category: c.Param("category"),
		Params:   body,
		Currency: c.Query("currency"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) hourlyRate(c *gin.Context) {
	body, ok := readBody(c)
	if !ok {
		return
	}

	result, err := h.estimates.Hourly(c.Request.Context(), body, c.Query("currency"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) rateDefaults(c *gin.Context) {
	defaults := h.estimates.Defaults(c.Request.Context(), c.Query("country"), c.Query("seniority"), c.Query("currency"))
	c.JSON(http.StatusOK, defaults)
}

func (h *Handler) listMarketRates(c *gin.Context) {
	rows, err := h.market.List(c.Request.Context(), model.MarketRateFilter{
		Role:      c.Query("role"),
		Seniority: c.Query("seniority"),
		Country:   c.Query("country"),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *Handler) lookupMarketRate(c *gin.Context) {
	row, err := h.market.Lookup(c.Request.Context(), c.Query("role"), c.Query("seniority"), c.Query("country"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *Handler) createBudget(c *gin.Context) {
	var src budget.Source
	if err := c.ShouldBindJSON(&src); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.budgets.Create(c.Request.Context(), src)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *Handler) getBudget(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.budgets.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) deleteBudget(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.budgets.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) setResult(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var src budget.Source
	if err := c.ShouldBindJSON(&src); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.budgets.SetResult(c.Request.Context(), id, src)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) generateBudget(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.budgets.Generate(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) toggleEdit(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	view, err := h.budgets.ToggleEdit(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// changeRequest accepts the value as a JSON string, number or boolean.
type changeRequest struct {
	Field string          `json:"field" binding:"required"`
	Value json.RawMessage `json:"value"`
}

func (h *Handler) applyChange(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req changeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.budgets.Apply(c.Request.Context(), id, budget.Change{
		Field: budget.Field(strings.TrimSpace(req.Field)),
		Value: rawValue(req.Value),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

type priceRequest struct {
	Choice string `json:"choice" binding:"required"`
}

func (h *Handler) selectPrice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req priceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := h.budgets.SelectPrice(c.Request.Context(), id, req.Choice)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *Handler) budgetPages(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	pages, err := h.budgets.Pages(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, pages)
}

func (h *Handler) renderBudget(format string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := parseID(c)
		if !ok {
			return
		}
		result, err := h.budgets.Render(c.Request.Context(), id, format)
		if err != nil {
			h.handleError(c, err)
			return
		}

		c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
		c.Data(http.StatusOK, result.ContentType, result.Content)
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrUnknownCategory):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidTransition):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnprocessable):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param("id")))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid budget id"})
		return uuid.Nil, false
	}
	return id, true
}

func readBody(c *gin.Context) (json.RawMessage, bool) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read body"})
		return nil, false
	}
	if len(body) > 0 && !json.Valid(body) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body is not valid JSON"})
		return nil, false
	}
	return body, true
}

// rawValue turns "x", 10 or true into the text the budget reducer parses.
func rawValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}
