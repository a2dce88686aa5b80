package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/tssco/quotes-service/internal/model"
	"github.com/tssco/quotes-service/internal/service"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePDF  = "application/pdf"
)

type Handler struct {
	quotes  *service.QuoteService
	company *service.CompanyService
	log     zerolog.Logger
}

func NewHandler(quotes *service.QuoteService, company *service.CompanyService, log zerolog.Logger) *Handler {
	return &Handler{quotes: quotes, company: company, log: log}
}

func (h *Handler) Register(api *gin.RouterGroup) {
	api.GET("/", h.root)

	api.GET("/company", h.getCompany)
	api.PUT("/company", h.updateCompany)
	api.POST("/company/logo", h.uploadLogo)
	api.GET("/uploads/:filename", h.getUploadedFile)

	api.POST("/quotes", h.createQuote)
	api.GET("/quotes", h.listQuotes)
	api.GET("/quotes/:id", h.getQuote)
	api.PUT("/quotes/:id", h.updateQuote)
	api.DELETE("/quotes/:id", h.deleteQuote)
	api.GET("/quotes/:id/export/excel", h.exportQuoteExcel)
	api.GET("/quotes/:id/export/pdf", h.exportQuotePDF)
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Quote Management System API"})
}

func (h *Handler) getCompany(c *gin.Context) {
	company, err := h.company.GetOrCreate(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, company)
}

func (h *Handler) updateCompany(c *gin.Context) {
	var company model.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.company.Replace(c.Request.Context(), company)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) uploadLogo(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read file"})
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	logoPath, err := h.company.AttachLogo(c.Request.Context(), contentType, fileHeader.Filename, file)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logo_path": logoPath})
}

func (h *Handler) getUploadedFile(c *gin.Context) {
	path, err := h.company.FilePath(c.Param("filename"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.File(path)
}

type createQuoteRequest struct {
	Customer           model.Customer    `json:"customer" binding:"required"`
	ProjectDescription string            `json:"project_description"`
	Location           string            `json:"location"`
	Items              []model.QuoteItem `json:"items"`
	Subtotal           float64           `json:"subtotal"`
	TaxAmount          float64           `json:"tax_amount"`
	TotalAmount        float64           `json:"total_amount"`
	Notes              *string           `json:"notes"`
}

func (h *Handler) createQuote(c *gin.Context) {
	var req createQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := h.quotes.Create(c.Request.Context(), service.CreateQuoteInput{
		Customer:           req.Customer,
		ProjectDescription: req.ProjectDescription,
		Location:           req.Location,
		Items:              req.Items,
		Subtotal:           req.Subtotal,
		TaxAmount:          req.TaxAmount,
		TotalAmount:        req.TotalAmount,
		Notes:              req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *Handler) listQuotes(c *gin.Context) {
	skip := queryInt(c, "skip", 0)
	limit := queryInt(c, "limit", 0)

	quotes, err := h.quotes.List(c.Request.Context(), skip, limit)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quotes)
}

func (h *Handler) getQuote(c *gin.Context) {
	quote, err := h.quotes.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

type updateQuoteRequest struct {
	Customer           *model.Customer    `json:"customer"`
	ProjectDescription *string            `json:"project_description"`
	Location           *string            `json:"location"`
	Items              *[]model.QuoteItem `json:"items"`
	Subtotal           *float64           `json:"subtotal"`
	TaxAmount          *float64           `json:"tax_amount"`
	TotalAmount        *float64           `json:"total_amount"`
	Notes              *string            `json:"notes"`
}

func (h *Handler) updateQuote(c *gin.Context) {
	var req updateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	quote, err := h.quotes.Update(c.Request.Context(), c.Param("id"), service.UpdateQuoteInput{
		Customer:           req.Customer,
		ProjectDescription: req.ProjectDescription,
		Location:           req.Location,
		Items:              req.Items,
		Subtotal:           req.Subtotal,
		TaxAmount:          req.TaxAmount,
		TotalAmount:        req.TotalAmount,
		Notes:              req.Notes,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

func (h *Handler) deleteQuote(c *gin.Context) {
	if err := h.quotes.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Quote deleted successfully"})
}

func (h *Handler) exportQuoteExcel(c *gin.Context) {
	result, err := h.quotes.ExportExcel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentTypeXLSX, result.Content)
}

func (h *Handler) exportQuotePDF(c *gin.Context) {
	result, err := h.quotes.ExportPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, contentTypePDF, result.Content)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// queryInt reads an integer query parameter, falling back on absent or
// malformed values.
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
