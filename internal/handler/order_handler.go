package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"balju/internal/csvexport"
	"balju/internal/domain"
	"balju/internal/service"
	"balju/internal/sheet"
)

// maxSheetSizeBytes caps uploaded workbook size.
const maxSheetSizeBytes = 10 << 20

// OrderHandler handles order extraction endpoints.
type OrderHandler struct {
	extractService service.ExtractService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(extractService service.ExtractService) *OrderHandler {
	return &OrderHandler{extractService: extractService}
}

// ExtractRequest is the body for POST /api/v1/orders/extract.
type ExtractRequest struct {
	Input   string `json:"input"`
	IsImage bool   `json:"is_image"`
}

// Extract handles POST /api/v1/orders/extract
// Accepts raw text or a base64-encoded screenshot (data URL or bare payload)
// and returns the extracted order records.
func (h *OrderHandler) Extract(c *gin.Context) {
	var req ExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "input is required")
		return
	}
	if strings.TrimSpace(req.Input) == "" {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "input is required")
		return
	}

	orders, err := h.extractService.ExtractOrders(c.Request.Context(), req.Input, req.IsImage)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"orders": orders})
}

// ExtractSheet handles POST /api/v1/orders/extract-sheet
// Accepts a multipart .xlsx upload and reads the order rows directly.
func (h *OrderHandler) ExtractSheet(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "file is required")
		return
	}
	if fileHeader.Size > maxSheetSizeBytes {
		RespondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size")
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".xlsx") {
		HandleError(c, domain.ErrUnsupportedFileType)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "file could not be read")
		return
	}
	defer func() { _ = f.Close() }()

	orders, err := sheet.ReadOrders(f)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"orders": orders})
}

// ExportRequest is the body for POST /api/v1/orders/export.
type ExportRequest struct {
	Orders []domain.OrderItem `json:"orders" binding:"required"`
}

// Export handles POST /api/v1/orders/export
// Streams the given order records back as a CSV attachment.
func (h *OrderHandler) Export(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", "orders are required")
		return
	}

	filename := csvexport.BuildFilename("발주내역")
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if _, err := c.Writer.Write(csvexport.BOM); err != nil {
		return
	}
	w := csvexport.NewWriter(c.Writer)
	if err := w.WriteHeader(); err != nil {
		return
	}
	if err := w.WriteOrders(req.Orders); err != nil {
		return
	}
	w.Flush()
}
