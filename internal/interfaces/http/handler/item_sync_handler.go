package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	importapp "github.com/sahilrajputt12/catalog-extensions/internal/application/import"
	csvimport "github.com/sahilrajputt12/catalog-extensions/internal/infrastructure/import"
	"github.com/sahilrajputt12/catalog-extensions/internal/interfaces/http/dto"
)

// maxImportFileSize caps uploaded CSV files at 10MB
const maxImportFileSize = 10 << 20

// ItemSyncHandler handles the CSV item SYNC import upload
type ItemSyncHandler struct {
	BaseHandler
	syncService *importapp.ItemSyncService
}

// NewItemSyncHandler creates a new ItemSyncHandler
func NewItemSyncHandler(syncService *importapp.ItemSyncService) *ItemSyncHandler {
	return &ItemSyncHandler{syncService: syncService}
}

// SyncItems runs the SYNC import over an uploaded CSV file: items are
// inserted or reused, selling prices rewritten, stock reconciled against
// the imported counts, and rows flagged for publication pushed to the
// website.
func (h *ItemSyncHandler) SyncItems(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.BadRequest(c, "file is required")
		return
	}
	defer file.Close()

	if header.Size > maxImportFileSize {
		h.Error(c, http.StatusRequestEntityTooLarge, dto.ErrCodeValidation, "file exceeds maximum size of 10MB")
		return
	}

	contentType := header.Header.Get("Content-Type")
	if contentType != "" && contentType != "text/csv" && contentType != "application/octet-stream" &&
		contentType != "text/plain" && contentType != "application/vnd.ms-excel" {
		h.Error(c, http.StatusUnsupportedMediaType, dto.ErrCodeValidation, "file must be a CSV file")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		h.InternalError(c, "failed to read file")
		return
	}

	result, err := h.syncService.Sync(c.Request.Context(), data)
	if err != nil {
		switch {
		case errors.Is(err, csvimport.ErrEmptyFile):
			h.BadRequest(c, "CSV file is empty")
		case errors.Is(err, csvimport.ErrInvalidEncoding):
			h.BadRequest(c, "CSV file has invalid encoding, must be UTF-8")
		case errors.Is(err, csvimport.ErrMissingHeader):
			h.BadRequest(c, "CSV file is missing header row")
		default:
			h.HandleError(c, err)
		}
		return
	}

	h.Success(c, result)
}

// RegisterRoutes registers the import routes
func (h *ItemSyncHandler) RegisterRoutes(rg *gin.RouterGroup) {
	imports := rg.Group("/import")
	{
		imports.POST("/items/sync", h.SyncItems)
	}
}
