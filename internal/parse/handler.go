package parse

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"careerprep-backend/internal/shared/server/middleware"
	"careerprep-backend/internal/shared/server/respond"
)

const defaultMaxUploadSize = 10 << 20 // 10MB

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc           *Service
	MaxUploadSize int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc, MaxUploadSize: defaultMaxUploadSize}
}

// RegisterRoutes attaches parse routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/parse", h.upload)
	rg.POST("/parse/text", h.text)
	rg.GET("/parse/:parseId", h.get)
	rg.GET("/parse", h.list)
	rg.POST("/skills/match", h.matchSkills)
}

func (h *Handler) upload(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	maxSize := h.MaxUploadSize
	if maxSize <= 0 {
		maxSize = defaultMaxUploadSize
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxSize)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		if isTooLarge(err) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "File too large", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "No file provided", nil)
		return
	}
	if fileHeader.Size > maxSize {
		respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "File too large", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "No file provided", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		if isTooLarge(err) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "File too large", nil)
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	p, err := h.Svc.ParseUpload(c.Request.Context(), userID, fileHeader.Filename, mimeType, data)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidFileType):
			respond.Error(c, http.StatusBadRequest, "validation_error", "Invalid file type", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "No file provided", nil)
		case errors.Is(err, ErrUnreadable):
			respond.Error(c, http.StatusUnprocessableEntity, "extraction_failed", "Failed to extract text from PDF", err.Error())
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to parse document", nil)
		}
		return
	}

	c.Set("parseMethod", p.Method)
	if p.DocumentID != "" {
		c.Set("documentId", p.DocumentID)
	}
	respond.JSON(c, http.StatusOK, p.Result)
}

type textRequest struct {
	Text string `json:"text"`
}

func (h *Handler) text(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req textRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	p, err := h.Svc.ParseText(c.Request.Context(), userID, req.Text)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to parse text", nil)
		return
	}

	c.Set("parseMethod", p.Method)
	respond.JSON(c, http.StatusOK, p.Result)
}

func (h *Handler) get(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	parseID := strings.TrimSpace(c.Param("parseId"))
	if parseID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "parseId is required", nil)
		return
	}

	p, err := h.Svc.GetByParseID(c.Request.Context(), userID, parseID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "parse not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch parse", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, p.Result)
}

func (h *Handler) list(c *gin.Context) {
	if isGuest, ok := c.Get("isGuest"); ok {
		if guest, ok2 := isGuest.(bool); ok2 && guest {
			respond.Error(c, http.StatusUnauthorized, "login_required", "Login required to view history", nil)
			return
		}
	}

	userID := middleware.UserIDFromContext(c)

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

	parses, err := h.Svc.List(c.Request.Context(), userID, limit, offset)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list parses", nil)
		return
	}

	resp := make([]gin.H, 0, len(parses))
	for _, p := range parses {
		resp = append(resp, gin.H{
			"parseId":           p.ParseID,
			"parseMethod":       p.Method,
			"overallConfidence": p.Overall,
			"documentId":        p.DocumentID,
			"createdAt":         p.CreatedAt,
		})
	}
	respond.JSON(c, http.StatusOK, resp)
}

type matchRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) matchSkills(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.ResumeText) == "" && strings.TrimSpace(req.JobDescription) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "resumeText or jobDescription is required", nil)
		return
	}

	records := h.Svc.MatchSkills(req.ResumeText, req.JobDescription)
	respond.JSON(c, http.StatusOK, gin.H{"skills": records})
}

func isTooLarge(err error) bool {
	var maxBytesErr *http.MaxBytesError
	return errors.As(err, &maxBytesErr)
}
