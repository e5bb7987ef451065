package scans

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-scanner/internal/extract"
	"resume-scanner/internal/shared/server/middleware"
	"resume-scanner/internal/shared/server/respond"
	"resume-scanner/internal/shared/util"
	"resume-scanner/internal/taxonomy"
)

const (
	fileField           = "resume"
	jobDescriptionField = "job_description"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	Taxonomy       *taxonomy.Taxonomy
	MaxUploadBytes int64
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, tax *taxonomy.Taxonomy, maxUploadBytes int64) *Handler {
	return &Handler{Svc: svc, Taxonomy: tax, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches scan routes to the router group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/scan-resume", h.scanResume)
	rg.POST("/analyze-text", h.analyzeText)
	rg.GET("/taxonomy", h.describeTaxonomy)
}

func (h *Handler) scanResume(c *gin.Context) {
	if h.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	}

	fileHeader, err := c.FormFile(fileField)
	if err != nil {
		switch {
		case isTooLarge(err):
			respond.Error(c, http.StatusRequestEntityTooLarge, ErrorCodeTooLarge, msgTooLarge)
		case errors.Is(err, http.ErrMissingFile) && hasFormValue(c, fileField):
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, msgNoFileSelected)
		default:
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, msgNoFile)
		}
		return
	}

	fileName, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, msgNoFileSelected)
		return
	}
	c.Set(middleware.FileNameKey, fileName)

	// Reject by extension before reading the upload.
	if _, err := extract.FormatFromFileName(fileName); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeUnsupportedFormat, msgUnsupported)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "unable to read file")
		return
	}

	report, err := h.Svc.Scan(c.Request.Context(), fileName, data, c.PostForm(jobDescriptionField))
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, report.Response())
}

func (h *Handler) analyzeText(c *gin.Context) {
	var req analyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, msgInvalidJSON)
		return
	}

	report, err := h.Svc.Analyze(c.Request.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		h.fail(c, err)
		return
	}
	respond.OK(c, report.Response())
}

func (h *Handler) describeTaxonomy(c *gin.Context) {
	respond.OK(c, h.Taxonomy.Describe())
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrMissingInput):
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, msgNoText)
	case errors.Is(err, extract.ErrUnsupportedFormat):
		respond.Error(c, http.StatusBadRequest, ErrorCodeUnsupportedFormat, msgUnsupported)
	case errors.Is(err, extract.ErrExtraction):
		respond.Error(c, http.StatusBadRequest, ErrorCodeExtraction, err.Error())
	default:
		respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, msgInternalPrefix+err.Error())
	}
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}

// hasFormValue reports a multipart field sent without a file name.
func hasFormValue(c *gin.Context, field string) bool {
	form := c.Request.MultipartForm
	if form == nil {
		return false
	}
	_, ok := form.Value[field]
	return ok
}
