package handler

import (
	"context"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"food-analyzer-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// UploadsPath is the URL prefix under which saved images are served.
const UploadsPath = "/static/uploads"

const (
	defaultFoodName   = "Nama Makanan Tidak Diketahui"
	defaultFoodWeight = "Berat Tidak Diketahui"
	defaultHistory    = 20
	maxHistory        = 100
)

// AnalysisService interface for dependency injection
type AnalysisService interface {
	Ready() bool
	Analyze(ctx context.Context, in models.AnalyzeInput) *models.AnalysisReport
	History(ctx context.Context, limit int) ([]models.AnalysisRecord, error)
}

// UploadSaver stores an uploaded file and returns its name and path
type UploadSaver interface {
	Save(fh *multipart.FileHeader) (name, path string, err error)
}

// AnalysisHandler handles food image uploads
type AnalysisHandler struct {
	service AnalysisService
	uploads UploadSaver
}

type analyzeForm struct {
	File          *multipart.FileHeader `form:"file" binding:"required"`
	FoodName      string                `form:"foodName"`
	FoodWeight    string                `form:"foodWeight"`
	OriginAddress string                `form:"originAddress"`
	DestAddress   string                `form:"destAddress"`
}

// AnalyzeResponse is the merged report plus an echo of the submitted form.
type AnalyzeResponse struct {
	Result        *models.AnalysisReport `json:"result"`
	ImageURL      string                 `json:"image_url,omitempty"`
	FoodName      string                 `json:"food_name"`
	FoodWeight    string                 `json:"food_weight"`
	OriginAddress string                 `json:"origin_address,omitempty"`
	DestAddress   string                 `json:"dest_address,omitempty"`
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(svc AnalysisService, uploads UploadSaver) *AnalysisHandler {
	return &AnalysisHandler{service: svc, uploads: uploads}
}

// RegisterRoutes registers the HTML and JSON routes.
func (h *AnalysisHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Index)
	r.POST("/analyze", h.AnalyzePage)

	api := r.Group("/api/v1")
	{
		api.POST("/analyze", h.Analyze)
		api.GET("/history", h.History)
	}
}

// Index handles GET / requests
func (h *AnalysisHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"HasAPIKey": h.service.Ready()})
}

// AnalyzePage handles POST /analyze requests and renders the result page
func (h *AnalysisHandler) AnalyzePage(c *gin.Context) {
	resp, status, msg := h.run(c)
	if resp != nil {
		// errors inside the report are part of the page
		status = http.StatusOK
	}
	c.HTML(status, "index.html", gin.H{
		"HasAPIKey": h.service.Ready(),
		"Error":     msg,
		"Response":  resp,
	})
}

// Analyze godoc
// @Summary      Analyze a food photo
// @Description  Estimates shelf life, nutrition and allergens, and optionally the delivery route between two addresses
// @Tags         analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        file           formData  file    true   "Food photo"
// @Param        foodName       formData  string  false  "Declared food name"
// @Param        foodWeight     formData  string  false  "Declared weight or amount"
// @Param        originAddress  formData  string  false  "Route origin"
// @Param        destAddress    formData  string  false  "Route destination"
// @Success      200  {object}  AnalyzeResponse
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  AnalyzeResponse
// @Router       /api/v1/analyze [post]
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	resp, status, msg := h.run(c)
	if resp == nil {
		c.JSON(status, gin.H{"error": msg})
		return
	}
	c.JSON(status, resp)
}

// History godoc
// @Summary      Recent analyses
// @Tags         analysis
// @Produce      json
// @Param        limit  query  int  false  "Maximum number of records (1-100)"
// @Success      200  {array}   models.AnalysisRecord
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/history [get]
func (h *AnalysisHandler) History(c *gin.Context) {
	limit := defaultHistory
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxHistory {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	records, err := h.service.History(c.Request.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to list history")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, records)
}

// run binds the form, saves the upload and runs the analysis. A nil response
// means the request itself was unusable and msg explains why.
func (h *AnalysisHandler) run(c *gin.Context) (*AnalyzeResponse, int, string) {
	var form analyzeForm
	if err := c.ShouldBind(&form); err != nil || form.File == nil || form.File.Filename == "" {
		return nil, http.StatusBadRequest, "please choose a file"
	}

	resp := &AnalyzeResponse{
		FoodName:      valueOr(form.FoodName, defaultFoodName),
		FoodWeight:    valueOr(form.FoodWeight, defaultFoodWeight),
		OriginAddress: strings.TrimSpace(form.OriginAddress),
		DestAddress:   strings.TrimSpace(form.DestAddress),
	}

	if !h.service.Ready() {
		resp.Result = h.service.Analyze(c.Request.Context(), models.AnalyzeInput{})
		return resp, http.StatusServiceUnavailable, ""
	}

	name, path, err := h.uploads.Save(form.File)
	if err != nil {
		log.Error().Err(err).Str("filename", form.File.Filename).Msg("failed to save upload")
		resp.Result = &models.AnalysisReport{Error: "failed to save file locally: " + err.Error()}
		return resp, http.StatusInternalServerError, ""
	}
	resp.ImageURL = baseURL(c) + UploadsPath + "/" + name

	resp.Result = h.service.Analyze(c.Request.Context(), models.AnalyzeInput{
		ImagePath:          path,
		Filename:           name,
		FoodName:           resp.FoodName,
		FoodWeight:         resp.FoodWeight,
		OriginAddress:      resp.OriginAddress,
		DestinationAddress: resp.DestAddress,
	})
	return resp, http.StatusOK, ""
}

func valueOr(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}

func baseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return scheme + "://" + c.Request.Host
}
