package api

import (
	"context"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	errx "github.com/giftgenie-teelab/server/internal/core/error"
	"github.com/giftgenie-teelab/server/internal/metrics"
	"github.com/giftgenie-teelab/server/internal/model"
	logx "github.com/giftgenie-teelab/server/pkg/logger"
)

// Recommender produces gift and style suggestions.
type Recommender interface {
	GiftSuggestions(ctx context.Context, req model.GiftRequest) (*model.GiftResponse, error)
	StyleSuggestions(ctx context.Context, req model.StyleRequest) (*model.StyleResponse, error)
}

// ImageStore persists uploaded design images.
type ImageStore interface {
	Save(fh *multipart.FileHeader) (string, error)
	Remove(publicPath string) error
}

// Pinger reports backing store health.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handlers struct {
	recommender Recommender
	designs     model.DesignRepository
	signups     model.SignupRepository
	images      ImageStore
	health      Pinger
}

func NewHandlers(recommender Recommender, designs model.DesignRepository, signups model.SignupRepository, images ImageStore, health Pinger) *Handlers {
	return &Handlers{
		recommender: recommender,
		designs:     designs,
		signups:     signups,
		images:      images,
		health:      health,
	}
}

// GiftGenie handles POST /giftgenie.
func (h *Handlers) GiftGenie(c *gin.Context) {
	var req model.GiftRequest
	if err := bindError(c.ShouldBind(&req)); err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.recommender.GiftSuggestions(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// StyleSuggest handles POST /stylesuggest.
func (h *Handlers) StyleSuggest(c *gin.Context) {
	var req model.StyleRequest
	if err := bindError(c.ShouldBind(&req)); err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.recommender.StyleSuggestions(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UploadDesign handles POST /teelab. Fields are checked before the file is
// written so a rejected request leaves nothing behind.
func (h *Handlers) UploadDesign(c *gin.Context) {
	var form model.DesignForm
	bindErr := c.ShouldBind(&form)

	file, fileErr := c.FormFile("design")
	var absent []string
	if fileErr != nil {
		absent = append(absent, "design")
	}
	if err := bindError(bindErr, absent...); err != nil {
		respondError(c, err)
		return
	}

	userID, err := strconv.ParseInt(strings.TrimSpace(form.UserID), 10, 64)
	if err != nil {
		respondError(c, errx.Validation("user_id must be an integer"))
		return
	}

	imagePath, err := h.images.Save(file)
	if err != nil {
		respondError(c, err)
		return
	}

	design, err := h.designs.CreateDesign(c.Request.Context(), model.NewDesign{
		Title:       form.Title,
		Description: form.Description,
		ImageURL:    imagePath,
		UserID:      &userID,
	})
	if err != nil {
		if rmErr := h.images.Remove(imagePath); rmErr != nil {
			logx.Warn().Err(rmErr).Str("path", imagePath).Msg("failed to remove orphaned upload")
		}
		respondError(c, err)
		return
	}

	metrics.DesignsCreatedTotal.Inc()
	logx.Info().Uint("design_id", design.ID).Int64("user_id", userID).Msg("design uploaded")
	c.JSON(http.StatusOK, gin.H{"success": "Design uploaded"})
}

// Like handles POST /like/:id.
func (h *Handlers) Like(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		respondError(c, errx.Validation("id must be a positive integer"))
		return
	}

	if err := h.designs.IncrementVote(c.Request.Context(), uint(id)); err != nil {
		respondError(c, err)
		return
	}

	metrics.VotesTotal.Inc()
	c.JSON(http.StatusOK, gin.H{"success": "Vote recorded"})
}

// ListDesigns handles GET /teelab/designs.
func (h *Handlers) ListDesigns(c *gin.Context) {
	designs, err := h.designs.ListDesigns(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, designs)
}

// Signup handles POST /signup.
func (h *Handlers) Signup(c *gin.Context) {
	var req model.SignupRequest
	if err := bindError(c.ShouldBind(&req)); err != nil {
		respondError(c, err)
		return
	}

	if err := h.signups.CreateSignup(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}

	metrics.SignupsTotal.Inc()
	c.JSON(http.StatusOK, gin.H{"success": "Signed up"})
}

// Health handles GET /health.
func (h *Handlers) Health(c *gin.Context) {
	if err := h.health.Ping(c.Request.Context()); err != nil {
		logx.Error().Err(err).Msg("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
