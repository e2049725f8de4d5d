package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"goodie-catalog/internal/apperrors"
	"goodie-catalog/internal/cache"
	"goodie-catalog/internal/models"
	"goodie-catalog/internal/service"
)

type GoodieHandler struct {
	service *service.GoodieService
	cache   *cache.Cache
}

func NewGoodieHandler(svc *service.GoodieService) *GoodieHandler {
	return &GoodieHandler{
		service: svc,
		cache:   cache.Get(),
	}
}

type ErrorResponse struct {
	Message string `json:"message"`
}

// respondError traduce el error a status + {message}; los errores no
// tipados nunca filtran detalles internos
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		c.JSON(appErr.Code, ErrorResponse{Message: appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal server error"})
}

// headerSkip lee el header skip; valores inválidos o ausentes valen 0
func headerSkip(c *gin.Context) int64 {
	skip, err := strconv.ParseInt(c.GetHeader("skip"), 10, 64)
	if err != nil || skip < 0 {
		return 0
	}
	return skip
}

// POST /v1/goodie
func (h *GoodieHandler) CreateGoodie(c *gin.Context) {
	var draft models.GoodieDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		respondError(c, apperrors.Validation(err.Error()))
		return
	}

	goodie, err := h.service.CreateGoodie(c.Request.Context(), &draft)
	if err != nil {
		respondError(c, err)
		return
	}

	// Invalidar listados cacheados
	h.cache.DeleteByPrefix("goodies:")

	c.JSON(http.StatusCreated, goodie)
}

// PUT /v1/goodie/:slug
func (h *GoodieHandler) EditGoodie(c *gin.Context) {
	respondError(c, h.service.EditGoodie(c.Request.Context(), c.Param("slug")))
}

// DELETE /v1/goodie/:slug
func (h *GoodieHandler) DeleteGoodie(c *gin.Context) {
	respondError(c, h.service.DeleteGoodie(c.Request.Context(), c.Param("slug")))
}

// GET /v1/goodie/:slug
func (h *GoodieHandler) GetGoodie(c *gin.Context) {
	slug := c.Param("slug")
	cacheKey := fmt.Sprintf("goodie:%s", slug)

	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	goodie, err := h.service.GetBySlug(c.Request.Context(), slug)
	if err != nil {
		// Contrato histórico del cliente público: slug desconocido
		// responde 200 con cuerpo nulo, no 404
		if apperrors.IsKind(err, http.StatusNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		respondError(c, err)
		return
	}

	h.cache.Set(cacheKey, goodie, 5*time.Minute)
	c.JSON(http.StatusOK, goodie)
}

// GET /v1/goodies
func (h *GoodieHandler) GetGoodies(c *gin.Context) {
	skip, err := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)
	if err != nil || skip < 0 {
		skip = 0
	}
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	goodies, err := h.service.ListVisible(c.Request.Context(), skip, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, goodies)
}

// GET /v1/goodies/admin
func (h *GoodieHandler) GetAdminGoodies(c *gin.Context) {
	goodies, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, goodies)
}

// GET /v1/goodies/new
func (h *GoodieHandler) GetNewGoodies(c *gin.Context) {
	skip := headerSkip(c)
	cacheKey := fmt.Sprintf("goodies:new:%d", skip)

	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	goodies, err := h.service.ListNew(c.Request.Context(), skip)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.Set(cacheKey, goodies, 2*time.Minute)
	c.JSON(http.StatusOK, goodies)
}

// GET /v1/goodies/hot
func (h *GoodieHandler) GetHotGoodies(c *gin.Context) {
	skip := headerSkip(c)
	cacheKey := fmt.Sprintf("goodies:hot:%d", skip)

	if cached, found := h.cache.GetValue(cacheKey); found {
		c.JSON(http.StatusOK, cached)
		return
	}

	goodies, err := h.service.ListHot(c.Request.Context(), skip)
	if err != nil {
		respondError(c, err)
		return
	}

	h.cache.Set(cacheKey, goodies, 2*time.Minute)
	c.JSON(http.StatusOK, goodies)
}

// GET /v1/goodies/hot/:collectionID/:goodieID
// Muestra aleatoria: no se cachea
func (h *GoodieHandler) GetHotGoodiesOfCollection(c *gin.Context) {
	goodies, err := h.service.ListHotInCollection(
		c.Request.Context(),
		c.Param("collectionID"),
		c.Param("goodieID"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, goodies)
}

// PATCH /v1/goodie/:slug/like
func (h *GoodieHandler) UpdateLikes(c *gin.Context) {
	h.updateCounter(c, h.service.IncrementLikes)
}

// PATCH /v1/goodie/:slug/view
func (h *GoodieHandler) UpdateViews(c *gin.Context) {
	h.updateCounter(c, h.service.IncrementViews)
}

func (h *GoodieHandler) updateCounter(c *gin.Context, increment func(ctx context.Context, slug string) (*models.Goodie, error)) {
	slug := c.Param("slug")

	goodie, err := increment(c.Request.Context(), slug)
	if err != nil {
		respondError(c, err)
		return
	}

	// El documento y los listados cacheados quedaron viejos
	h.cache.Delete(fmt.Sprintf("goodie:%s", slug))
	h.cache.DeleteByPrefix("goodies:")

	c.JSON(http.StatusOK, goodie)
}
