package handlers

import (
	"log"
	"net/http"

	response "quotebot/internal/adapter/http/dto/response"
	"quotebot/internal/usecase"
	"quotebot/pkg"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListCatalog returns the pricing catalog ordered by item type and material.
//
// @Summary  List the pricing catalog
// @Tags     catalog
// @Produce  json
// @Success  200  {object}  response.CatalogResponse
// @Router   /catalog [get]
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	entries, err := h.usecase.All(c.Request.Context())
	if err != nil {
		log.Printf("[catalog][handler] list failed err=%v", err)
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCatalog(entries))
}

// Ping
//
// @Summary  Health check
// @Tags     health
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
