package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/optiorder/vca-engine/internal/catalog"
	"github.com/optiorder/vca-engine/internal/matching"
	"github.com/optiorder/vca-engine/internal/vca"
)

// handleHealth reports server and catalog health. Seed-file installs
// have no pool and report healthy on process liveness alone.
func (s *Server) handleHealth(c *gin.Context) {
	if s.pool != nil {
		if err := s.pool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"version": Version,
	})
}

// orderRequest carries a sparse order record.
type orderRequest struct {
	Order vca.OrderRecord `json:"order" binding:"required"`
}

// handleConvert encodes an order into VCA text. Encoding never fails;
// the validation verdict rides along for the caller to act on.
func (s *Server) handleConvert(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"vca":        vca.Encode(req.Order),
		"validation": vca.Validate(req.Order),
	})
}

// handleValidate checks mandatory fields and paired-field arity.
func (s *Server) handleValidate(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, vca.Validate(req.Order))
}

type matchRequest struct {
	Term string `json:"term"`
}

// handleMatch resolves a free-text term against one catalog kind.
func (s *Server) handleMatch(c *gin.Context) {
	kind, err := catalog.ParseKind(c.Param("kind"))
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	records, err := s.provider.Records(c.Request.Context(), kind)
	if err != nil {
		respondCatalogUnavailable(c)
		return
	}

	c.JSON(http.StatusOK, matching.Match(req.Term, records, matching.ModeForKind(kind)))
}

// handleCatalog returns the full listing of one kind, for selection UIs.
func (s *Server) handleCatalog(c *gin.Context) {
	kind, err := catalog.ParseKind(c.Param("kind"))
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	records, err := s.provider.Records(c.Request.Context(), kind)
	if err != nil {
		respondCatalogUnavailable(c)
		return
	}
	if records == nil {
		records = []catalog.Record{}
	}

	c.JSON(http.StatusOK, gin.H{
		"kind":    kind,
		"records": records,
		"count":   len(records),
	})
}
