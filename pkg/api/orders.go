package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/optiorder/vca-engine/internal/catalog"
	"github.com/optiorder/vca-engine/pkg/orders"
)

// handleCreateOrder stores a draft order.
func (s *Server) handleCreateOrder(c *gin.Context) {
	var req orderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	order := s.orders.Create(req.Order)
	c.JSON(http.StatusCreated, order)
}

// handleListOrders returns every stored order, oldest first.
func (s *Server) handleListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"orders": s.orders.List()})
}

// handleGetOrder returns one order by id.
func (s *Server) handleGetOrder(c *gin.Context) {
	order, ok := s.lookupOrder(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, order)
}

// handleSubmitOrder runs the full pipeline for a stored order: resolve
// free-text fields, validate, encode, post to the lab. Validation
// failures stop the submission; the verdict and pending resolutions are
// returned so the caller can fix the record.
func (s *Server) handleSubmitOrder(c *gin.Context) {
	order, ok := s.lookupOrder(c)
	if !ok {
		return
	}

	submission, err := s.gateway.Prepare(c.Request.Context(), order.Record)
	if err != nil {
		if errors.Is(err, catalog.ErrUnavailable) {
			respondCatalogUnavailable(c)
			return
		}
		respondError(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	if !submission.Validation.IsValid {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": errorDetail{
				Code:    "VALIDATION_ERROR",
				Message: "order failed validation",
				Status:  http.StatusBadRequest,
				Details: submission.Validation.Errors,
			},
			"validation":  submission.Validation,
			"resolutions": submission.Resolutions,
		})
		return
	}

	job := submission.Record["JOB"]
	if err := s.lab.Submit(c.Request.Context(), job, submission.VCA); err != nil {
		log.WithError(err).WithField("job", job).Error("Order submission failed")
		s.orders.MarkFailed(order.ID, err.Error())
		respondError(c, http.StatusBadGateway, "SUBMIT_FAILED", err.Error())
		return
	}

	updated, _ := s.orders.MarkSubmitted(order.ID, submission.Record, submission.VCA)
	c.JSON(http.StatusOK, gin.H{
		"order":      updated,
		"submission": submission,
	})
}

func (s *Server) lookupOrder(c *gin.Context) (orders.Order, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBadRequest(c, "invalid order id")
		return orders.Order{}, false
	}

	order, ok := s.orders.Get(id)
	if !ok {
		respondError(c, http.StatusNotFound, "ORDER_NOT_FOUND", "no such order")
		return orders.Order{}, false
	}
	return order, true
}
