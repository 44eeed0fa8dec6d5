package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// errorDetail is the body of every error response.
type errorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Details interface{} `json:"details,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"error": errorDetail{Code: code, Message: message, Status: status}})
}

func respondBadRequest(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, "BAD_REQUEST", message)
}

func respondCatalogUnavailable(c *gin.Context) {
	respondError(c, http.StatusServiceUnavailable, "CATALOG_UNAVAILABLE", "catalog data source unavailable")
}
