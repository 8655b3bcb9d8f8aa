package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/tally/internal/models"
	"github.com/thenoetrevino/tally/internal/validation"
)

// writeError maps an error kind onto a status code and JSON body
func (s *Server) writeError(c *gin.Context, err error) {
	var (
		verr *validation.ValidationError
		nf   *models.NotFoundError
		dup  *models.DuplicateError
	)

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "validation failed",
			"violations": verr.Violations,
		})
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, gin.H{"error": nf.Error()})
	case errors.As(err, &dup):
		c.JSON(http.StatusConflict, gin.H{"error": dup.Error(), "id": dup.ID})
	default:
		s.logger.Error("request failed",
			"request_id", c.GetString(requestIDKey),
			"error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
