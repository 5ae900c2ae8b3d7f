package controllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"mtop_registry/internal/query"
	"mtop_registry/internal/validation"
)

// bindListParams reads the list request body. An empty body is fine: every
// parameter has a default.
func bindListParams(c *gin.Context) (query.Params, bool) {
	var params query.Params
	if err := c.ShouldBindJSON(&params); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return params, false
	}
	return params, true
}

func listMeta[T any](result query.Result[T]) gin.H {
	return gin.H{
		"total":    result.Total,
		"page":     result.Page,
		"per_page": result.PerPage,
	}
}

// respondListError maps query-engine failures: a rejected sort is the
// client's fault, anything else is ours.
func respondListError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, query.ErrInvalidSortField):
		respondFieldError(c, "sort_field", "The sort field is not sortable for this entity.")
	case errors.Is(err, query.ErrInvalidSortDirection):
		respondFieldError(c, "sort_direction", "The sort direction must be asc or desc.")
	default:
		logrus.WithError(err).Error("List query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch records."})
	}
}

func respondValidation(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": "The given data was invalid.",
		"errors":  validation.Messages(err),
	})
}

func respondFieldErrors(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"message": "The given data was invalid.",
		"errors":  fields,
	})
}

func respondFieldError(c *gin.Context, field, message string) {
	respondFieldErrors(c, map[string]string{field: message})
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID format."})
		return 0, false
	}
	return uint(id), true
}

// isUniqueViolation matches the constraint errors of both supported drivers.
// The unique index is what actually guards against concurrent duplicates; the
// pre-checks in the controllers only exist for friendlier messages.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value") || // postgres
		strings.Contains(msg, "UNIQUE constraint failed") // sqlite
}

// parseDateField parses a required YYYY-MM-DD field into out, collecting any
// problem into errs under the field's name.
func parseDateField(field, value string, future bool, errs map[string]string) time.Time {
	parsed, err := validation.ParseDate(value)
	if err != nil {
		errs[field] = "Please enter a valid date."
		return time.Time{}
	}
	if future && !validation.InFuture(parsed) {
		errs[field] = "The " + strings.ReplaceAll(field, "_", " ") + " must be a future date."
	} else if !future && validation.InFuture(parsed) {
		errs[field] = "The " + strings.ReplaceAll(field, "_", " ") + " cannot be in the future."
	}
	return parsed
}

// parseOptionalDateField is parseDateField for nullable date fields.
func parseOptionalDateField(field string, value *string, errs map[string]string) *time.Time {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	parsed := parseDateField(field, *value, false, errs)
	if _, bad := errs[field]; bad {
		return nil
	}
	return &parsed
}
