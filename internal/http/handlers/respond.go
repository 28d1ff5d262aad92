package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/bannermatch/bannermatch/internal/domain"
)

// respondError writes a usecase error as JSON with the status it
// carries; anything that is not an AppError becomes an opaque 500.
func respondError(c *gin.Context, err error) {
	if appErr, ok := domain.IsAppError(err); ok {
		c.JSON(appErr.HTTPStatus, appErr)
		return
	}
	c.JSON(http.StatusInternalServerError, domain.NewInternalError("", err))
}

// respondBindingError converts a gin binding failure into a 400 with
// field-level detail where the validator provides it.
func respondBindingError(c *gin.Context, err error) {
	appErr := domain.NewAppError(domain.ErrCodeValidation, "Invalid request body", http.StatusBadRequest, err)

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			appErr.Errors = append(appErr.Errors, domain.FieldError{
				Field:   fieldErr.Field(),
				Message: "failed on '" + fieldErr.Tag() + "' validation",
			})
		}
	}

	c.JSON(http.StatusBadRequest, appErr)
}

// pathID parses a numeric path parameter. Non-numeric ids are rejected
// with 400 before any store access; numeric ids that match nothing
// surface as 404 from the store lookup.
func pathID(c *gin.Context, name, resource string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(
			domain.ErrCodeInvalidFormat,
			"Invalid "+resource+" ID",
			http.StatusBadRequest,
			nil,
		))
		return 0, false
	}
	return id, true
}
