package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	oaerrors "github.com/go-openapi/errors"
	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/webike_inventory/internal/core/domain"
)

type errorResponse struct {
	Error    string   `json:"error" example:"Bike not found"`
	Details  []string `json:"details,omitempty"`
	Redirect string   `json:"redirect,omitempty" example:"/login"`
}

type successResponse struct {
	Message string `json:"message" example:"Bike deleted successfully"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, errorResponse{Error: message})
}

func newValidationResponse(c *gin.Context, message string, details []string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
		Error:   message,
		Details: details,
	})
}

// newRedirectResponse answers a guarded route. Browsers follow Location, API clients read redirect.
func newRedirectResponse(c *gin.Context, statusCode int, message, location string) {
	c.Header("Location", location)
	c.AbortWithStatusJSON(statusCode, errorResponse{
		Error:    message,
		Redirect: location,
	})
}

// errorStatus maps domain and remote failures to an HTTP status.
func errorStatus(err error) int {
	var bikeErr *domain.BikeError
	switch {
	case errors.Is(err, domain.ErrBikeNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotConfigured), errors.Is(err, domain.ErrAuthConfiguration):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrUserLookup), errors.As(err, &bikeErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage returns the user facing text of err. Domain errors are already localized.
func errorMessage(err error, fallback string) string {
	var bikeErr *domain.BikeError
	var authErr *domain.AuthError
	if errors.As(err, &bikeErr) || errors.As(err, &authErr) {
		return err.Error()
	}
	return fallback
}

// validationDetails flattens go-openapi and validator errors into one message per field.
func validationDetails(err error) ([]string, bool) {
	var composite *oaerrors.CompositeError
	if errors.As(err, &composite) {
		details := make([]string, 0, len(composite.Errors))
		for _, e := range composite.Errors {
			details = append(details, e.Error())
		}
		return details, true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, fe.Field()+" failed on "+fe.Tag())
		}
		return details, true
	}
	return nil, false
}
