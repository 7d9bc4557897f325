package server

import (
	"errors"
	"net/http"

	authdomain "github.com/acmehq/invoicedesk/internal/auth/domain"
	customerdomain "github.com/acmehq/invoicedesk/internal/customer/domain"
	dashboarddomain "github.com/acmehq/invoicedesk/internal/dashboard/domain"
	invoicedomain "github.com/acmehq/invoicedesk/internal/invoice/domain"
	"github.com/acmehq/invoicedesk/internal/validation"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type errorPayload struct {
	Type    string                 `json:"type"`
	Message string                 `json:"message"`
	Errors  validation.FieldErrors `json:"errors,omitempty"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

var (
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotFound       = errors.New("not_found")
	ErrInvalidRequest = errors.New("invalid_request")
)

// ErrorHandlingMiddleware renders the last recorded error as JSON if the
// handler has not written a response itself.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	var fieldErrs *validation.Errors
	if errors.As(err, &fieldErrs) {
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: fieldErrs.Message,
			Errors:  fieldErrs.FieldErrors,
		}
	}

	switch {
	case errors.Is(err, invoicedomain.ErrNotFound),
		errors.Is(err, ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, errorPayload{Type: "not_found", Message: "Invoice not found."}
	case errors.Is(err, invoicedomain.ErrCreateFailed):
		return http.StatusInternalServerError, errorPayload{Type: "database_error", Message: invoicedomain.MsgCreateFailed}
	case errors.Is(err, invoicedomain.ErrUpdateFailed):
		return http.StatusInternalServerError, errorPayload{Type: "database_error", Message: invoicedomain.MsgUpdateFailed}
	case errors.Is(err, invoicedomain.ErrDeleteFailed):
		return http.StatusInternalServerError, errorPayload{Type: "database_error", Message: invoicedomain.MsgDeleteFailed}
	case errors.Is(err, authdomain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorPayload{Type: "unauthorized", Message: authdomain.MsgInvalidCredentials}
	case errors.Is(err, authdomain.ErrInvalidSession),
		errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, errorPayload{Type: "unauthorized", Message: "unauthorized"}
	case errors.Is(err, authdomain.ErrRegistrationFailed):
		return http.StatusInternalServerError, errorPayload{Type: "internal_error", Message: authdomain.MsgRegistrationFailed}
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, errorPayload{Type: "invalid_request", Message: "invalid request"}
	case errors.Is(err, invoicedomain.ErrFetchList),
		errors.Is(err, invoicedomain.ErrFetchPages),
		errors.Is(err, invoicedomain.ErrFetchOne),
		errors.Is(err, customerdomain.ErrFetchCustomers),
		errors.Is(err, customerdomain.ErrFetchCustomerTable),
		errors.Is(err, dashboarddomain.ErrFetchRevenue),
		errors.Is(err, dashboarddomain.ErrFetchLatest),
		errors.Is(err, dashboarddomain.ErrFetchCards):
		return http.StatusInternalServerError, errorPayload{Type: "database_error", Message: err.Error()}
	default:
		return http.StatusInternalServerError, errorPayload{Type: "internal_error", Message: authdomain.MsgAuthFailed}
	}
}
