package handlers

import (
	"errors"
	"net/http"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/PRIGID-WEB-CLOUD/PortflowWrite/paystack"
	"github.com/PRIGID-WEB-CLOUD/PortflowWrite/storage"
)

// Handler holds the dependencies every endpoint needs. The repository and the
// payment client are injected at startup; there are no package-level globals.
type Handler struct {
	store    storage.Storage
	payments *paystack.Client
}

func New(store storage.Storage, payments *paystack.Client) *Handler {
	return &Handler{store: store, payments: payments}
}

// bindJSON binds the request body and, on validation failure, writes a 400
// with the given message and a field-level errors list. Returns false when the
// response has already been written.
func bindJSON(c *gin.Context, obj interface{}, message string) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fieldErrors := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			fieldErrors = append(fieldErrors, gin.H{
				"field":   jsonFieldName(fe.Field()),
				"message": validationMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": message, "errors": fieldErrors})
		return false
	}

	c.JSON(http.StatusBadRequest, gin.H{"message": message})
	return false
}

// jsonFieldName maps a Go struct field name to its json form ("Author" ->
// "author", "FeaturedImage" -> "featuredImage").
func jsonFieldName(field string) string {
	if field == "" {
		return field
	}
	runes := []rune(field)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Invalid email"
	case "gt":
		return "Must be greater than " + fe.Param()
	case "min":
		return "Must be at least " + fe.Param() + " characters"
	default:
		return "Invalid value"
	}
}
