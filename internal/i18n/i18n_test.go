//go:build !integration

package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetTranslator_Singleton(t *testing.T) {
	assert.Same(t, GetTranslator(), GetTranslator())
}

func TestTranslator_Translate(t *testing.T) {
	translator := NewTranslator()

	tests := []struct {
		name     string
		key      string
		locale   string
		expected string
	}{
		{"english quantity", ErrKeyValidationQuantity, "en", "quantity: must be a positive integer"},
		{"spanish review", ErrKeyProductNeedsReview, "es", "Los datos de empaque del producto requieren revisión manual"},
		{"portuguese quote", SuccessKeyQuoteCreated, "pt", "Cotação criada com sucesso"},
		{"dutch method", ErrKeyUnknownShippingMethod, "nl", "shipping_method: moet standard, express of freight zijn"},
		{"empty locale is english", ErrKeyInvalidRequest, "", "Invalid request"},
		{"unsupported locale is english", ErrKeyInvalidRequest, "fr", "Invalid request"},
		{"unknown key returns key", "error.unknown", "es", "error.unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, translator.Translate(tt.key, tt.locale))
		})
	}
}

func TestTranslator_Supports(t *testing.T) {
	translator := NewTranslator()

	for _, locale := range []string{"en", "es", "pt", "nl"} {
		assert.True(t, translator.Supports(locale), locale)
	}
	assert.False(t, translator.Supports("fr"))
	assert.False(t, translator.Supports(""))
}

func TestGetLocale(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		acceptLanguage string
		expected       string
	}{
		{"no header", "", DefaultLocale},
		{"plain spanish", "es", "es"},
		{"region stripped", "es-MX", "es"},
		{"first listed wins", "pt-BR,es;q=0.9", "pt"},
		{"skips unsupported", "fr-CA,fr;q=0.9,nl;q=0.8", "nl"},
		{"nothing supported", "fr,de", DefaultLocale},
		{"case insensitive", "ES-ar", "es"},
		{"whitespace around tags", " de , es ;q=0.5", "es"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/quotes", nil)
			if tt.acceptLanguage != "" {
				req.Header.Set(AcceptLanguageHeader, tt.acceptLanguage)
			}
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = req

			assert.Equal(t, tt.expected, GetLocale(c))
		})
	}
}

func TestMessages_EveryLocaleHasEveryKey(t *testing.T) {
	messages := getDefaultMessages()
	english := messages[DefaultLocale]

	for locale, localeMessages := range messages {
		for key := range english {
			assert.Contains(t, localeMessages, key, "locale %s misses %s", locale, key)
		}
		assert.Len(t, localeMessages, len(english), "locale %s has extra keys", locale)
	}
}

func TestKeys_HaveEnglishMessages(t *testing.T) {
	translator := NewTranslator()
	keys := []string{
		ErrKeyInvalidRequest, ErrKeyInvalidRequestBody, ErrKeyInternalError, ErrKeyNotFound,
		ErrKeyRateLimitExceeded, ErrKeyConflict, ErrKeyTimeout, ErrKeyServiceUnavailable,
		ErrKeyValidationQuantity, ErrKeyValidationPiecesPerBox, ErrKeyUnknownShippingMethod,
		ErrKeyProductRequired, ErrKeyProductNotFound, ErrKeyProductNeedsReview,
		ErrKeyEmptyBatch, ErrKeyBatchTooLarge,
		SuccessKeyProductValidated, SuccessKeyProductPrepared, SuccessKeyProductsImported,
		SuccessKeyOrderCalculated, SuccessKeyBreakdownCalculated, SuccessKeyShippingEstimated,
		SuccessKeyQuoteCreated,
	}

	for _, key := range keys {
		assert.NotEqual(t, key, translator.Translate(key, DefaultLocale), "missing message for %s", key)
	}
}
