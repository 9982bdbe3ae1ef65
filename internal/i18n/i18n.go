// Package i18n translates user-facing messages of the box calculator service.
package i18n

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

const (
	// DefaultLocale is the default language locale (English).
	DefaultLocale = "en"
	// AcceptLanguageHeader is the HTTP header name for language preference.
	AcceptLanguageHeader = "Accept-Language"
)

var (
	// defaultTranslator is the singleton translator instance.
	defaultTranslator *Translator
	translatorOnce    sync.Once
)

// Translator handles message translation for different locales.
type Translator struct {
	messages map[string]map[string]string
}

// NewTranslator creates a new translator with the default messages.
func NewTranslator() *Translator {
	return &Translator{
		messages: getDefaultMessages(),
	}
}

// GetTranslator returns the default singleton translator instance.
func GetTranslator() *Translator {
	translatorOnce.Do(func() {
		defaultTranslator = NewTranslator()
	})
	return defaultTranslator
}

// Translate returns the message for key in locale.
// Unknown locales and keys missing from a locale fall back to English; an unknown key returns itself.
func (t *Translator) Translate(key, locale string) string {
	if msg, ok := t.messages[locale][key]; ok {
		return msg
	}
	if msg, ok := t.messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Supports reports whether locale has a message table.
func (t *Translator) Supports(locale string) bool {
	_, ok := t.messages[locale]
	return ok
}

// GetLocale picks the first supported language of the Accept-Language header,
// in the order the client listed them. Quality weights are not re-sorted.
func GetLocale(c *gin.Context) string {
	header := c.GetHeader(AcceptLanguageHeader)
	if header == "" {
		return DefaultLocale
	}

	translator := GetTranslator()
	for _, part := range strings.Split(header, ",") {
		tag, _, _ := strings.Cut(part, ";")
		lang, _, _ := strings.Cut(strings.TrimSpace(tag), "-")
		lang = strings.ToLower(lang)
		if translator.Supports(lang) {
			return lang
		}
	}
	return DefaultLocale
}

// getDefaultMessages returns the default message translations.
func getDefaultMessages() map[string]map[string]string {
	return map[string]map[string]string{
		"en": {
			// Error messages
			"error.invalid_request":            "Invalid request",
			"error.invalid_request_body":       "Invalid request body",
			"error.internal_error":             "An unexpected error occurred",
			"error.not_found":                  "Not found",
			"error.rate_limit_exceeded":        "Too many requests, please try again later",
			"error.conflict":                   "Conflict",
			"error.timeout":                    "The request took too long to complete",
			"error.service_unavailable":        "Product catalog is temporarily unavailable",
			"error.validation.quantity":        "quantity: must be a positive integer",
			"error.validation.pieces_per_box":  "pieces_per_box: must be a positive integer",
			"error.validation.shipping_method": "shipping_method: must be one of standard, express, freight",
			"error.product_required":           "Either product_id or product is required",
			"error.product_not_found":          "Product not found",
			"error.product_needs_review":       "Product packaging data requires manual review",
			"error.import.empty":               "At least one product is required",
			"error.import.too_large":           "Too many products in one import",

			// Success messages
			"success.product_validated":    "Product validated",
			"success.product_prepared":     "Product prepared successfully",
			"success.products_imported":    "Products imported",
			"success.order_calculated":     "Order calculated successfully",
			"success.breakdown_calculated": "Box breakdown calculated",
			"success.shipping_estimated":   "Shipping cost estimated",
			"success.quote_created":        "Quote created successfully",
		},
		"es": {
			// Error messages
			"error.invalid_request":            "Solicitud inválida",
			"error.invalid_request_body":       "Cuerpo de la solicitud inválido",
			"error.internal_error":             "Ocurrió un error inesperado",
			"error.not_found":                  "No encontrado",
			"error.rate_limit_exceeded":        "Demasiadas solicitudes, intente más tarde",
			"error.conflict":                   "Conflicto",
			"error.timeout":                    "La solicitud tardó demasiado",
			"error.service_unavailable":        "El catálogo de productos no está disponible",
			"error.validation.quantity":        "quantity: debe ser un entero positivo",
			"error.validation.pieces_per_box":  "pieces_per_box: debe ser un entero positivo",
			"error.validation.shipping_method": "shipping_method: debe ser standard, express o freight",
			"error.product_required":           "Se requiere product_id o product",
			"error.product_not_found":          "Producto no encontrado",
			"error.product_needs_review":       "Los datos de empaque del producto requieren revisión manual",
			"error.import.empty":               "Se requiere al menos un producto",
			"error.import.too_large":           "Demasiados productos en una sola importación",

			// Success messages
			"success.product_validated":    "Producto validado",
			"success.product_prepared":     "Producto preparado correctamente",
			"success.products_imported":    "Productos importados",
			"success.order_calculated":     "Pedido calculado correctamente",
			"success.breakdown_calculated": "Desglose de cajas calculado",
			"success.shipping_estimated":   "Costo de envío estimado",
			"success.quote_created":        "Cotización generada correctamente",
		},
		"pt": {
			// Error messages
			"error.invalid_request":            "Requisição inválida",
			"error.invalid_request_body":       "Corpo da requisição inválido",
			"error.internal_error":             "Ocorreu um erro inesperado",
			"error.not_found":                  "Não encontrado",
			"error.rate_limit_exceeded":        "Muitas requisições, tente novamente mais tarde",
			"error.conflict":                   "Conflito",
			"error.timeout":                    "A requisição demorou demais",
			"error.service_unavailable":        "Catálogo de produtos temporariamente indisponível",
			"error.validation.quantity":        "quantity: deve ser um inteiro positivo",
			"error.validation.pieces_per_box":  "pieces_per_box: deve ser um inteiro positivo",
			"error.validation.shipping_method": "shipping_method: deve ser standard, express ou freight",
			"error.product_required":           "Informe product_id ou product",
			"error.product_not_found":          "Produto não encontrado",
			"error.product_needs_review":       "Os dados de embalagem do produto precisam de revisão manual",
			"error.import.empty":               "Informe pelo menos um produto",
			"error.import.too_large":           "Produtos demais em uma importação",

			// Success messages
			"success.product_validated":    "Produto validado",
			"success.product_prepared":     "Produto preparado com sucesso",
			"success.products_imported":    "Produtos importados",
			"success.order_calculated":     "Pedido calculado com sucesso",
			"success.breakdown_calculated": "Divisão em caixas calculada",
			"success.shipping_estimated":   "Frete estimado",
			"success.quote_created":        "Cotação criada com sucesso",
		},
		"nl": {
			// Error messages
			"error.invalid_request":            "Ongeldig verzoek",
			"error.invalid_request_body":       "Ongeldige aanvraag body",
			"error.internal_error":             "Er is een onverwachte fout opgetreden",
			"error.not_found":                  "Niet gevonden",
			"error.rate_limit_exceeded":        "Te veel verzoeken, probeer het later opnieuw",
			"error.conflict":                   "Conflict",
			"error.timeout":                    "Het verzoek duurde te lang",
			"error.service_unavailable":        "Productcatalogus is tijdelijk niet beschikbaar",
			"error.validation.quantity":        "quantity: moet een positief geheel getal zijn",
			"error.validation.pieces_per_box":  "pieces_per_box: moet een positief geheel getal zijn",
			"error.validation.shipping_method": "shipping_method: moet standard, express of freight zijn",
			"error.product_required":           "product_id of product is vereist",
			"error.product_not_found":          "Product niet gevonden",
			"error.product_needs_review":       "Verpakkingsgegevens van het product vereisen handmatige controle",
			"error.import.empty":               "Minstens één product is vereist",
			"error.import.too_large":           "Te veel producten in één import",

			// Success messages
			"success.product_validated":    "Product gevalideerd",
			"success.product_prepared":     "Product succesvol voorbereid",
			"success.products_imported":    "Producten geïmporteerd",
			"success.order_calculated":     "Bestelling succesvol berekend",
			"success.breakdown_calculated": "Dozenverdeling berekend",
			"success.shipping_estimated":   "Verzendkosten geschat",
			"success.quote_created":        "Offerte succesvol aangemaakt",
		},
	}
}
