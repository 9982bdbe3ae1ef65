// Package docs registers the OpenAPI description served under /swagger.
// It follows the layout of swag init output but is maintained by hand; keep it
// in step with the @Router annotations in internal/http.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "termsOfService": "http://swagger.io/terms/",
        "contact": {
            "name": "API Support",
            "url": "https://github.com/guttosm/boxcalc-service",
            "email": "support@example.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/boxes/breakdown": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Orders"],
                "summary": "Split a quantity into boxes",
                "parameters": [
                    {"type": "integer", "description": "Units ordered (zero or more)", "name": "quantity", "in": "query", "required": true},
                    {"type": "integer", "description": "Units per box (positive)", "name": "pieces_per_box", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "Box breakdown", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "400": {"description": "Invalid quantity or pieces per box", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/orders/calculate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Orders"],
                "summary": "Calculate an order line",
                "parameters": [
                    {"description": "Product and quantity", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CalculateOrderRequest"}}
                ],
                "responses": {
                    "200": {"description": "Order calculation", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "400": {"description": "Missing product or non-positive quantity", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Product not found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "422": {"description": "Product needs review", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "503": {"description": "Catalog unavailable", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "List products",
                "parameters": [
                    {"type": "boolean", "description": "Only products that do or do not need review", "name": "requires_review", "in": "query"},
                    {"type": "string", "description": "Supplier filter", "name": "supplier_id", "in": "query"},
                    {"type": "integer", "description": "Page size (max 500)", "name": "limit", "in": "query"},
                    {"type": "integer", "description": "Items to skip", "name": "skip", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Product page", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "400": {"description": "Invalid query", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "503": {"description": "Catalog unavailable", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/products/import": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Import a batch of products",
                "parameters": [
                    {"description": "Products", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ImportProductsRequest"}}
                ],
                "responses": {
                    "200": {"description": "Import summary", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "400": {"description": "Empty or oversized batch", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "503": {"description": "Catalog unavailable", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/products/prepare": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Prepare and store a product",
                "parameters": [
                    {"description": "Product", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ProductPayload"}}
                ],
                "responses": {
                    "200": {"description": "Prepared product", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "400": {"description": "Invalid product", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "503": {"description": "Catalog unavailable", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/products/validate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Validate product packaging data",
                "parameters": [
                    {"description": "Product", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ProductPayload"}}
                ],
                "responses": {
                    "200": {"description": "Validation result", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "400": {"description": "Malformed body", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/products/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Products"],
                "summary": "Get a product",
                "parameters": [
                    {"type": "string", "description": "Product ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Product", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "404": {"description": "Product not found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "503": {"description": "Catalog unavailable", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/quotes": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Quotes"],
                "summary": "Quote an order line",
                "parameters": [
                    {"description": "Product, quantity and shipping method", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/QuoteRequest"}}
                ],
                "responses": {
                    "200": {"description": "Quote", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "400": {"description": "Missing product, non-positive quantity or unknown method", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "404": {"description": "Product not found", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "422": {"description": "Product needs review", "schema": {"$ref": "#/definitions/ErrorResponse"}},
                    "503": {"description": "Catalog unavailable", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/api/shipping/estimate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Shipping"],
                "summary": "Estimate shipping cost",
                "parameters": [
                    {"description": "Shipment totals", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ShippingEstimateRequest"}}
                ],
                "responses": {
                    "200": {"description": "Shipping estimate", "schema": {"$ref": "#/definitions/SuccessResponse"}},
                    "400": {"description": "Negative totals or unknown method", "schema": {"$ref": "#/definitions/ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness probe",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/readyz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness probe",
                "responses": {"200": {"description": "Ready"}, "503": {"description": "Not ready"}}
            }
        }
    },
    "definitions": {
        "CalculateOrderRequest": {
            "type": "object",
            "properties": {
                "product": {"$ref": "#/definitions/ProductPayload"},
                "product_id": {"type": "string", "example": "9b2f6f0e-8a43-4c55-9d0a-7f8a1c5e2b10"},
                "quantity": {"type": "integer", "example": 27}
            }
        },
        "DimensionsPayload": {
            "type": "object",
            "properties": {
                "height_cm": {"type": "number", "example": 20},
                "length_cm": {"type": "number", "example": 40},
                "width_cm": {"type": "number", "example": 30}
            }
        },
        "BoxInfoPayload": {
            "type": "object",
            "properties": {
                "dimensions": {"$ref": "#/definitions/DimensionsPayload"},
                "pieces_per_box": {"type": "integer", "example": 10},
                "price_per_box": {"type": "number", "minimum": 0, "example": 150},
                "weight_kg": {"type": "number", "example": 20}
            }
        },
        "ErrorResponse": {
            "type": "object",
            "properties": {
                "details": {"type": "object", "additionalProperties": {"type": "string"}},
                "error": {"type": "string", "example": "invalid_request"},
                "message": {"type": "string", "example": "quantity: must be a positive integer"},
                "request_id": {"type": "string", "example": "550e8400-e29b-41d4-a716-446655440000"},
                "timestamp": {"type": "string", "example": "2025-01-28T10:00:00Z"}
            }
        },
        "ImportProductsRequest": {
            "type": "object",
            "properties": {
                "products": {"type": "array", "items": {"$ref": "#/definitions/ProductPayload"}}
            }
        },
        "ProductPayload": {
            "type": "object",
            "properties": {
                "box_info": {"$ref": "#/definitions/BoxInfoPayload"},
                "name": {"type": "string", "maxLength": 200, "example": "Taza cerámica 11oz"},
                "sku": {"type": "string", "maxLength": 64, "example": "MUG-11-WHT"},
                "supplier_id": {"type": "string", "maxLength": 64, "example": "supplier-01"},
                "technical_info": {"type": "object"}
            }
        },
        "QuoteRequest": {
            "type": "object",
            "required": ["shipping_method"],
            "properties": {
                "product": {"$ref": "#/definitions/ProductPayload"},
                "product_id": {"type": "string", "example": "9b2f6f0e-8a43-4c55-9d0a-7f8a1c5e2b10"},
                "quantity": {"type": "integer", "example": 20},
                "shipping_method": {"type": "string", "enum": ["standard", "express", "freight"], "example": "standard"}
            }
        },
        "ShippingEstimateRequest": {
            "type": "object",
            "required": ["method"],
            "properties": {
                "method": {"type": "string", "enum": ["standard", "express", "freight"], "example": "standard"},
                "total_volume_m3": {"type": "number", "minimum": 0, "example": 0.1},
                "total_weight_kg": {"type": "number", "minimum": 0, "example": 50}
            }
        },
        "SuccessResponse": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "message": {"type": "string", "example": "Quote created successfully"},
                "request_id": {"type": "string", "example": "550e8400-e29b-41d4-a716-446655440000"},
                "timestamp": {"type": "string", "example": "2025-01-28T10:00:00Z"}
            }
        }
    },
    "tags": [
        {"description": "Product packaging validation and catalog", "name": "Products"},
        {"description": "Order calculation and box breakdown", "name": "Orders"},
        {"description": "Shipping cost estimation", "name": "Shipping"},
        {"description": "Priced order quotes", "name": "Quotes"},
        {"description": "Health check endpoints", "name": "Health"}
    ]
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Boxcalc Service API",
	Description:      "API for validating supplier box packaging data and quoting orders.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
