// Package docs holds the OpenAPI description served at /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/convert": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Converts an amount between two currencies. The rate may come from a stale cache or the static fallback table; such responses carry the X-Rates-Degraded header.",
                "produces": ["application/json"],
                "tags": ["conversion"],
                "summary": "Convert an amount",
                "parameters": [
                    {"type": "number", "description": "Amount to convert", "name": "amount", "in": "query", "required": true},
                    {"type": "string", "description": "Source currency code", "name": "from", "in": "query", "required": true},
                    {"type": "string", "description": "Target currency code", "name": "to", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ConversionResponse"}},
                    "400": {"description": "Invalid amount or currency code", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Failed to convert amount", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/convert/batch": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Converts each entry independently. Entries with an unsupported currency carry an error and do not fail the batch.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["conversion"],
                "summary": "Convert several amounts",
                "parameters": [
                    {"description": "Conversions", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.BatchConvertRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.BatchConvertResponse"}},
                    "400": {"description": "Invalid input format", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/exchange-rates/cache": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Reports when the live rate cache was last written and when that write goes stale",
                "produces": ["application/json"],
                "tags": ["exchange rates"],
                "summary": "Get cache status",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CacheStatusResponse"}}}
            }
        },
        "/exchange-rates/refresh": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Drops every cached live rate so the next lookups go to the providers",
                "produces": ["application/json"],
                "tags": ["exchange rates"],
                "summary": "Refresh exchange rates",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CacheStatusResponse"}}}
            }
        },
        "/exchange-rates/{from}/{to}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Resolves the current rate for a currency pair",
                "produces": ["application/json"],
                "tags": ["exchange rates"],
                "summary": "Get an exchange rate",
                "parameters": [
                    {"maxLength": 3, "minLength": 3, "type": "string", "description": "From Currency Code (3 letters)", "name": "from", "in": "path", "required": true},
                    {"maxLength": 3, "minLength": 3, "type": "string", "description": "To Currency Code (3 letters)", "name": "to", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ExchangeRateResponse"}},
                    "400": {"description": "Unsupported currency code", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/exchange-rates/{from}/{to}/history": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Returns one rate per day from start to end inclusive. An end date before the start date yields an empty list.",
                "produces": ["application/json"],
                "tags": ["exchange rates"],
                "summary": "Get a rate history",
                "parameters": [
                    {"type": "string", "description": "From Currency Code", "name": "from", "in": "path", "required": true},
                    {"type": "string", "description": "To Currency Code", "name": "to", "in": "path", "required": true},
                    {"type": "string", "description": "Start date (YYYY-MM-DD)", "name": "start", "in": "query", "required": true},
                    {"type": "string", "description": "End date (YYYY-MM-DD)", "name": "end", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.HistoryResponse"}},
                    "400": {"description": "Invalid currency code or date range", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/currencies": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Retrieves every supported currency ordered by code",
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "List supported currencies",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/dto.CurrencyResponse"}}}}
            }
        },
        "/currencies/format": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Renders \"original (converted)\" when the currencies differ and a conversion is given, otherwise only the original",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "Format an amount with its conversion",
                "parameters": [
                    {"description": "Amount and conversion", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.FormatWithConversionRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FormatResponse"}}}
            }
        },
        "/currencies/detect/location/{country}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Maps an ISO 3166-1 alpha-2 country code to its currency. Unknown countries yield the default currency.",
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "Detect currency from a country",
                "parameters": [{"type": "string", "description": "Country code (e.g., JP)", "name": "country", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CurrencyResponse"}}}
            }
        },
        "/currencies/detect/market/{ticker}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Infers the trading currency of a ticker from its exchange suffix (e.g., 7203.T is JPY). Bare tickers are USD.",
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "Detect currency from a ticker",
                "parameters": [{"type": "string", "description": "Ticker symbol", "name": "ticker", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CurrencyResponse"}}}
            }
        },
        "/currencies/{code}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Retrieves details for a specific currency by its code",
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "Get a currency",
                "parameters": [{"type": "string", "description": "Currency Code (e.g., USD)", "name": "code", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.CurrencyResponse"}},
                    "404": {"description": "Unsupported currency code", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/currencies/{code}/format": {
            "get": {
                "security": [{"BearerAuth": []}],
                "description": "Renders an amount with the currency's symbol and decimals. An invalid locale falls back to the symbol and two decimals.",
                "produces": ["application/json"],
                "tags": ["currencies"],
                "summary": "Format an amount",
                "parameters": [
                    {"type": "string", "description": "Currency Code", "name": "code", "in": "path", "required": true},
                    {"type": "number", "description": "Amount", "name": "amount", "in": "query", "required": true},
                    {"type": "string", "description": "BCP 47 locale (defaults to the currency's locale)", "name": "locale", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.FormatResponse"}}}
            }
        },
        "/exposure": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Aggregates items per currency in the reporting currency, largest share first",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["exposure"],
                "summary": "Calculate currency exposure",
                "parameters": [{"description": "Items and reporting currency", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ExposureRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dto.ExposureResponse"}}}
            }
        },
        "/exposure/risk": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Scores the currency exposure (0-100) and derives recommendations, hedging opportunities and volatility metrics",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["exposure"],
                "summary": "Analyze currency risk",
                "parameters": [{"description": "Items and reporting currency", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dto.ExposureRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.CurrencyRiskAnalysis"}}}
            }
        }
    },
    "definitions": {
        "dto.ConversionResponse": {
            "type": "object",
            "properties": {
                "amount": {"type": "number"},
                "fromCurrency": {"type": "string"},
                "toCurrency": {"type": "string"},
                "convertedAmount": {"type": "number"},
                "exchangeRate": {"type": "number"},
                "lastUpdated": {"type": "string"},
                "source": {"type": "string"},
                "degraded": {"type": "boolean"},
                "error": {"type": "string"}
            }
        },
        "dto.ConversionItem": {
            "type": "object",
            "properties": {"amount": {"type": "number"}, "from": {"type": "string"}, "to": {"type": "string"}}
        },
        "dto.BatchConvertRequest": {
            "type": "object",
            "required": ["conversions"],
            "properties": {"conversions": {"type": "array", "items": {"$ref": "#/definitions/dto.ConversionItem"}}}
        },
        "dto.BatchConvertResponse": {
            "type": "object",
            "properties": {
                "results": {"type": "array", "items": {"$ref": "#/definitions/dto.ConversionResponse"}},
                "degraded": {"type": "boolean"}
            }
        },
        "dto.ExchangeRateResponse": {
            "type": "object",
            "properties": {
                "fromCurrencyCode": {"type": "string"},
                "toCurrencyCode": {"type": "string"},
                "rate": {"type": "number"},
                "timestamp": {"type": "string"},
                "source": {"type": "string"},
                "degraded": {"type": "boolean"}
            }
        },
        "dto.HistoricalRateResponse": {
            "type": "object",
            "properties": {"date": {"type": "string"}, "rate": {"type": "number"}, "source": {"type": "string"}, "degraded": {"type": "boolean"}}
        },
        "dto.HistoryResponse": {
            "type": "object",
            "properties": {
                "fromCurrencyCode": {"type": "string"},
                "toCurrencyCode": {"type": "string"},
                "rates": {"type": "array", "items": {"$ref": "#/definitions/dto.HistoricalRateResponse"}},
                "degraded": {"type": "boolean"}
            }
        },
        "dto.CacheStatusResponse": {
            "type": "object",
            "properties": {"lastUpdated": {"type": "string"}, "nextUpdate": {"type": "string"}, "entries": {"type": "integer"}, "ttlSeconds": {"type": "number"}}
        },
        "dto.CurrencyResponse": {
            "type": "object",
            "properties": {
                "currencyCode": {"type": "string"},
                "symbol": {"type": "string"},
                "name": {"type": "string"},
                "decimalPlaces": {"type": "integer"},
                "countries": {"type": "array", "items": {"type": "string"}},
                "locale": {"type": "string"},
                "volatility": {"type": "string"}
            }
        },
        "dto.FormatWithConversionRequest": {
            "type": "object",
            "required": ["currency", "targetCurrency"],
            "properties": {
                "amount": {"type": "number"},
                "currency": {"type": "string"},
                "targetCurrency": {"type": "string"},
                "convertedAmount": {"type": "number"},
                "exchangeRate": {"type": "number"},
                "locale": {"type": "string"}
            }
        },
        "dto.FormatResponse": {
            "type": "object",
            "properties": {"formatted": {"type": "string"}}
        },
        "dto.ExposureItemRequest": {
            "type": "object",
            "required": ["currency"],
            "properties": {
                "id": {"type": "string"},
                "kind": {"type": "string", "enum": ["investment", "income", "expense", "loan", "cash"]},
                "currency": {"type": "string"},
                "quantity": {"type": "number"},
                "currentPrice": {"type": "number"},
                "amount": {"type": "number"}
            }
        },
        "dto.ExposureRequest": {
            "type": "object",
            "properties": {
                "items": {"type": "array", "items": {"$ref": "#/definitions/dto.ExposureItemRequest"}},
                "reportingCurrency": {"type": "string"}
            }
        },
        "dto.ExposureResponse": {
            "type": "object",
            "properties": {"exposures": {"type": "array", "items": {"$ref": "#/definitions/domain.CurrencyExposure"}}}
        },
        "domain.CurrencyExposure": {
            "type": "object",
            "properties": {
                "currency": {"type": "string"},
                "totalValue": {"type": "object"},
                "percentage": {"type": "number"},
                "riskLevel": {"type": "string"},
                "source": {"type": "string"}
            }
        },
        "domain.CurrencyRiskAnalysis": {
            "type": "object",
            "properties": {
                "reportingCurrency": {"type": "string"},
                "exposures": {"type": "array", "items": {"$ref": "#/definitions/domain.CurrencyExposure"}},
                "riskScore": {"type": "integer"},
                "recommendations": {"type": "array", "items": {"type": "string"}},
                "hedgingOpportunities": {"type": "array", "items": {"type": "object"}},
                "volatilityMetrics": {"type": "array", "items": {"type": "object"}}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "FX Service API",
	Description:      "Currency conversion, exchange rates, exposure analysis and formatting.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
