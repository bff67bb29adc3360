// Package docs holds the OpenAPI descriptor served at /swagger. Regenerate
// with `swag init -g cmd/api/main.go`.
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
        "/ping": {
            "get": {"tags": ["health"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/conversion/preview": {
            "post": {
                "tags": ["conversion"],
                "summary": "Price a conversion batch without starting it",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/request.ConversionInputsRequest"}}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/conversion/start": {
            "post": {
                "tags": ["conversion"],
                "summary": "Start a conversion batch (Idle -> Boiling)",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/request.ConversionInputsRequest"}}],
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/conversion/finish": {
            "post": {
                "tags": ["conversion"],
                "summary": "Finish the boiling batch and credit BN-5 stock",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/request.FinishConversionRequest"}}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}
                }
            }
        },
        "/conversion/batches/{id}": {
            "get": {
                "tags": ["conversion"],
                "summary": "Get a conversion batch (boiling or archived)",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/conversion/active": {
            "get": {"tags": ["conversion"], "summary": "Current kettle status, polled by viewers", "responses": {"200": {"description": "OK"}}}
        },
        "/conversion/active/stream": {
            "get": {
                "tags": ["conversion"],
                "summary": "Server-sent kettle status, one event per transition",
                "produces": ["text/event-stream"],
                "responses": {"200": {"description": "OK"}, "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/blend-session/recompute": {
            "post": {
                "tags": ["blend-session"],
                "summary": "Price a blend session (stateless)",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/blend-session/finalize": {
            "post": {
                "tags": ["blend-session"],
                "summary": "Finalize a blend session: debit materials and record production",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"201": {"description": "Created"}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/stock": {
            "get": {"tags": ["stock"], "summary": "Stock of every material category", "responses": {"200": {"description": "OK"}}}
        },
        "/stock/{category}": {
            "get": {
                "tags": ["stock"],
                "summary": "Stock of one category",
                "parameters": [{"in": "path", "name": "category", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/stock/{category}/credit": {
            "post": {
                "tags": ["stock"],
                "summary": "Receive material into stock",
                "parameters": [
                    {"in": "path", "name": "category", "type": "string", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/stock/{category}/debit": {
            "post": {
                "tags": ["stock"],
                "summary": "Take material out of stock",
                "parameters": [
                    {"in": "path", "name": "category", "type": "string", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/stock/{category}/price": {
            "put": {
                "tags": ["stock"],
                "summary": "Set the unit price of a category",
                "parameters": [
                    {"in": "path", "name": "category", "type": "string", "required": true},
                    {"in": "body", "name": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        },
        "/production-records/{id}": {
            "get": {
                "tags": ["production-records"],
                "summary": "Production record with its full cost breakdown",
                "parameters": [{"in": "path", "name": "id", "type": "string", "required": true}],
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/pkg.HTTPError"}}}
            }
        }
    },
    "definitions": {
        "pkg.HTTPError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "request.ConversionInputsRequest": {
            "type": "object",
            "properties": {
                "rawAmountKg": {"type": "number"},
                "wasteAmountKg": {"type": "number"},
                "gasVolume": {"type": "number"},
                "electricityKwh": {"type": "number"},
                "laborRatePerKg": {"type": "number"},
                "extraCost": {"type": "number"}
            }
        },
        "request.FinishConversionRequest": {
            "type": "object",
            "required": ["batchId"],
            "properties": {
                "batchId": {"type": "string"},
                "actualOutputKg": {"type": "number"},
                "forSaleKg": {"type": "number"},
                "forFillerKg": {"type": "number"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/v1",
	Schemes:          []string{},
	Title:            "Bitumen Production API",
	Description:      "BN-3 to BN-5 kettle conversion, blend packaging sessions and the material ledger.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
