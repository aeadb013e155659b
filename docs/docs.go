// Package docs holds the Swagger 2.0 description of the rentdocs API served at /swagger.
//
// The document is maintained by hand. It mirrors the swag annotations on the
// handlers in internal/http/handler and the general info on main; running
// `swag init -g cmd/api/main.go` regenerates an equivalent file.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "summary": "Liveness check",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/status"}}}
            }
        },
        "/validate": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "summary": "Check the bearer token and return the caller phone",
                "parameters": [
                    {"type": "string", "name": "token", "in": "query", "description": "Token when no Authorization header is sent"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/validateResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorPayload"}}
                }
            }
        },
        "/tool/generate_agreement": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Generate a rental agreement PDF",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/agreementRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/generateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorPayload"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorPayload"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errorPayload"}}
                }
            }
        },
        "/tool/generate_rent_receipt": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Generate a rent receipt PDF",
                "parameters": [
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/receiptRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/generateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/errorPayload"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorPayload"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errorPayload"}}
                }
            }
        },
        "/tool/stamp_duty_info": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Stamp duty reference for a jurisdiction",
                "parameters": [
                    {"name": "body", "in": "body", "schema": {"$ref": "#/definitions/stampDutyRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/stampDutyResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorPayload"}}
                }
            }
        },
        "/files/{category}/{name}": {
            "get": {
                "produces": ["application/pdf"],
                "summary": "Download a generated document",
                "parameters": [
                    {"type": "string", "enum": ["agreements", "receipts"], "name": "category", "in": "path", "required": true},
                    {"type": "string", "name": "name", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "PDF document", "schema": {"type": "file"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/errorPayload"}}
                }
            }
        },
        "/tools": {
            "get": {
                "produces": ["application/json"],
                "summary": "Tool manifest with input schemas",
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        }
    },
    "definitions": {
        "status": {
            "type": "object",
            "properties": {"status": {"type": "string", "example": "ok"}}
        },
        "validateResponse": {
            "type": "object",
            "properties": {"phone": {"type": "string"}}
        },
        "agreementRequest": {
            "type": "object",
            "required": ["landlord", "tenant", "address", "rent", "deposit", "start_date", "duration_months"],
            "properties": {
                "landlord": {"type": "string"},
                "tenant": {"type": "string"},
                "address": {"type": "string"},
                "rent": {"type": "number"},
                "deposit": {"type": "number"},
                "start_date": {"type": "string", "format": "date"},
                "duration_months": {"type": "integer"}
            }
        },
        "receiptRequest": {
            "type": "object",
            "required": ["payer", "payee", "amount", "date"],
            "properties": {
                "payer": {"type": "string"},
                "payee": {"type": "string"},
                "amount": {"type": "number"},
                "date": {"type": "string", "format": "date"},
                "address": {"type": "string"},
                "payment_mode": {"type": "string"},
                "remarks": {"type": "string"}
            }
        },
        "generateResponse": {
            "type": "object",
            "properties": {
                "url": {"type": "string"},
                "link": {"type": "string"},
                "answer": {"type": "string"},
                "id": {"type": "string"},
                "verification_code": {"type": "string"}
            }
        },
        "stampDutyRequest": {
            "type": "object",
            "properties": {
                "jurisdiction": {"type": "string"},
                "state": {"type": "string"}
            }
        },
        "stampDutyResponse": {
            "type": "object",
            "properties": {
                "jurisdiction": {"type": "string"},
                "found": {"type": "boolean"},
                "rateDescription": {"type": "string"},
                "referenceUrl": {"type": "string"},
                "minRatePercent": {"type": "number"},
                "maxRatePercent": {"type": "number"},
                "answer": {"type": "string"}
            }
        },
        "fieldError": {
            "type": "object",
            "properties": {
                "field": {"type": "string"},
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "errorPayload": {
            "type": "object",
            "properties": {
                "request_id": {"type": "string"},
                "error": {
                    "type": "object",
                    "properties": {
                        "code": {"type": "string"},
                        "message": {"type": "string"},
                        "fields": {"type": "array", "items": {"$ref": "#/definitions/fieldError"}}
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "RentSmart document API",
	Description:      "Generates rental agreements and rent receipts as PDFs and serves stamp duty reference data.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
