// Package docs registers the swagger document served under /swagger. Keep it in step with the route annotations.
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
        "/api/v1/assistant/chat": {
            "post": {
                "description": "Answers one user turn. The reply starts with a \"[source: ...]\" provenance tag.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Assistant"],
                "summary": "Chat with the nutrition assistant",
                "parameters": [
                    {
                        "description": "User message and prior turns",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.chatReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.chatResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Check if the API is healthy",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/live": {
            "get": {
                "description": "Check if the API is alive",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/metrics": {
            "get": {
                "description": "Prometheus metrics in text exposition format",
                "produces": ["text/plain"],
                "tags": ["Health"],
                "summary": "Metrics",
                "responses": {"200": {"description": "Metrics"}}
            }
        },
        "/ready": {
            "get": {
                "description": "Report the catalog providers and language model providers in use",
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {"200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}}}
            }
        }
    },
    "definitions": {
        "http.chatReq": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "history": {"type": "array", "items": {"$ref": "#/definitions/http.historyItem"}},
                "message": {"type": "string"}
            }
        },
        "http.chatResp": {
            "type": "object",
            "properties": {
                "mode": {"type": "string"},
                "reply": {"type": "string"},
                "source": {"type": "string"}
            }
        },
        "http.historyItem": {
            "type": "object",
            "required": ["role"],
            "properties": {
                "content": {"type": "string"},
                "role": {"type": "string"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "data": {},
                "error_code": {"type": "integer"},
                "errors": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Nutrition Assistant API",
	Description:      "Conversational nutrition assistant grounded on USDA FoodData Central and Open Food Facts.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
