// Package apidocs registers the OpenAPI document served by the Swagger UI.
// Regenerate with `swag init -g cmd/recommender/docs.go -o internal/apidocs`.
package apidocs

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
        "/api/options": {
            "get": {
                "produces": ["application/json"],
                "tags": ["wizard"],
                "summary": "Selectable types, genres and moods",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.OptionsResponse"}}}
            }
        },
        "/api/recommendations": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["wizard"],
                "summary": "Build the prompt and ask the model for recommendations",
                "parameters": [{"description": "Preferences", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.RecommendationRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.RecommendationResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/api/wizard": {
            "get": {
                "produces": ["application/json"],
                "tags": ["wizard"],
                "summary": "Current wizard state for the session cookie",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.WizardState"}}}
            }
        },
        "/admin/foundation-models": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "List foundation models",
                "parameters": [
                    {"type": "string", "description": "Provider name, e.g. Amazon", "name": "provider", "in": "query"},
                    {"type": "string", "description": "FINE_TUNING, CONTINUED_PRE_TRAINING or DISTILLATION", "name": "customization_type", "in": "query"},
                    {"type": "string", "description": "TEXT, IMAGE or EMBEDDING", "name": "output_modality", "in": "query"},
                    {"type": "string", "description": "ON_DEMAND or PROVISIONED", "name": "inference_type", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/admin/customization-jobs": {
            "post": {
                "description": "The body is the Bedrock CreateModelCustomizationJob input, keyed by SDK field names.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Create a model customization job",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/admin/customization-jobs/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["admin"],
                "summary": "Get a model customization job",
                "parameters": [{"type": "string", "description": "Job name or ARN", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
                }
            }
        },
        "/status": {
            "get": {
                "produces": ["application/json"],
                "tags": ["ops"],
                "summary": "Service status",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.StatusResponse"}}}
            }
        }
    },
    "definitions": {
        "types.ErrorResponse": {
            "type": "object",
            "properties": {"code": {"type": "integer", "example": 400}, "error": {"type": "string", "example": "mood is required"}}
        },
        "types.OptionsResponse": {
            "type": "object",
            "properties": {
                "genres": {"type": "array", "items": {"type": "string"}},
                "moods": {"type": "array", "items": {"type": "string"}},
                "types": {"type": "array", "items": {"type": "string"}}
            }
        },
        "types.RecommendationRequest": {
            "type": "object",
            "required": ["favorite", "genre", "mood", "type"],
            "properties": {
                "favorite": {"type": "string", "example": "Inception"},
                "genre": {"type": "string", "example": "Sci-Fi"},
                "mood": {"type": "string", "example": "Excited"},
                "type": {"type": "string", "example": "Movies"}
            }
        },
        "types.RecommendationResponse": {
            "type": "object",
            "properties": {"listing": {"type": "string"}, "prompt": {"type": "string"}}
        },
        "types.StatusResponse": {
            "type": "object",
            "properties": {
                "evictions_total": {"type": "integer"},
                "inflight": {"type": "integer"},
                "last_error": {"type": "string"},
                "model_id": {"type": "string"},
                "region": {"type": "string"},
                "server_time_unix": {"type": "integer"},
                "sessions": {"type": "integer"},
                "submissions_failed": {"type": "integer"},
                "submissions_ok": {"type": "integer"},
                "uptime_seconds": {"type": "integer"}
            }
        },
        "types.WizardState": {
            "type": "object",
            "properties": {
                "canSubmit": {"type": "boolean"},
                "favorite": {"type": "string"},
                "formSubmitted": {"type": "boolean"},
                "genre": {"type": "string"},
                "isLoading": {"type": "boolean"},
                "listing": {"type": "string"},
                "mood": {"type": "string"},
                "step": {"type": "integer"},
                "type": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "recommender API",
	Description:      "Preference wizard and model-backed recommendations, plus Bedrock admin pass-through.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
