// Package docs registers the OpenAPI description served under /swagger.
// Regenerate with `swag init -g cmd/main.go` after changing handler annotations.
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/auth/sign-up": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a user",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "object", "additionalProperties": {"type": "integer"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "409": {"description": "Username taken", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/auth/sign-in": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Obtain a bearer token",
                "parameters": [
                    {"description": "Credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.authCredentials"}}
                ],
                "responses": {
                    "200": {"description": "token, token_type", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/adjust-temperature": {
            "post": {
                "description": "Temperatures may be numbers or numeric strings. Omitted fields use defaults (22, 20, 23, Morning).",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["thermostat"],
                "summary": "Compute a thermostat adjustment",
                "parameters": [
                    {"description": "Room conditions", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.AdjustTemperatureRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.AdjustmentResult"}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/history": {
            "get": {
                "description": "Newest first. Without query parameters the whole history is returned.",
                "produces": ["application/json"],
                "tags": ["history"],
                "summary": "List adjustment history",
                "parameters": [
                    {"type": "string", "example": "2025-08-01", "description": "Start of range", "name": "from", "in": "query"},
                    {"type": "string", "example": "2025-08-31", "description": "End of range", "name": "to", "in": "query"},
                    {"type": "integer", "description": "Max records (default 100, max 1000)", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "count, history", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/weather": {
            "get": {
                "description": "Looks up the temperature at lat/lon, or returns sample data with fallback=true.",
                "produces": ["application/json"],
                "tags": ["weather"],
                "summary": "Current outdoor temperature",
                "parameters": [
                    {"type": "number", "description": "Latitude", "name": "lat", "in": "query"},
                    {"type": "number", "description": "Longitude", "name": "lon", "in": "query"},
                    {"type": "boolean", "description": "Return sample data", "name": "fallback", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "temperature, location, fallback", "schema": {"type": "object", "additionalProperties": true}},
                    "400": {"description": "Bad Request", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "429": {"description": "Too Many Requests", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "502": {"description": "Bad Gateway", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "503": {"description": "Service Unavailable", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "504": {"description": "Gateway Timeout", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/api/v1/thermostat/state": {
            "get": {
                "produces": ["application/json"],
                "tags": ["thermostat"],
                "summary": "Get thermostat state",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ThermostatState"}},
                    "401": {"description": "Unauthorized", "schema": {"type": "object", "additionalProperties": {"type": "string"}}},
                    "500": {"description": "Internal Server Error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "handlers.authCredentials": {
            "type": "object",
            "required": ["password", "username"],
            "properties": {
                "password": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "handlers.AdjustTemperatureRequest": {
            "type": "object",
            "properties": {
                "occupancy": {"description": "\"Yes\" when the room is occupied", "type": "string", "example": "Yes"},
                "outdoorTemp": {"type": "number", "example": 20},
                "preferredTemp": {"type": "number", "example": 23},
                "roomTemp": {"type": "number", "example": 22},
                "timeOfDay": {"description": "Morning, Afternoon or Night", "type": "string", "example": "Morning"}
            }
        },
        "models.AdjustmentResult": {
            "type": "object",
            "properties": {
                "adjustedTemp": {"type": "number"},
                "aiSuggestion": {"type": "string"},
                "change": {"type": "number"},
                "currentTemp": {"type": "number"},
                "energyEfficiency": {"type": "integer"},
                "preferredTemp": {"type": "number"}
            }
        },
        "models.ThermostatState": {
            "type": "object",
            "properties": {
                "current_temp_c": {"type": "number"},
                "id": {"type": "integer"},
                "last_suggestion": {"type": "string"},
                "mode": {"type": "string"},
                "occupied": {"type": "boolean"},
                "outdoor_temp_c": {"type": "number"},
                "target_temp_c": {"type": "number"},
                "updated_at": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Smart Thermostat API",
	Description:      "Temperature adjustment engine with history, weather lookup and a simulated room.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
