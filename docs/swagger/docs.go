// Package swagger registers the OpenAPI document served under /swagger.
//
// The document is maintained by hand next to the annotations on
// builder.Handler; keep both in sync when the route changes.
package swagger

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
        "ApiKeyAuth": {
            "type": "apiKey",
            "name": "X-API-Key",
            "in": "header"
        }
    },
    "security": [{"ApiKeyAuth": []}],
    "paths": {
        "/modlist": {
            "post": {
                "description": "Matches the preset HTML in the request body against the launcher's Steam.json and returns the ordered name and id lists. Nothing is written on the server.",
                "consumes": ["text/html"],
                "produces": ["application/json"],
                "tags": ["modlist"],
                "summary": "Build Modlist",
                "parameters": [
                    {
                        "description": "Launcher preset HTML",
                        "name": "preset",
                        "in": "body",
                        "required": true,
                        "schema": {"type": "string"}
                    },
                    {
                        "enum": ["arma", "dayz"],
                        "type": "string",
                        "description": "Override preset family detection",
                        "name": "family",
                        "in": "query"
                    },
                    {
                        "type": "boolean",
                        "description": "Continue without entries that are not installed",
                        "name": "allow_unmatched",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "Built modlist", "schema": {"$ref": "#/definitions/builder.Outcome"}},
                    "400": {"description": "Unknown family", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "404": {"description": "Steam.json not found", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "409": {"description": "Preset entries are not installed", "schema": {"$ref": "#/definitions/unmatchedResponse"}},
                    "422": {"description": "Preset or manifest cannot be used", "schema": {"$ref": "#/definitions/errorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/errorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "builder.Outcome": {
            "type": "object",
            "properties": {
                "family": {"type": "string", "example": "arma"},
                "name_list": {"type": "string", "example": "@CBA_A3;@ace;"},
                "id_list": {"type": "string", "example": "450814997,463939057"},
                "unmatched": {"type": "array", "items": {"$ref": "#/definitions/modlist.UnmatchedEntry"}},
                "warnings": {"type": "array", "items": {"type": "string"}},
                "count": {"type": "integer"},
                "total_bytes": {"type": "integer"},
                "total_size": {"type": "string", "example": "1.2 GB"}
            }
        },
        "modlist.UnmatchedEntry": {
            "type": "object",
            "properties": {
                "display_name": {"type": "string"},
                "id": {"type": "integer"}
            }
        },
        "errorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "unmatchedResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "unmatched": {"type": "array", "items": {"$ref": "#/definitions/modlist.UnmatchedEntry"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Modlist Builder API",
	Description:      "Builds Arma 3 and DayZ server modlists from launcher presets.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
