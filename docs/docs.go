// Package docs holds the Swagger document served at /swagger/index.html.
// Regenerate with: swag init -g cmd/api/main.go
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
        "/": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Message"}}
                }
            }
        },
        "/test": {
            "get": {
                "description": "Reports store connectivity. Always answers 200; failures are described in the payload.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Backend and database diagnostics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/domain.Diagnostics"}}
                }
            }
        },
        "/api/projects": {
            "get": {
                "description": "Returns stored projects, or a static sample when the store cannot be read.",
                "produces": ["application/json"],
                "tags": ["projects"],
                "summary": "List portfolio projects",
                "parameters": [
                    {
                        "type": "boolean",
                        "description": "Only featured (true) or non-featured (false) projects",
                        "name": "featured",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Project"}}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        },
        "/api/contact": {
            "post": {
                "description": "Stores a message from the contact form. This is a public endpoint.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["contact"],
                "summary": "Submit Contact Form",
                "parameters": [
                    {
                        "description": "Contact Form Data",
                        "name": "contact",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/domain.ContactMessage"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.OK"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.ErrorBody"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "domain.ContactMessage": {
            "type": "object",
            "required": ["email", "message", "name"],
            "properties": {
                "email": {"type": "string", "maxLength": 254},
                "message": {"type": "string", "maxLength": 5000},
                "name": {"type": "string", "maxLength": 200},
                "subject": {"type": "string", "maxLength": 200}
            }
        },
        "domain.Diagnostics": {
            "type": "object",
            "properties": {
                "backend": {"type": "string"},
                "collections": {"type": "array", "items": {"type": "string"}},
                "connection_status": {"type": "string"},
                "database": {"type": "string"},
                "database_name": {"type": "string"},
                "database_url": {"type": "string"}
            }
        },
        "domain.Project": {
            "type": "object",
            "required": ["role", "slug", "summary", "title"],
            "properties": {
                "challenges": {"type": "string"},
                "demo": {"type": "string"},
                "featured": {"type": "boolean"},
                "github": {"type": "string"},
                "images": {"type": "array", "items": {"type": "string"}},
                "role": {"type": "string"},
                "slug": {"type": "string"},
                "stack": {"type": "array", "items": {"type": "string"}},
                "summary": {"type": "string"},
                "title": {"type": "string"}
            }
        },
        "response.ErrorBody": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"},
                "errors": {"type": "array", "items": {"type": "string"}},
                "request_id": {"type": "string"}
            }
        },
        "response.Message": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        },
        "response.OK": {
            "type": "object",
            "properties": {
                "ok": {"type": "boolean"}
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
	Title:            "Portfolio API",
	Description:      "Backend for portfolio site",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
