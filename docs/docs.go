// Package docs registers the OpenAPI description served under /swagger/.
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
        "/api/events": {
            "get": {
                "description": "Returns every event, newest first.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EventsResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Slug is derived from the title; date is stored as YYYY-MM-DD and time as 24-hour HH:MM.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Create an event",
                "parameters": [
                    {"description": "Event data", "name": "event", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.CreateEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.EventResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ValidationErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/api/events/{slug}": {
            "get": {
                "description": "The slug is trimmed and lower-cased before lookup.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Get an event by slug",
                "parameters": [
                    {"type": "string", "description": "Event slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EventResponse"}},
                    "400": {"description": "blank slug", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "patch": {
                "description": "Partial update. Omitted fields are unchanged; the slug is re-derived only when the title changes.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "Update an event",
                "parameters": [
                    {"type": "string", "description": "Event slug", "name": "slug", "in": "path", "required": true},
                    {"description": "Fields to update (all optional)", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.EventPatch"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EventResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ValidationErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/api/events/{slug}/similar": {
            "get": {
                "description": "Events other than the given one with at least one tag in common. Unknown slugs and store failures yield an empty list.",
                "produces": ["application/json"],
                "tags": ["events"],
                "summary": "List events sharing a tag",
                "parameters": [
                    {"type": "string", "description": "Event slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.EventsResponse"}}
                }
            }
        },
        "/api/events/{slug}/bookings": {
            "get": {
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "List bookings of an event",
                "parameters": [
                    {"type": "string", "description": "Event slug", "name": "slug", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.BookingsResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Reserves a seat for email. The email is trimmed and lower-cased; one booking per email and event.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["bookings"],
                "summary": "Book an event",
                "parameters": [
                    {"type": "string", "description": "Event slug", "name": "slug", "in": "path", "required": true},
                    {"description": "Attendee email", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/controllers.BookEventRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/controllers.BookingResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/helpers.ValidationErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/helpers.MessageResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/helpers.ErrorResponse"}}
                }
            }
        },
        "/healthz": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness and database connectivity",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controllers.HealthResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/controllers.HealthResponse"}}
                }
            }
        }
    },
    "definitions": {
        "controllers.BookEventRequest": {
            "type": "object",
            "properties": {"email": {"type": "string"}}
        },
        "controllers.BookingResponse": {
            "type": "object",
            "properties": {"booking": {"$ref": "#/definitions/domain.Booking"}, "message": {"type": "string"}}
        },
        "controllers.BookingsResponse": {
            "type": "object",
            "properties": {"bookings": {"type": "array", "items": {"$ref": "#/definitions/domain.Booking"}}, "message": {"type": "string"}}
        },
        "controllers.CreateEventRequest": {
            "type": "object",
            "properties": {
                "agenda": {"type": "array", "items": {"type": "string"}},
                "audience": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "location": {"type": "string"},
                "mode": {"type": "string"},
                "organizer": {"type": "string"},
                "overview": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "time": {"type": "string"},
                "title": {"type": "string"},
                "venue": {"type": "string"}
            }
        },
        "controllers.EventResponse": {
            "type": "object",
            "properties": {"event": {"$ref": "#/definitions/domain.Event"}, "message": {"type": "string"}}
        },
        "controllers.EventsResponse": {
            "type": "object",
            "properties": {"events": {"type": "array", "items": {"$ref": "#/definitions/domain.Event"}}, "message": {"type": "string"}}
        },
        "controllers.HealthResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "status": {"type": "string"}}
        },
        "domain.Booking": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "email": {"type": "string"},
                "event_id": {"type": "string"},
                "id": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.Event": {
            "type": "object",
            "properties": {
                "agenda": {"type": "array", "items": {"type": "string"}},
                "audience": {"type": "string"},
                "created_at": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "image": {"type": "string"},
                "location": {"type": "string"},
                "mode": {"type": "string", "enum": ["online", "offline", "hybrid"]},
                "organizer": {"type": "string"},
                "overview": {"type": "string"},
                "slug": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "time": {"type": "string"},
                "title": {"type": "string"},
                "updated_at": {"type": "string"},
                "venue": {"type": "string"}
            }
        },
        "domain.EventPatch": {
            "type": "object",
            "properties": {
                "agenda": {"type": "array", "items": {"type": "string"}},
                "audience": {"type": "string"},
                "date": {"type": "string"},
                "description": {"type": "string"},
                "image": {"type": "string"},
                "location": {"type": "string"},
                "mode": {"type": "string"},
                "organizer": {"type": "string"},
                "overview": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "time": {"type": "string"},
                "title": {"type": "string"},
                "venue": {"type": "string"}
            }
        },
        "domain.FieldError": {
            "type": "object",
            "properties": {"field": {"type": "string"}, "message": {"type": "string"}}
        },
        "helpers.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}, "message": {"type": "string"}}
        },
        "helpers.MessageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "helpers.ValidationErrorResponse": {
            "type": "object",
            "properties": {"errors": {"type": "array", "items": {"$ref": "#/definitions/domain.FieldError"}}, "message": {"type": "string"}}
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "DevEvents API",
	Description:      "Developer events listing and booking service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
