// Package docs holds the OpenAPI document served under /docs.
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
                "tags": ["meta"],
                "summary": "Service metadata",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/images/upload": {
            "post": {
                "description": "Compresses the photo (max 1200x1200, JPEG quality 75), stores it and records it for the bien.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["images"],
                "summary": "Upload one photo",
                "parameters": [
                    {"type": "file", "description": "Image (jpeg, png or webp, max 10 MB)", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "Owning bien id (defaults to bien_test)", "name": "id_bien", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/http.SuccessResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/http.ImageData"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/images/videos/upload": {
            "post": {
                "description": "Stores the video as is (no transcoding) and records it for the bien.",
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["images"],
                "summary": "Upload one video",
                "parameters": [
                    {"type": "file", "description": "Video (mp4, mov or avi, max 50 MB)", "name": "file", "in": "formData", "required": true},
                    {"type": "string", "description": "Owning bien id (defaults to bien_test)", "name": "id_bien", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/http.SuccessResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/http.VideoData"}}}]}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "413": {"description": "Request Entity Too Large", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/images/bien/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["images"],
                "summary": "List the media of a bien",
                "parameters": [
                    {"type": "string", "description": "Bien id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/http.SuccessResponse"}, {"type": "object", "properties": {"data": {"type": "array", "items": {"$ref": "#/definitions/http.MediaListItem"}}}}]}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/images/delete/{public_id}": {
            "delete": {
                "description": "Removes the object from the media store. The media record is kept.",
                "produces": ["application/json"],
                "tags": ["images"],
                "summary": "Delete a stored object",
                "parameters": [
                    {"type": "string", "description": "Object key, may contain slashes (biens/<uuid>.jpg)", "name": "public_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.SuccessResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/paiements/initier": {
            "post": {
                "description": "Sends a collect request to Campay and records a pending transaction.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["paiements"],
                "summary": "Start a mobile money payment",
                "parameters": [
                    {"description": "Payment", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/http.InitiatePaymentRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"allOf": [{"$ref": "#/definitions/http.SuccessResponse"}, {"type": "object", "properties": {"data": {"$ref": "#/definitions/http.PaymentData"}}}]}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/http.ErrorResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/paiements/verifier/{reference}": {
            "get": {
                "description": "Returns Campay's transaction payload unchanged. Local records are not touched.",
                "produces": ["application/json"],
                "tags": ["paiements"],
                "summary": "Check a payment at Campay",
                "parameters": [
                    {"type": "string", "description": "Campay reference", "name": "reference", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.SuccessResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        },
        "/webhooks/campay": {
            "post": {
                "description": "Applies SUCCESSFUL or FAILED to the matching transaction. Always acknowledged unless the body is malformed.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["webhooks"],
                "summary": "Campay payment callback",
                "parameters": [
                    {"description": "Campay notification", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/entity.WebhookPayload"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.SuccessResponse"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/http.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "entity.WebhookPayload": {
            "type": "object",
            "properties": {
                "amount": {},
                "currency": {"type": "string"},
                "external_reference": {"type": "string"},
                "operator": {"type": "string"},
                "phone_number": {"type": "string"},
                "reference": {"type": "string"},
                "status": {"type": "string"}
            }
        },
        "http.ErrorResponse": {
            "type": "object",
            "properties": {
                "detail": {"type": "string"}
            }
        },
        "http.ImageData": {
            "type": "object",
            "properties": {
                "bytes": {"type": "integer"},
                "date_upload": {"type": "string"},
                "id_bien": {"type": "string"},
                "id_image": {"type": "string"},
                "public_id": {"type": "string"},
                "type": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "http.VideoData": {
            "type": "object",
            "properties": {
                "bytes": {"type": "integer"},
                "date_upload": {"type": "string"},
                "id_bien": {"type": "string"},
                "id_image": {"type": "string"},
                "public_id": {"type": "string"},
                "taille_mb": {"type": "number"},
                "type": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "http.MediaListItem": {
            "type": "object",
            "properties": {
                "date_upload": {"type": "string"},
                "id_image": {"type": "string"},
                "type": {"type": "string"},
                "url": {"type": "string"}
            }
        },
        "http.InitiatePaymentRequest": {
            "type": "object",
            "required": ["montant", "telephone", "description", "type_transaction"],
            "properties": {
                "description": {"type": "string"},
                "id_bien": {"type": "string"},
                "id_utilisateur": {"type": "string"},
                "montant": {"type": "integer"},
                "telephone": {"type": "string"},
                "type_transaction": {"type": "string"}
            }
        },
        "http.PaymentData": {
            "type": "object",
            "properties": {
                "id_transaction": {"type": "string"},
                "montant": {"type": "integer"},
                "reference_campay": {"type": "string"},
                "statut": {"type": "string"},
                "telephone": {"type": "string"}
            }
        },
        "http.SuccessResponse": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "data": {},
                "message": {"type": "string"},
                "success": {"type": "boolean"}
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
	Title:            "Immo Media API",
	Description:      "Photo and video ingestion for property listings, with Campay mobile money payments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
