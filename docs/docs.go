// Package docs holds the Swagger document served under /swagger. It is maintained by
// hand and has to follow the handler annotations.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/videos/{videoId}/languages": {
            "get": {
                "description": "Get all subtitle languages of a video",
                "produces": ["application/json"],
                "tags": ["subtitles"],
                "summary": "List subtitle languages",
                "parameters": [
                    {"type": "string", "description": "Video ID (UUID)", "name": "videoId", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Successfully retrieved languages", "schema": {"type": "array", "items": {"$ref": "#/definitions/service.SubtitleLanguageResponse"}}},
                    "400": {"description": "Invalid video ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Video not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/videos/{videoId}/languages/{languageCode}/rollback": {
            "post": {
                "description": "Create a new version that copies the subtitles, title and description of an older one.\nAn omitted author_id records the acting user as author, an explicit null records an anonymous author.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["subtitles"],
                "summary": "Roll back to a version",
                "parameters": [
                    {"type": "string", "description": "Video ID (UUID)", "name": "videoId", "in": "path", "required": true},
                    {"type": "string", "example": "en", "description": "Language code", "name": "languageCode", "in": "path", "required": true},
                    {"type": "string", "description": "Acting user (UUID)", "name": "X-User-ID", "in": "header", "required": true},
                    {"description": "Version to restore", "name": "rollback", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.RollbackRequest"}}
                ],
                "responses": {
                    "201": {"description": "Successfully created version", "schema": {"$ref": "#/definitions/service.SubtitleVersionResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Missing X-User-ID header", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Version not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/videos/{videoId}/languages/{languageCode}/subtitles": {
            "post": {
                "description": "Create the next version of a video's subtitles in one language. Team workflows may hold it back for review and open tasks.\nAn omitted author_id records the acting user as author, an explicit null records an anonymous author.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["subtitles"],
                "summary": "Add a subtitle version",
                "parameters": [
                    {"type": "string", "description": "Video ID (UUID)", "name": "videoId", "in": "path", "required": true},
                    {"type": "string", "example": "en", "description": "Language code", "name": "languageCode", "in": "path", "required": true},
                    {"type": "string", "description": "Acting user (UUID)", "name": "X-User-ID", "in": "header", "required": true},
                    {"description": "Subtitle data", "name": "subtitles", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handlers.AddSubtitlesRequest"}}
                ],
                "responses": {
                    "201": {"description": "Successfully created version", "schema": {"$ref": "#/definitions/service.SubtitleVersionResponse"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "401": {"description": "Missing X-User-ID header", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Video or parent version not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "409": {"description": "Version number already taken", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/videos/{videoId}/languages/{languageCode}/versions": {
            "get": {
                "description": "Get all versions of a language, oldest first",
                "produces": ["application/json"],
                "tags": ["subtitles"],
                "summary": "List subtitle versions",
                "parameters": [
                    {"type": "string", "description": "Video ID (UUID)", "name": "videoId", "in": "path", "required": true},
                    {"type": "string", "example": "en", "description": "Language code", "name": "languageCode", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Successfully retrieved versions", "schema": {"type": "array", "items": {"$ref": "#/definitions/service.SubtitleVersionResponse"}}},
                    "400": {"description": "Invalid video ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Language not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/videos/{videoId}/languages/{languageCode}/versions/{number}": {
            "get": {
                "description": "Get one version by number, including its parents",
                "produces": ["application/json"],
                "tags": ["subtitles"],
                "summary": "Get a subtitle version",
                "parameters": [
                    {"type": "string", "description": "Video ID (UUID)", "name": "videoId", "in": "path", "required": true},
                    {"type": "string", "example": "en", "description": "Language code", "name": "languageCode", "in": "path", "required": true},
                    {"type": "integer", "description": "Version number", "name": "number", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Successfully retrieved version", "schema": {"$ref": "#/definitions/service.SubtitleVersionResponse"}},
                    "400": {"description": "Invalid video ID or version number", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Version not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        },
        "/videos/{videoId}/permissions": {
            "get": {
                "description": "Report what the acting user may do with a video",
                "produces": ["application/json"],
                "tags": ["videos"],
                "summary": "Get video permissions",
                "parameters": [
                    {"type": "string", "description": "Video ID (UUID)", "name": "videoId", "in": "path", "required": true},
                    {"type": "string", "description": "Acting user (UUID)", "name": "X-User-ID", "in": "header"}
                ],
                "responses": {
                    "200": {"description": "Successfully retrieved permissions", "schema": {"$ref": "#/definitions/service.VideoPermissionsResponse"}},
                    "400": {"description": "Invalid video ID", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "404": {"description": "Video not found", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/handlers.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "handlers.AddSubtitlesRequest": {
            "type": "object",
            "required": ["subtitles"],
            "properties": {
                "author_id": {"type": "string", "format": "uuid", "x-nullable": true},
                "complete": {"type": "boolean"},
                "description": {"type": "string"},
                "parents": {"type": "array", "items": {"$ref": "#/definitions/handlers.ParentRequest"}},
                "subtitles": {"type": "array", "items": {"$ref": "#/definitions/models.Cue"}},
                "title": {"type": "string"},
                "visibility": {"type": "string", "enum": ["public", "private"], "example": "public"},
                "visibility_override": {"type": "string", "enum": ["public", "private"], "example": ""}
            }
        },
        "handlers.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "error message"}
            }
        },
        "handlers.ParentRequest": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "language_code": {"type": "string", "example": "fr"},
                "version_number": {"type": "integer", "example": 2}
            }
        },
        "handlers.RollbackRequest": {
            "type": "object",
            "required": ["version_number"],
            "properties": {
                "author_id": {"type": "string", "format": "uuid", "x-nullable": true},
                "version_number": {"type": "integer", "minimum": 1, "example": 1}
            }
        },
        "models.Cue": {
            "type": "object",
            "properties": {
                "end_ms": {"type": "integer"},
                "start_ms": {"type": "integer"},
                "text": {"type": "string"}
            }
        },
        "service.SubtitleLanguageResponse": {
            "type": "object",
            "properties": {
                "created_at": {"type": "string"},
                "id": {"type": "string"},
                "language_code": {"type": "string"},
                "subtitles_complete": {"type": "boolean"},
                "video_id": {"type": "string"}
            }
        },
        "service.SubtitleVersionResponse": {
            "type": "object",
            "properties": {
                "author_id": {"type": "string"},
                "created_at": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "string"},
                "language_code": {"type": "string", "example": "en"},
                "parent_ids": {"type": "array", "items": {"type": "string"}},
                "public": {"type": "boolean"},
                "rollback_of_version_number": {"type": "integer"},
                "subtitles": {"type": "array", "items": {"$ref": "#/definitions/models.Cue"}},
                "title": {"type": "string"},
                "version_number": {"type": "integer", "example": 1},
                "video_id": {"type": "string"},
                "visibility": {"type": "string", "example": "public"},
                "visibility_override": {"type": "string", "example": ""},
                "workflow_origin": {"type": "string"}
            }
        },
        "service.VideoPermissionsResponse": {
            "type": "object",
            "properties": {
                "can_edit_video_urls": {"type": "boolean"},
                "video_id": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:7008",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Subtitles Backend API",
	Description:      "Backend API for versioned video subtitles with team review workflows.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
