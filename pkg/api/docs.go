package api

import "github.com/swaggo/swag"

// apiDoc serves the OpenAPI 2.0 description of the routes in Routes
type apiDoc struct{}

func (apiDoc) ReadDoc() string {
	return openAPIDoc
}

func init() {
	swag.Register(swag.Name, apiDoc{})
}

const openAPIDoc = `{
  "swagger": "2.0",
  "info": {
    "title": "ftlsave API",
    "description": "Decode, verify and list backups of FTL saved games.",
    "version": "1.0"
  },
  "basePath": "/api/v1",
  "securityDefinitions": {
    "ApiKeyAuth": {"type": "apiKey", "in": "header", "name": "X-API-Key"}
  },
  "security": [{"ApiKeyAuth": []}],
  "paths": {
    "/health": {
      "get": {
        "summary": "Health check",
        "produces": ["application/json"],
        "responses": {
          "200": {"description": "Server is healthy", "schema": {"$ref": "#/definitions/APIResponse"}},
          "401": {"description": "Missing or invalid API key", "schema": {"$ref": "#/definitions/APIResponse"}}
        }
      }
    },
    "/saves/decode": {
      "post": {
        "summary": "Decode a save file and return its summary",
        "consumes": ["application/octet-stream"],
        "produces": ["application/json"],
        "parameters": [
          {"in": "body", "name": "save", "required": true, "schema": {"type": "string", "format": "binary"}}
        ],
        "responses": {
          "200": {"description": "Save summary", "schema": {"$ref": "#/definitions/APIResponse"}},
          "400": {"description": "Empty body", "schema": {"$ref": "#/definitions/APIResponse"}},
          "413": {"description": "Body too large", "schema": {"$ref": "#/definitions/APIResponse"}},
          "422": {"description": "Save does not decode; data holds a DecodeFailure", "schema": {"$ref": "#/definitions/APIResponse"}}
        }
      }
    },
    "/saves/verify": {
      "post": {
        "summary": "Decode and re-encode a save, reporting the first differing offset",
        "consumes": ["application/octet-stream"],
        "produces": ["application/json"],
        "parameters": [
          {"in": "body", "name": "save", "required": true, "schema": {"type": "string", "format": "binary"}}
        ],
        "responses": {
          "200": {"description": "Round-trip report", "schema": {"$ref": "#/definitions/APIResponse"}},
          "400": {"description": "Empty body", "schema": {"$ref": "#/definitions/APIResponse"}},
          "422": {"description": "Save does not decode", "schema": {"$ref": "#/definitions/APIResponse"}}
        }
      }
    },
    "/backups": {
      "get": {
        "summary": "List the backups stored for a save file",
        "produces": ["application/json"],
        "parameters": [
          {"in": "query", "name": "name", "required": true, "type": "string", "description": "save file path"}
        ],
        "responses": {
          "200": {"description": "Backups, oldest first", "schema": {"$ref": "#/definitions/APIResponse"}},
          "400": {"description": "Missing name", "schema": {"$ref": "#/definitions/APIResponse"}},
          "503": {"description": "No backup store configured", "schema": {"$ref": "#/definitions/APIResponse"}}
        }
      }
    }
  },
  "definitions": {
    "APIResponse": {
      "type": "object",
      "properties": {
        "success": {"type": "boolean"},
        "data": {"type": "object"},
        "error": {"type": "string"}
      }
    },
    "BackupResponse": {
      "type": "object",
      "properties": {
        "id": {"type": "string"},
        "name": {"type": "string"},
        "created": {"type": "string", "format": "date-time"},
        "size": {"type": "integer"}
      }
    },
    "DecodeFailure": {
      "type": "object",
      "properties": {
        "path": {"type": "string"},
        "field": {"type": "string"},
        "offset": {"type": "integer"},
        "value": {"type": "integer"}
      }
    }
  }
}`
