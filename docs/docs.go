// Crossrec - Cross-Category Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/crossrec

// Package docs registers the OpenAPI 2.0 description of the HTTP API with
// swag. The router serves it at /swagger/doc.json and the Swagger UI at
// /swagger/index.html. Keep it in step with the @Router annotations in
// internal/api.
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
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Returns the service name and build version",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Service banner",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/api.BannerResponse"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Reports catalog state and engine counters. Returns 503 while no catalog is loaded.",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/api.HealthResponse"}
                    },
                    "503": {
                        "description": "Catalog not loaded",
                        "schema": {"$ref": "#/definitions/api.HealthResponse"}
                    }
                }
            }
        },
        "/categories": {
            "get": {
                "description": "Lists the categories of the active catalog in catalog order",
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "List categories",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/api.CategoriesResponse"}
                    }
                }
            }
        },
        "/recommend": {
            "post": {
                "description": "Ranks items of the target category against free-text preferences from the source category. A preference equal to a source item title is expanded with that item's genre and description.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Cross-category recommendations",
                "parameters": [
                    {
                        "description": "Recommendation request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/api.RecommendRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/api.RecommendResponse"}
                    },
                    "400": {
                        "description": "Malformed body or validation failure",
                        "schema": {"$ref": "#/definitions/api.APIResponse"}
                    },
                    "413": {
                        "description": "Request body too large",
                        "schema": {"$ref": "#/definitions/api.APIResponse"}
                    },
                    "429": {
                        "description": "Rate limit exceeded",
                        "schema": {"$ref": "#/definitions/api.APIResponse"}
                    },
                    "500": {
                        "description": "Internal error",
                        "schema": {"$ref": "#/definitions/api.APIResponse"}
                    },
                    "503": {
                        "description": "Timed out or catalog not loaded",
                        "schema": {"$ref": "#/definitions/api.APIResponse"}
                    }
                }
            }
        }
    },
    "definitions": {
        "api.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {},
                "message": {"type": "string"},
                "request_id": {"type": "string"}
            }
        },
        "api.APIResponse": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/api.APIError"},
                "success": {"type": "boolean"}
            }
        },
        "api.BannerResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "api.CategoriesResponse": {
            "type": "object",
            "properties": {
                "categories": {"type": "array", "items": {"type": "string"}},
                "description": {"type": "string"},
                "details": {"type": "array", "items": {"$ref": "#/definitions/api.CategoryDetail"}}
            }
        },
        "api.CategoryDetail": {
            "type": "object",
            "properties": {
                "display_name": {"type": "string"},
                "item_count": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "api.HealthResponse": {
            "type": "object",
            "properties": {
                "catalog_version": {"type": "integer"},
                "categories": {"type": "array", "items": {"type": "string"}},
                "service": {"type": "string"},
                "stats": {"$ref": "#/definitions/recommend.Stats"},
                "status": {"type": "string"}
            }
        },
        "api.RecommendRequest": {
            "type": "object",
            "required": ["preferences", "source_category", "target_category"],
            "properties": {
                "limit": {"type": "integer"},
                "preferences": {"type": "array", "items": {"type": "string", "maxLength": 500}},
                "source_category": {"type": "string", "maxLength": 64},
                "target_category": {"type": "string", "maxLength": 64}
            }
        },
        "api.RecommendResponse": {
            "type": "object",
            "properties": {
                "recommendations": {"type": "array", "items": {"$ref": "#/definitions/api.RecommendationItem"}},
                "source_category": {"type": "string"},
                "target_category": {"type": "string"},
                "total_count": {"type": "integer"}
            }
        },
        "api.RecommendationItem": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "genre": {"type": "string"},
                "id": {"type": "string"},
                "metadata": {"type": "object", "additionalProperties": true},
                "rating": {"type": "number"},
                "similarity_score": {"type": "number"},
                "title": {"type": "string"},
                "year": {"type": "integer"}
            }
        },
        "recommend.Stats": {
            "type": "object",
            "properties": {
                "cache_entries": {"type": "integer"},
                "cache_evictions": {"type": "integer"},
                "cache_hits": {"type": "integer"},
                "cache_misses": {"type": "integer"},
                "canceled": {"type": "integer"},
                "catalog_version": {"type": "integer"},
                "errors": {"type": "integer"},
                "rejected": {"type": "integer"},
                "requests": {"type": "integer"},
                "timeouts": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Crossrec Recommendation API",
	Description:      "Recommends items of one content category from free-text preferences expressed in another.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
