// Radiology Reports - Aggregate analysis and patient reports over a radiology database
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/radreports

// Package docs registers the OpenAPI document served at /swagger/doc.json.
//
// The document mirrors the swag annotations in cmd/server and internal/api;
// regenerate with `swag init -g cmd/server/main.go` after changing them.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "GitHub Repository",
            "url": "https://github.com/tomtom215/radreports/issues"
        },
        "license": {
            "name": "AGPL-3.0-or-later",
            "url": "https://www.gnu.org/licenses/agpl-3.0.html"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/analysis": {
            "get": {
                "description": "Counts image rows joined to their radiology records, grouped by any of patient, test type and a nested date granularity. With no dimension selected the result is a single total. Columns always appear in the order subject_id, category, year, month, day, then num_rows.",
                "produces": ["application/json", "text/csv"],
                "tags": ["Analysis"],
                "summary": "Data analysis (OLAP count)",
                "parameters": [
                    {"type": "boolean", "description": "Group by patient", "name": "subject", "in": "query"},
                    {"type": "boolean", "description": "Group by test type", "name": "category", "in": "query"},
                    {"enum": ["none", "year", "month", "day"], "type": "string", "description": "Date granularity", "name": "granularity", "in": "query"},
                    {"enum": ["json", "csv"], "type": "string", "description": "Response format", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Aggregate table", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "Invalid parameters", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "Database unavailable", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/reports/patients": {
            "get": {
                "description": "Lists patients whose radiology records carry the diagnosis, ordered by test date. diagnosis=all (or omitted) disables the diagnosis filter. Both date bounds are inclusive calendar days.",
                "produces": ["application/json", "text/csv"],
                "tags": ["Reports"],
                "summary": "Patient report",
                "parameters": [
                    {"type": "string", "description": "Diagnosis, or all", "name": "diagnosis", "in": "query"},
                    {"type": "string", "description": "First test day (YYYY-MM-DD)", "name": "start_date", "in": "query"},
                    {"type": "string", "description": "Last test day (YYYY-MM-DD)", "name": "end_date", "in": "query"},
                    {"enum": ["json", "csv"], "type": "string", "description": "Response format", "name": "format", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Report table", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "Invalid parameters", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "Database unavailable", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/persons": {
            "get": {
                "description": "Lists persons holding an account of the given role, or every person when role is omitted. A person with several accounts of the role appears once.",
                "produces": ["application/json"],
                "tags": ["Persons"],
                "summary": "List persons",
                "parameters": [
                    {"enum": ["d", "r", "p", "doctor", "radiologist", "patient"], "type": "string", "description": "Role", "name": "role", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Persons", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "Invalid role", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/choices/persons": {
            "get": {
                "description": "Select-field choices for persons of a role. Each label is formatted \"ID - Last, First\".",
                "produces": ["application/json"],
                "tags": ["Choices"],
                "summary": "Person choices",
                "parameters": [
                    {"enum": ["d", "r", "p", "doctor", "radiologist", "patient"], "type": "string", "description": "Role", "name": "role", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Choices", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "400": {"description": "Invalid role", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/choices/diagnoses": {
            "get": {
                "description": "Select-field choices for the report generator. The first choice is the \"all\" sentinel.",
                "produces": ["application/json"],
                "tags": ["Choices"],
                "summary": "Diagnosis choices",
                "responses": {
                    "200": {"description": "Choices", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Returns health status including database connectivity, storage driver and uptime",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Get system health status",
                "responses": {
                    "200": {"description": "Health status retrieved successfully", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/health/live": {
            "get": {
                "description": "Returns 200 OK if the process is alive, regardless of the database.",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Kubernetes liveness probe",
                "responses": {
                    "200": {"description": "Service is alive", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        },
        "/health/ready": {
            "get": {
                "description": "Returns 200 OK only if the database is reachable. Returns 503 if not ready.",
                "produces": ["application/json"],
                "tags": ["Core"],
                "summary": "Kubernetes readiness probe",
                "responses": {
                    "200": {"description": "Service is ready", "schema": {"$ref": "#/definitions/models.APIResponse"}},
                    "503": {"description": "Service is not ready", "schema": {"$ref": "#/definitions/models.APIResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "details": {"type": "object", "additionalProperties": {}},
                "message": {"type": "string"}
            }
        },
        "models.APIResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "error": {"$ref": "#/definitions/models.APIError"},
                "metadata": {"$ref": "#/definitions/models.Metadata"},
                "status": {"type": "string"}
            }
        },
        "models.Choice": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "models.HealthStatus": {
            "type": "object",
            "properties": {
                "database": {"type": "string"},
                "db_connected": {"type": "boolean"},
                "status": {"type": "string"},
                "uptime": {"type": "string"},
                "version": {"type": "string"}
            }
        },
        "models.Metadata": {
            "type": "object",
            "properties": {
                "query_time_ms": {"type": "integer"},
                "timestamp": {"type": "string"}
            }
        },
        "models.PersonResponse": {
            "type": "object",
            "properties": {
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "person_id": {"type": "integer"},
                "phone": {"type": "string"}
            }
        },
        "models.ResultTable": {
            "type": "object",
            "properties": {
                "header": {"type": "array", "items": {"type": "string"}},
                "rows": {"type": "array", "items": {"type": "array", "items": {}}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{"http", "https"},
	Title:            "Radiology Reports API",
	Description:      "Data analysis, report generator and select-field helpers over a radiology information database.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
