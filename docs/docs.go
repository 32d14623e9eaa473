// Package docs registers the OpenAPI description served by the
// swagger UI. Regenerate with `swag init -g cmd/main.go` after
// changing handler annotations.
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
        "/actions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["actions"],
                "summary": "Dispatch a read action",
                "description": "Routes getQuestions/getAnswers/getComments by the action query parameter",
                "parameters": [
                    {"type": "string", "description": "Action name", "name": "action", "in": "query", "required": true},
                    {"type": "integer", "name": "questionId", "in": "query"},
                    {"type": "integer", "name": "answerId", "in": "query"},
                    {"type": "integer", "name": "userId", "in": "query"},
                    {"type": "string", "name": "tag", "in": "query"},
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Envelope with success flag and entities", "schema": {"type": "object"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["actions"],
                "summary": "Dispatch a write or auth action",
                "description": "Routes the action named in the JSON body to its handler",
                "parameters": [
                    {"description": "Action payload", "name": "request", "in": "body", "required": true, "schema": {"type": "object"}}
                ],
                "responses": {
                    "200": {"description": "Envelope with success flag, message and entity", "schema": {"type": "object"}}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8000",
	BasePath:         "/api",
	Schemes:          []string{"http", "https"},
	Title:            "UniStack API",
	Description:      "University Q&A forum backend. A single action-dispatched endpoint serves auth, question, answer and comment operations.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
