// Package docs registers the swagger specification served at /swagger.
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
        "/accounts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "List all accounts",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/accounts/{accountNumber}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Get an account by number",
                "parameters": [
                    {"type": "integer", "name": "accountNumber", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/accounts/{accountNumber}/deposits": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "Deposit into an account",
                "parameters": [
                    {"type": "integer", "name": "accountNumber", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "422": {"description": "Rejected by a ledger rule"}
                }
            }
        },
        "/accounts/{accountNumber}/withdrawals": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ledger"],
                "summary": "Withdraw from an account",
                "parameters": [
                    {"type": "integer", "name": "accountNumber", "in": "path", "required": true}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "422": {"description": "Rejected by a ledger rule"}
                }
            }
        },
        "/accounts/{accountNumber}/statement": {
            "get": {
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Generate an account statement",
                "parameters": [
                    {"type": "integer", "name": "accountNumber", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/clients": {
            "get": {
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "List registered clients",
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "Register a new client",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Tax id already registered"}
                }
            }
        },
        "/clients/{clientID}/accounts": {
            "get": {
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "List a client's accounts",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Client not found or has no accounts"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["clients"],
                "summary": "Open an account for a client",
                "responses": {
                    "201": {"description": "Created"},
                    "404": {"description": "Client not found"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Retail Banking Ledger API",
	Description:      "Clients, accounts and the transactions that mutate account balances.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
