// Package docs registers the Swagger document of the order API with swag.
// Keep the paths in sync with the annotations on the handlers in package http.
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
        "/orders": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Place an order",
                "parameters": [
                    {"in": "body", "name": "order", "required": true, "schema": {"$ref": "#/definitions/createOrderRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/createOrderResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Delete orders with their owned rows",
                "parameters": [
                    {"in": "body", "name": "ids", "required": true, "schema": {"$ref": "#/definitions/deleteOrdersRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/deleteOrdersResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/orders/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Get an order with its items, totals, coupon and history",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/orders/{id}/items": {
            "put": {
                "consumes": ["application/json"],
                "tags": ["orders"],
                "summary": "Replace the line items of an order",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "items", "required": true, "schema": {"$ref": "#/definitions/lineItemsRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/orders/{id}/totals": {
            "put": {
                "consumes": ["application/json"],
                "tags": ["orders"],
                "summary": "Replace the totals of an order",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "totals", "required": true, "schema": {"$ref": "#/definitions/totalsRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/orders/{id}/coupon": {
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Attach a coupon to an order",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "coupon", "required": true, "schema": {"$ref": "#/definitions/attachCouponRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/couponResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/orders/{id}/status": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["orders"],
                "summary": "Move an order to a new status",
                "parameters": [
                    {"type": "integer", "name": "id", "in": "path", "required": true},
                    {"in": "body", "name": "transition", "required": true, "schema": {"$ref": "#/definitions/transitionRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/transitionResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/Error"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/Error"}},
                    "422": {"description": "Unprocessable Entity", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "Error": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "string"}}
            }
        },
        "lineItemOption": {
            "type": "object",
            "required": ["menu_option_id", "menu_option_value_id", "name"],
            "properties": {
                "menu_option_id": {"type": "integer"},
                "menu_option_value_id": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "string", "example": "1.50"}
            }
        },
        "lineItem": {
            "type": "object",
            "required": ["menu_id", "name", "quantity"],
            "properties": {
                "menu_id": {"type": "integer"},
                "name": {"type": "string"},
                "quantity": {"type": "integer"},
                "price": {"type": "string", "example": "8.00"},
                "subtotal": {"type": "string"},
                "comment": {"type": "string"},
                "options": {"type": "array", "items": {"$ref": "#/definitions/lineItemOption"}}
            }
        },
        "total": {
            "type": "object",
            "required": ["code"],
            "properties": {
                "code": {"type": "string"},
                "title": {"type": "string"},
                "value": {"type": "string"},
                "priority": {"type": "integer"}
            }
        },
        "coupon": {
            "type": "object",
            "required": ["code", "amount"],
            "properties": {
                "code": {"type": "string"},
                "amount": {"type": "string"}
            }
        },
        "createOrderRequest": {
            "type": "object",
            "required": ["location_id", "order_type"],
            "properties": {
                "customer_id": {"type": "integer"},
                "address_id": {"type": "integer"},
                "location_id": {"type": "integer"},
                "first_name": {"type": "string"},
                "last_name": {"type": "string"},
                "email": {"type": "string"},
                "telephone": {"type": "string"},
                "order_type": {"type": "string", "enum": ["delivery", "collection", "1", "2"]},
                "order_date_time": {"type": "string", "format": "date-time"},
                "comment": {"type": "string"},
                "payment": {"type": "string"},
                "line_items": {"type": "array", "items": {"$ref": "#/definitions/lineItem"}},
                "totals": {"type": "array", "items": {"$ref": "#/definitions/total"}},
                "coupon": {"$ref": "#/definitions/coupon"},
                "send_confirmation": {"type": "boolean"}
            }
        },
        "createOrderResponse": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "hash": {"type": "string"},
                "confirmation_sent": {"type": "boolean"}
            }
        },
        "lineItemsRequest": {
            "type": "object",
            "properties": {
                "line_items": {"type": "array", "items": {"$ref": "#/definitions/lineItem"}}
            }
        },
        "totalsRequest": {
            "type": "object",
            "properties": {
                "totals": {"type": "array", "items": {"$ref": "#/definitions/total"}}
            }
        },
        "attachCouponRequest": {
            "type": "object",
            "required": ["code", "amount"],
            "properties": {
                "customer_id": {"type": "integer"},
                "code": {"type": "string"},
                "amount": {"type": "string"}
            }
        },
        "couponResponse": {
            "type": "object",
            "properties": {
                "order_id": {"type": "integer"},
                "coupon_id": {"type": "integer"},
                "code": {"type": "string"},
                "amount": {"type": "string"}
            }
        },
        "transitionRequest": {
            "type": "object",
            "required": ["status_id"],
            "properties": {
                "status_id": {"type": "integer"},
                "comment": {"type": "string"},
                "notify": {"type": "boolean"},
                "actor_id": {"type": "integer"}
            }
        },
        "transitionResponse": {
            "type": "object",
            "properties": {
                "order_id": {"type": "integer"},
                "status_id": {"type": "integer"},
                "invoice": {"type": "string"},
                "notified": {"type": "boolean"},
                "stock_failures": {"type": "array", "items": {"type": "string"}}
            }
        },
        "deleteOrdersRequest": {
            "type": "object",
            "required": ["ids"],
            "properties": {
                "ids": {"type": "array", "items": {"type": "integer"}}
            }
        },
        "deleteOrdersResponse": {
            "type": "object",
            "properties": {
                "deleted": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Order fulfillment API",
	Description:      "Places orders and moves them through the fulfillment workflow.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
