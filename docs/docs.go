// Package docs 注册 /swagger 下提供的 OpenAPI 文档，与控制器上的注解保持一致
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
        "/calendar": {
            "post": {
                "description": "依次生成四个季度并拼接；任一季度失败则整体失败，不返回部分结果",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["日历"],
                "summary": "生成52周内容日历",
                "parameters": [
                    {
                        "description": "问卷回答",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/controller.CalendarRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.Response"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/generate": {
            "post": {
                "description": "将提示词转发给大模型，返回第一段文本。非 POST 请求返回 405",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["生成"],
                "summary": "生成代理",
                "parameters": [
                    {
                        "description": "提示词",
                        "name": "body",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/controller.GenerateRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/controller.GenerateResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "405": {"description": "Method Not Allowed", "schema": {"$ref": "#/definitions/util.ErrorResponse"}},
                    "502": {"description": "Bad Gateway", "schema": {"$ref": "#/definitions/util.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "检查服务状态",
                "produces": ["application/json"],
                "tags": ["系统"],
                "summary": "健康检查",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/options": {
            "get": {
                "produces": ["application/json"],
                "tags": ["日历"],
                "summary": "问卷选项",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        },
        "/quarters": {
            "get": {
                "produces": ["application/json"],
                "tags": ["日历"],
                "summary": "季度规划",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/util.Response"}}
                }
            }
        }
    },
    "definitions": {
        "controller.CalendarRequest": {
            "type": "object",
            "required": ["answers"],
            "properties": {
                "answers": {"$ref": "#/definitions/model.Answers"},
                "profile": {"$ref": "#/definitions/model.Profile"}
            }
        },
        "controller.GenerateRequest": {
            "type": "object",
            "required": ["prompt"],
            "properties": {
                "prompt": {"type": "string"}
            }
        },
        "controller.GenerateResponse": {
            "type": "object",
            "properties": {
                "ideas": {"type": "string"}
            }
        },
        "model.Answers": {
            "type": "object",
            "properties": {
                "challenge": {"type": "string"},
                "platforms": {"type": "array", "items": {"type": "string"}},
                "problem": {"type": "string"},
                "skillLevel": {"type": "string"},
                "topics": {"type": "array", "items": {"type": "string"}},
                "transformation": {"type": "string"},
                "uniqueness": {"type": "string"}
            }
        },
        "model.Profile": {
            "type": "object",
            "properties": {
                "email": {"type": "string"},
                "fname": {"type": "string"},
                "lname": {"type": "string"},
                "phone": {"type": "string"}
            }
        },
        "util.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "reason": {"type": "string"}
            }
        },
        "util.Response": {
            "type": "object",
            "properties": {
                "code": {"type": "integer"},
                "data": {},
                "message": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Content Calendar API",
	Description:      "52周社交媒体内容日历生成服务。",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
