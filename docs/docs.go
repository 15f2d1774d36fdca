// Package docs registra la especificación OpenAPI que sirve /swagger.
// Se regenera con `swag init -g cmd/api/main.go` al cambiar las anotaciones.
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
        "/health": {
            "get": {
                "produces": [
                    "text/plain"
                ],
                "tags": [
                    "ops"
                ],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "ok",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/me/session": {
            "get": {
                "description": "Devuelve el estado de auth del usuario (perfil, datos de onboarding) y el grupo de pantallas que corresponde mostrar. Sin credenciales responde is_logged_in=false y destination=login. Autenticación: ` + "`" + `X-Debug-User-ID` + "`" + ` (dev) o ` + "`" + `Authorization: Bearer <token>` + "`" + ` (prod).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "session"
                ],
                "summary": "Estado de sesión",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Bearer token en producción",
                        "name": "Authorization",
                        "in": "header"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/session.sessionResponse"
                        }
                    },
                    "502": {
                        "description": "backend unavailable",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            },
            "delete": {
                "description": "Revoca el token en el proveedor (si hay) y notifica SIGNED_OUT para invalidar caches. Sin credenciales, o con un token inválido o vencido, responde 401.",
                "tags": [
                    "session"
                ],
                "summary": "Cerrar sesión",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Bearer token en producción",
                        "name": "Authorization",
                        "in": "header"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/me/dashboard": {
            "get": {
                "description": "Saludo, progreso de calorías y macros contra las metas del usuario (o las metas por defecto) y comidas del día. ` + "`" + `tz` + "`" + ` es una zona IANA para calcular saludo y fecha en la hora local del cliente. Autenticación: ` + "`" + `X-Debug-User-ID` + "`" + ` (dev) o ` + "`" + `Authorization: Bearer <token>` + "`" + ` (prod).",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "dashboard"
                ],
                "summary": "Resumen del día",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Bearer token en producción",
                        "name": "Authorization",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Zona horaria IANA",
                        "name": "tz",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dashboard.Summary"
                        }
                    },
                    "400": {
                        "description": "invalid tz",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "502": {
                        "description": "backend unavailable",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/onboarding/options": {
            "get": {
                "description": "Lista sexos, niveles de actividad y objetivos con sus textos para UI.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "onboarding"
                ],
                "summary": "Opciones del onboarding",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/onboarding.optionsResponse"
                        }
                    }
                }
            }
        },
        "/onboarding/steps/{step}/validate": {
            "post": {
                "description": "Valida los campos del paso indicado (1..5). El paso 5 revalida 2 a 4. Un error trae title y message para mostrar al usuario.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "onboarding"
                ],
                "summary": "Validar un paso",
                "parameters": [
                    {
                        "type": "integer",
                        "description": "Paso (1..5)",
                        "name": "step",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Formulario tal como se tipeó",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/onboarding.Form"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/onboarding.stepResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/onboarding.stepResponse"
                        }
                    },
                    "404": {
                        "description": "unknown step",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/onboarding/preview": {
            "post": {
                "description": "Valida el formulario completo y devuelve BMR, TDEE, calorías diarias y macros, más las medidas normalizadas a métrico.",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "onboarding"
                ],
                "summary": "Vista previa del plan",
                "parameters": [
                    {
                        "description": "Formulario tal como se tipeó",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/onboarding.Form"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/onboarding.previewResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/onboarding.StepError"
                        }
                    }
                }
            }
        },
        "/onboarding/complete": {
            "post": {
                "description": "Calcula el plan y guarda la fila ` + "`" + `users` + "`" + ` del usuario autenticado con onboarding_completed=true. Sin usuario (invitado, sin header Authorization) devuelve el plan con persisted=false. Un token presente pero inválido o vencido responde 401. Autenticación: ` + "`" + `X-Debug-User-ID` + "`" + ` (dev) o ` + "`" + `Authorization: Bearer <token>` + "`" + ` (prod).",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "onboarding"
                ],
                "summary": "Completar onboarding",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Solo en modo dev, ID de usuario para depuración",
                        "name": "X-Debug-User-ID",
                        "in": "header"
                    },
                    {
                        "type": "string",
                        "description": "Bearer token en producción",
                        "name": "Authorization",
                        "in": "header"
                    },
                    {
                        "description": "Formulario tal como se tipeó",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/onboarding.Form"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "invitado, sin guardar",
                        "schema": {
                            "$ref": "#/definitions/onboarding.completeResponse"
                        }
                    },
                    "201": {
                        "description": "guardado",
                        "schema": {
                            "$ref": "#/definitions/onboarding.completeResponse"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/onboarding.StepError"
                        }
                    },
                    "401": {
                        "description": "unauthorized",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "409": {
                        "description": "onboarding already completed",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "502": {
                        "description": "failed to save your data",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "accounts.UserRecord": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "age": {
                    "type": "integer"
                },
                "height": {
                    "type": "number"
                },
                "weight": {
                    "type": "number"
                },
                "sex": {
                    "type": "string"
                },
                "activity_level": {
                    "type": "string"
                },
                "goal": {
                    "type": "string"
                },
                "target_weight": {
                    "type": "number"
                },
                "daily_calorie_target": {
                    "type": "integer"
                },
                "daily_protein_target": {
                    "type": "integer"
                },
                "daily_carbs_target": {
                    "type": "integer"
                },
                "daily_fat_target": {
                    "type": "integer"
                },
                "onboarding_completed": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                }
            }
        },
        "accounts.ProfileRecord": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "full_name": {
                    "type": "string"
                },
                "avatar_url": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "nutrition.MacroTargets": {
            "type": "object",
            "properties": {
                "protein": {
                    "type": "integer"
                },
                "carbs": {
                    "type": "integer"
                },
                "fat": {
                    "type": "integer"
                }
            }
        },
        "nutrition.HeightImperial": {
            "type": "object",
            "properties": {
                "feet": {
                    "type": "integer"
                },
                "inches": {
                    "type": "integer"
                }
            }
        },
        "nutrition.Plan": {
            "type": "object",
            "properties": {
                "bmr": {
                    "type": "number"
                },
                "tdee": {
                    "type": "integer"
                },
                "daily_calories": {
                    "type": "integer"
                },
                "macros": {
                    "$ref": "#/definitions/nutrition.MacroTargets"
                }
            }
        },
        "onboarding.Form": {
            "type": "object",
            "properties": {
                "unit": {
                    "type": "string",
                    "example": "metric"
                },
                "age": {
                    "type": "string",
                    "example": "30"
                },
                "height": {
                    "type": "string",
                    "example": "175"
                },
                "height_feet": {
                    "type": "string"
                },
                "height_inches": {
                    "type": "string"
                },
                "weight": {
                    "type": "string",
                    "example": "70"
                },
                "sex": {
                    "type": "string",
                    "example": "male"
                },
                "activity_level": {
                    "type": "string",
                    "example": "moderate"
                },
                "goal": {
                    "type": "string",
                    "example": "lose"
                },
                "target_weight": {
                    "type": "string",
                    "example": "65"
                }
            }
        },
        "onboarding.StepError": {
            "type": "object",
            "properties": {
                "step": {
                    "type": "integer"
                },
                "title": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "onboarding.stepResponse": {
            "type": "object",
            "properties": {
                "step": {
                    "type": "integer"
                },
                "valid": {
                    "type": "boolean"
                },
                "error": {
                    "$ref": "#/definitions/onboarding.StepError"
                }
            }
        },
        "onboarding.optionResponse": {
            "type": "object",
            "properties": {
                "value": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "detail": {
                    "type": "string"
                }
            }
        },
        "onboarding.optionsResponse": {
            "type": "object",
            "properties": {
                "total_steps": {
                    "type": "integer"
                },
                "units": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "sexes": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/onboarding.optionResponse"
                    }
                },
                "activity_levels": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/onboarding.optionResponse"
                    }
                },
                "goals": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/onboarding.optionResponse"
                    }
                }
            }
        },
        "onboarding.previewResponse": {
            "type": "object",
            "properties": {
                "unit": {
                    "type": "string"
                },
                "height_cm": {
                    "type": "number"
                },
                "weight_kg": {
                    "type": "number"
                },
                "target_weight_kg": {
                    "type": "number"
                },
                "height_imperial": {
                    "$ref": "#/definitions/nutrition.HeightImperial"
                },
                "weight_lbs": {
                    "type": "integer"
                },
                "height_label": {
                    "type": "string"
                },
                "weight_label": {
                    "type": "string"
                },
                "goal_label": {
                    "type": "string"
                },
                "plan": {
                    "$ref": "#/definitions/nutrition.Plan"
                }
            }
        },
        "onboarding.completeResponse": {
            "type": "object",
            "properties": {
                "persisted": {
                    "type": "boolean"
                },
                "plan": {
                    "$ref": "#/definitions/nutrition.Plan"
                },
                "user": {
                    "$ref": "#/definitions/accounts.UserRecord"
                }
            }
        },
        "session.sessionResponse": {
            "type": "object",
            "properties": {
                "is_logged_in": {
                    "type": "boolean"
                },
                "has_completed_onboarding": {
                    "type": "boolean"
                },
                "user_id": {
                    "type": "string"
                },
                "email": {
                    "type": "string"
                },
                "profile": {
                    "$ref": "#/definitions/accounts.ProfileRecord"
                },
                "user_data": {
                    "$ref": "#/definitions/accounts.UserRecord"
                },
                "destination": {
                    "type": "string",
                    "enum": [
                        "login",
                        "onboarding",
                        "tabs"
                    ]
                }
            }
        },
        "dashboard.MacroProgress": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "current": {
                    "type": "integer"
                },
                "target": {
                    "type": "integer"
                },
                "percent": {
                    "type": "integer"
                }
            }
        },
        "dashboard.Meal": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "calories": {
                    "type": "integer"
                },
                "protein": {
                    "type": "number"
                },
                "carbs": {
                    "type": "number"
                },
                "fat": {
                    "type": "number"
                },
                "time": {
                    "type": "string"
                }
            }
        },
        "dashboard.Summary": {
            "type": "object",
            "properties": {
                "greeting": {
                    "type": "string"
                },
                "display_name": {
                    "type": "string"
                },
                "date_label": {
                    "type": "string"
                },
                "calorie_target": {
                    "type": "integer"
                },
                "consumed": {
                    "type": "integer"
                },
                "remaining": {
                    "type": "integer"
                },
                "progress_percent": {
                    "type": "integer"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "on_track",
                        "near_limit",
                        "over"
                    ]
                },
                "macros": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dashboard.MacroProgress"
                    }
                },
                "meals": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dashboard.Meal"
                    }
                }
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
	Title:            "NutriSnap API",
	Description:      "Backend del cliente móvil de NutriSnap: onboarding, cálculo de calorías/macros, sesión y dashboard.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
