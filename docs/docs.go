// Package docs registra el documento OpenAPI servido en /swagger/doc.json.
// Las anotaciones @Router de los handlers describen los mismos endpoints.
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
    "securityDefinitions": {
        "Bearer": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/login": {
            "post": {
                "tags": ["sesion"],
                "summary": "Iniciar sesión",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/session.loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/session.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.MessageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/httpx.MessageResponse"}}
                }
            }
        },
        "/usuarios": {
            "get": {"security": [{"Bearer": []}], "tags": ["usuarios"], "summary": "Listar usuarios", "produces": ["application/json"],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/users.userResponse"}}}}},
            "post": {"security": [{"Bearer": []}], "tags": ["usuarios"], "summary": "Crear usuario", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/users.createUserRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/users.userResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.MessageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpx.MessageResponse"}}
                }}
        },
        "/usuarios/{id}": {
            "get": {"security": [{"Bearer": []}], "tags": ["usuarios"], "summary": "Obtener usuario", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/users.userResponse"}}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"Bearer": []}], "tags": ["usuarios"], "summary": "Actualizar usuario (reemplazo completo; password opcional)", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/users.updateUserRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/users.userResponse"}}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict"}}},
            "delete": {"security": [{"Bearer": []}], "tags": ["usuarios"], "summary": "Eliminar usuario",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/medicos": {
            "get": {"security": [{"Bearer": []}], "tags": ["medicos"], "summary": "Listar médicos", "produces": ["application/json"],
                "parameters": [{"type": "boolean", "name": "soloActivos", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/doctors.doctorListItem"}}}}},
            "post": {"security": [{"Bearer": []}], "tags": ["medicos"], "summary": "Crear médico", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/doctors.doctorRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/doctors.doctorResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.MessageResponse"}}}}
        },
        "/medicos/{id}": {
            "get": {"security": [{"Bearer": []}], "tags": ["medicos"], "summary": "Obtener médico", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/doctors.doctorResponse"}}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"Bearer": []}], "tags": ["medicos"], "summary": "Actualizar médico (reemplazo completo)", "consumes": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/doctors.doctorRequest"}}],
                "responses": {"204": {"description": "No Content"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"Bearer": []}], "tags": ["medicos"], "summary": "Eliminar médico (cascada de consultas; 409 si tiene usuarios)",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}, "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/httpx.MessageResponse"}}}}
        },
        "/pacientes": {
            "get": {"security": [{"Bearer": []}], "tags": ["pacientes"], "summary": "Listar pacientes", "produces": ["application/json"],
                "parameters": [{"type": "boolean", "name": "soloActivos", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/patients.patientListItem"}}}}},
            "post": {"security": [{"Bearer": []}], "tags": ["pacientes"], "summary": "Crear paciente", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/patients.patientRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/patients.patientResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.MessageResponse"}}}}
        },
        "/pacientes/{id}": {
            "get": {"security": [{"Bearer": []}], "tags": ["pacientes"], "summary": "Obtener paciente", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/patients.patientResponse"}}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"Bearer": []}], "tags": ["pacientes"], "summary": "Actualizar paciente (reemplazo completo)", "consumes": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/patients.patientRequest"}}],
                "responses": {"204": {"description": "No Content"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"Bearer": []}], "tags": ["pacientes"], "summary": "Eliminar paciente (cascada de consultas)",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        },
        "/consultas": {
            "get": {"security": [{"Bearer": []}], "tags": ["consultas"], "summary": "Listar consultas (id descendente)", "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "name": "top", "in": "query", "description": "máximo de resultados; 0 o negativo => lista vacía"},
                    {"type": "integer", "name": "idMedico", "in": "query"},
                    {"type": "integer", "name": "idPaciente", "in": "query"},
                    {"type": "string", "name": "fecha", "in": "query", "description": "YYYY-MM-DD (UTC)"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/consultations.consultationResponse"}}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.MessageResponse"}}}},
            "post": {"security": [{"Bearer": []}], "tags": ["consultas"], "summary": "Crear consulta", "consumes": ["application/json"], "produces": ["application/json"],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/consultations.consultationRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/consultations.consultationResponse"}}, "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/httpx.MessageResponse"}}}}
        },
        "/consultas/{id}": {
            "get": {"security": [{"Bearer": []}], "tags": ["consultas"], "summary": "Obtener consulta", "produces": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/consultations.consultationResponse"}}, "404": {"description": "Not Found"}}},
            "put": {"security": [{"Bearer": []}], "tags": ["consultas"], "summary": "Actualizar consulta (reemplazo completo)", "consumes": ["application/json"],
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/consultations.consultationRequest"}}],
                "responses": {"204": {"description": "No Content"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}},
            "delete": {"security": [{"Bearer": []}], "tags": ["consultas"], "summary": "Eliminar consulta",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}}
        }
    },
    "definitions": {
        "httpx.MessageResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "session.loginRequest": {"type": "object", "required": ["correo", "password"], "properties": {"correo": {"type": "string"}, "password": {"type": "string"}}},
        "session.loginResponse": {"type": "object", "properties": {
            "id": {"type": "integer"}, "nombreCompleto": {"type": "string"}, "correo": {"type": "string"},
            "token": {"type": "string"}, "expiresAt": {"type": "string", "format": "date-time"}}},
        "users.createUserRequest": {"type": "object", "required": ["correo", "password", "nombreCompleto"], "properties": {
            "correo": {"type": "string"}, "password": {"type": "string", "minLength": 8, "maxLength": 72}, "nombreCompleto": {"type": "string"},
            "idMedico": {"type": "integer"}, "activo": {"type": "boolean"}}},
        "users.updateUserRequest": {"type": "object", "required": ["correo", "nombreCompleto"], "properties": {
            "correo": {"type": "string"}, "nombreCompleto": {"type": "string"}, "idMedico": {"type": "integer"},
            "activo": {"type": "boolean"}, "password": {"type": "string", "minLength": 8, "maxLength": 72}}},
        "users.userResponse": {"type": "object", "properties": {
            "id": {"type": "integer"}, "correo": {"type": "string"}, "nombreCompleto": {"type": "string"},
            "idMedico": {"type": "integer"}, "activo": {"type": "boolean"}, "fechaCreacion": {"type": "string", "format": "date-time"}}},
        "doctors.doctorRequest": {"type": "object", "required": ["primerNombre", "apellidoPaterno", "cedula", "especialidad", "email"], "properties": {
            "primerNombre": {"type": "string"}, "segundoNombre": {"type": "string"}, "apellidoPaterno": {"type": "string"},
            "apellidoMaterno": {"type": "string"}, "cedula": {"type": "string"}, "telefono": {"type": "integer"},
            "especialidad": {"type": "string"}, "email": {"type": "string"}, "activo": {"type": "boolean"}}},
        "doctors.doctorResponse": {"type": "object", "properties": {
            "id": {"type": "integer"}, "primerNombre": {"type": "string"}, "segundoNombre": {"type": "string"},
            "apellidoPaterno": {"type": "string"}, "apellidoMaterno": {"type": "string"}, "cedula": {"type": "string"},
            "telefono": {"type": "integer"}, "especialidad": {"type": "string"}, "email": {"type": "string"},
            "activo": {"type": "boolean"}, "nombreCompleto": {"type": "string"}, "fechaCreacion": {"type": "string", "format": "date-time"}}},
        "doctors.doctorListItem": {"type": "object", "properties": {
            "id": {"type": "integer"}, "primerNombre": {"type": "string"}, "segundoNombre": {"type": "string"},
            "apellidoPaterno": {"type": "string"}, "apellidoMaterno": {"type": "string"}, "especialidad": {"type": "string"},
            "email": {"type": "string"}, "telefono": {"type": "integer"}, "activo": {"type": "boolean"}, "nombreCompleto": {"type": "string"}}},
        "patients.patientRequest": {"type": "object", "required": ["primerNombre", "apellidoPaterno", "telefono"], "properties": {
            "primerNombre": {"type": "string"}, "segundoNombre": {"type": "string"}, "apellidoPaterno": {"type": "string"},
            "apellidoMaterno": {"type": "string"}, "telefono": {"type": "string", "maxLength": 20}, "activo": {"type": "boolean"}}},
        "patients.patientResponse": {"type": "object", "properties": {
            "id": {"type": "integer"}, "primerNombre": {"type": "string"}, "segundoNombre": {"type": "string"},
            "apellidoPaterno": {"type": "string"}, "apellidoMaterno": {"type": "string"}, "telefono": {"type": "string"},
            "activo": {"type": "boolean"}, "nombreCompleto": {"type": "string"}, "fechaCreacion": {"type": "string", "format": "date-time"}}},
        "patients.patientListItem": {"type": "object", "properties": {
            "id": {"type": "integer"}, "primerNombre": {"type": "string"}, "segundoNombre": {"type": "string"},
            "apellidoPaterno": {"type": "string"}, "apellidoMaterno": {"type": "string"}, "telefono": {"type": "string"},
            "activo": {"type": "boolean"}, "nombreCompleto": {"type": "string"}}},
        "consultations.consultationRequest": {"type": "object", "required": ["idMedico", "idPaciente", "sintomas"], "properties": {
            "idMedico": {"type": "integer"}, "idPaciente": {"type": "integer"}, "sintomas": {"type": "string"},
            "recomendaciones": {"type": "string"}, "diagnostico": {"type": "string"}}},
        "consultations.consultationResponse": {"type": "object", "properties": {
            "id": {"type": "integer"}, "idMedico": {"type": "integer"}, "idPaciente": {"type": "integer"},
            "medicoNombre": {"type": "string"}, "pacienteNombre": {"type": "string"}, "sintomas": {"type": "string"},
            "recomendaciones": {"type": "string"}, "diagnostico": {"type": "string"}, "fechaCreacion": {"type": "string", "format": "date-time"}}}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Clínica API",
	Description:      "Usuarios, médicos, pacientes y consultas con login por token.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
