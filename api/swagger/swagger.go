package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Academic Engine API",
        "description": "Timetable, grade and attendance engine",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {
            "name": "Timetable",
            "description": "Configured school day"
        },
        {
            "name": "Schedules",
            "description": "Class timetables and educator agendas"
        },
        {
            "name": "Academic Records",
            "description": "Grades, attendance and derived metrics"
        }
    ],
    "paths": {
        "/timeslots": {
            "get": {
                "tags": [
                    "Timetable"
                ],
                "summary": "List configured time slots",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/timeslots/preview": {
            "post": {
                "tags": [
                    "Timetable"
                ],
                "summary": "Preview time slots for arbitrary shift parameters",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/TimeSlotPreviewRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation or configuration error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/classes/{classId}/schedule": {
            "get": {
                "tags": [
                    "Schedules"
                ],
                "summary": "Get a class weekly schedule",
                "parameters": [
                    {
                        "name": "classId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/classes/{classId}/schedule/{weekday}/{slot}": {
            "put": {
                "tags": [
                    "Schedules"
                ],
                "summary": "Place a lesson in a schedule cell",
                "parameters": [
                    {
                        "name": "classId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "weekday",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Segunda..Sexta"
                    },
                    {
                        "name": "slot",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Slot start HH:MM"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ScheduleEntryBody"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation or configuration error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "Schedules"
                ],
                "summary": "Clear a schedule cell",
                "parameters": [
                    {
                        "name": "classId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "weekday",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Segunda..Sexta"
                    },
                    {
                        "name": "slot",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "Slot start HH:MM"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/educators/{educatorId}/agenda": {
            "get": {
                "tags": [
                    "Schedules"
                ],
                "summary": "Get an educator's weekly agenda",
                "parameters": [
                    {
                        "name": "educatorId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/schedule/conflicts": {
            "get": {
                "tags": [
                    "Schedules"
                ],
                "summary": "List educators booked in two classes at once",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/calendar/events": {
            "get": {
                "tags": [
                    "Calendar"
                ],
                "summary": "List calendar events of a month",
                "parameters": [
                    {
                        "name": "year",
                        "in": "query",
                        "required": true,
                        "type": "integer"
                    },
                    {
                        "name": "month",
                        "in": "query",
                        "required": true,
                        "type": "integer"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "Calendar"
                ],
                "summary": "Add a calendar event",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/CreateCalendarEventRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/calendar/events/{id}": {
            "delete": {
                "tags": [
                    "Calendar"
                ],
                "summary": "Remove a calendar event",
                "parameters": [
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/classes": {
            "get": {
                "tags": [
                    "Catalog"
                ],
                "summary": "List classes",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/classes/{classId}": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "Catalog"
                ],
                "summary": "Create or rename a class",
                "parameters": [
                    {
                        "name": "classId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpsertClassRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/classes/{classId}/subjects": {
            "get": {
                "tags": [
                    "Catalog"
                ],
                "summary": "List the subjects configured for a class",
                "parameters": [
                    {
                        "name": "classId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/classes/{classId}/subjects/{subject}": {
            "put": {
                "consumes": [
                    "application/json"
                ],
                "tags": [
                    "Catalog"
                ],
                "summary": "Configure how a subject's grades aggregate",
                "description": "Weighted subjects need at least one assessment; every weight must be positive.",
                "parameters": [
                    {
                        "name": "classId",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "subject",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UpsertSubjectRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/classes/{classId}/students/{studentId}/record": {
            "get": {
                "tags": [
                    "Academic Records"
                ],
                "summary": "Get a student's academic record",
                "parameters": [
                    {
                        "name": "classId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "studentId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/classes/{classId}/students/{studentId}/report-card": {
            "get": {
                "tags": [
                    "Academic Records"
                ],
                "summary": "Get final grades per subject",
                "parameters": [
                    {
                        "name": "classId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "studentId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/classes/{classId}/students/{studentId}/grades": {
            "put": {
                "tags": [
                    "Academic Records"
                ],
                "summary": "Record an assessment grade",
                "description": "A null value marks the assessment as not graded yet.",
                "parameters": [
                    {
                        "name": "classId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "studentId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/GradeBody"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation or configuration error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/classes/{classId}/students/{studentId}/grades/{subject}/{assessment}": {
            "delete": {
                "tags": [
                    "Academic Records"
                ],
                "summary": "Remove an assessment from a student's record",
                "parameters": [
                    {
                        "name": "classId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "studentId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "subject",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "assessment",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/classes/{classId}/students/{studentId}/attendance/{date}": {
            "put": {
                "tags": [
                    "Academic Records"
                ],
                "summary": "Record attendance for a date",
                "parameters": [
                    {
                        "name": "classId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "studentId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "date",
                        "in": "path",
                        "type": "string",
                        "required": true,
                        "description": "YYYY-MM-DD"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/AttendanceBody"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation or configuration error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/classes/{classId}/students/{studentId}/attendance": {
            "get": {
                "tags": [
                    "Academic Records"
                ],
                "summary": "Count absences on school days of a month",
                "parameters": [
                    {
                        "name": "classId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "studentId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "year",
                        "in": "query",
                        "type": "integer",
                        "required": true
                    },
                    {
                        "name": "month",
                        "in": "query",
                        "type": "integer",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation or configuration error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/classes/{classId}/subjects/{subject}/grades": {
            "get": {
                "tags": [
                    "Academic Records"
                ],
                "summary": "Final grades of one subject across a class",
                "parameters": [
                    {
                        "name": "classId",
                        "in": "path",
                        "type": "string",
                        "required": true
                    },
                    {
                        "name": "subject",
                        "in": "path",
                        "type": "string",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "TimeSlotPreviewRequest": {
            "type": "object",
            "properties": {
                "start_time": {
                    "type": "string",
                    "example": "07:30"
                },
                "class_duration_minutes": {
                    "type": "integer"
                },
                "break_duration_minutes": {
                    "type": "integer"
                },
                "number_of_classes": {
                    "type": "integer"
                },
                "break_after_class": {
                    "type": "integer"
                }
            },
            "required": [
                "start_time"
            ]
        },
        "ScheduleEntryBody": {
            "type": "object",
            "properties": {
                "subject_name": {
                    "type": "string"
                },
                "educator_id": {
                    "type": "string"
                }
            },
            "required": [
                "subject_name",
                "educator_id"
            ]
        },
        "GradeBody": {
            "type": "object",
            "properties": {
                "subject": {
                    "type": "string"
                },
                "assessment": {
                    "type": "string"
                },
                "value": {
                    "type": "number",
                    "x-nullable": true
                }
            },
            "required": [
                "subject",
                "assessment"
            ]
        },
        "CreateCalendarEventRequest": {
            "type": "object",
            "properties": {
                "year": {
                    "type": "integer"
                },
                "month": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 12
                },
                "day": {
                    "type": "integer",
                    "minimum": 1,
                    "maximum": 31
                },
                "type": {
                    "type": "string",
                    "enum": [
                        "exam",
                        "holiday",
                        "event",
                        "other"
                    ]
                },
                "label": {
                    "type": "string"
                }
            },
            "required": [
                "year",
                "month",
                "day",
                "type"
            ]
        },
        "UpsertClassRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "shift": {
                    "type": "string",
                    "enum": [
                        "morning",
                        "afternoon"
                    ]
                }
            },
            "required": [
                "name"
            ]
        },
        "UpsertSubjectRequest": {
            "type": "object",
            "properties": {
                "calculation_method": {
                    "type": "string",
                    "enum": [
                        "arithmetic",
                        "weighted"
                    ]
                },
                "assessments": {
                    "type": "array",
                    "items": {
                        "type": "object",
                        "properties": {
                            "name": {
                                "type": "string"
                            },
                            "weight": {
                                "type": "number",
                                "exclusiveMinimum": true,
                                "minimum": 0
                            }
                        },
                        "required": [
                            "name",
                            "weight"
                        ]
                    }
                }
            },
            "required": [
                "calculation_method"
            ]
        },
        "AttendanceBody": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "Presente",
                        "Falta",
                        "Justificado"
                    ]
                }
            },
            "required": [
                "status"
            ]
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "status": {
                    "type": "integer"
                }
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {
                    "type": "object"
                },
                "error": {
                    "$ref": "#/definitions/APIError"
                },
                "meta": {
                    "type": "object"
                }
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
