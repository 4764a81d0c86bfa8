package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Internship Tracker API",
        "description": "Intern and supervisor dashboards of the internship tracker",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": [
        "http"
    ],
    "tags": [
        {
            "name": "Health"
        },
        {
            "name": "Views"
        },
        {
            "name": "Notifications"
        },
        {
            "name": "Roster"
        },
        {
            "name": "Profile"
        },
        {
            "name": "WeeklySummary"
        },
        {
            "name": "Feedback"
        },
        {
            "name": "Documents"
        }
    ],
    "paths": {
        "/health": {
            "get": {
                "tags": [
                    "Health"
                ],
                "summary": "Liveness probe with a metrics snapshot",
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
        "/ready": {
            "get": {
                "tags": [
                    "Health"
                ],
                "summary": "Readiness check",
                "responses": {
                    "200": {
                        "description": "Ready"
                    }
                }
            }
        },
        "/api/v1/views": {
            "get": {
                "tags": [
                    "Views"
                ],
                "summary": "Views available to a role",
                "parameters": [
                    {
                        "name": "role",
                        "in": "query",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
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
        "/api/v1/notifications": {
            "get": {
                "tags": [
                    "Notifications"
                ],
                "summary": "Outcome notifications, newest first",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Intern-ID",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "since",
                        "in": "query",
                        "type": "string",
                        "format": "date-time"
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
        "/api/v1/supervisor/roster": {
            "get": {
                "tags": [
                    "Roster"
                ],
                "summary": "Filter the intern roster",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "search",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "status",
                        "in": "query",
                        "type": "string"
                    },
                    {
                        "name": "unit",
                        "in": "query",
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
        "/api/v1/supervisor/roster/stats": {
            "get": {
                "tags": [
                    "Roster"
                ],
                "summary": "Roster summary counts",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
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
        "/api/v1/supervisor/roster/{id}": {
            "get": {
                "tags": [
                    "Roster"
                ],
                "summary": "Get one roster entry",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "id",
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
        "/api/v1/supervisor/roster/export": {
            "post": {
                "tags": [
                    "Roster"
                ],
                "summary": "Export the filtered roster as CSV or PDF",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ExportRosterRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/exports/{token}": {
            "get": {
                "tags": [
                    "Roster"
                ],
                "summary": "Download a generated roster report",
                "produces": [
                    "text/csv",
                    "application/pdf"
                ],
                "parameters": [
                    {
                        "name": "token",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "Report file",
                        "schema": {
                            "type": "file"
                        }
                    },
                    "404": {
                        "description": "Invalid or expired link",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/intern/profile": {
            "get": {
                "tags": [
                    "Profile"
                ],
                "summary": "Current profile and edit state",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "X-Intern-ID",
                        "in": "header",
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
            },
            "patch": {
                "tags": [
                    "Profile"
                ],
                "summary": "Change one profile field",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "X-Intern-ID",
                        "in": "header",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SetFieldRequest"
                        }
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
        "/api/v1/intern/profile/options": {
            "get": {
                "tags": [
                    "Profile"
                ],
                "summary": "Select options of the profile form",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "X-Intern-ID",
                        "in": "header",
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
        "/api/v1/intern/profile/edit": {
            "post": {
                "tags": [
                    "Profile"
                ],
                "summary": "Enter profile edit mode",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "X-Intern-ID",
                        "in": "header",
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
        "/api/v1/intern/profile/save": {
            "post": {
                "tags": [
                    "Profile"
                ],
                "summary": "Persist the edited profile",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "X-Intern-ID",
                        "in": "header",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Submission already in progress",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/intern/weekly-summary": {
            "get": {
                "tags": [
                    "WeeklySummary"
                ],
                "summary": "Current weekly summary draft",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "X-Intern-ID",
                        "in": "header",
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
            },
            "patch": {
                "tags": [
                    "WeeklySummary"
                ],
                "summary": "Change one weekly summary field",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "X-Intern-ID",
                        "in": "header",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SetFieldRequest"
                        }
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
        "/api/v1/intern/weekly-summary/files": {
            "post": {
                "tags": [
                    "WeeklySummary"
                ],
                "summary": "Attach or detach a file name",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "X-Intern-ID",
                        "in": "header",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ToggleMemberRequest"
                        }
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
        "/api/v1/intern/weekly-summary/submit": {
            "post": {
                "tags": [
                    "WeeklySummary"
                ],
                "summary": "Submit the weekly summary",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "X-Intern-ID",
                        "in": "header",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Submission already in progress",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/intern/weekly-summary/history": {
            "get": {
                "tags": [
                    "WeeklySummary"
                ],
                "summary": "Previous weekly submissions, newest first",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "X-Intern-ID",
                        "in": "header",
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
        "/api/v1/intern/feedback": {
            "get": {
                "tags": [
                    "Feedback"
                ],
                "summary": "Current feedback draft",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "X-Intern-ID",
                        "in": "header",
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
            },
            "patch": {
                "tags": [
                    "Feedback"
                ],
                "summary": "Change one feedback field",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "X-Intern-ID",
                        "in": "header",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/SetFieldRequest"
                        }
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
        "/api/v1/intern/feedback/skills": {
            "post": {
                "tags": [
                    "Feedback"
                ],
                "summary": "Include or exclude a developed skill",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "X-Intern-ID",
                        "in": "header",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/ToggleMemberRequest"
                        }
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
        "/api/v1/intern/feedback/submit": {
            "post": {
                "tags": [
                    "Feedback"
                ],
                "summary": "Submit the feedback form",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "X-Intern-ID",
                        "in": "header",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "202": {
                        "description": "Accepted",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "409": {
                        "description": "Submission already in progress",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    },
                    "400": {
                        "description": "Validation error",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/intern/documents": {
            "get": {
                "tags": [
                    "Documents"
                ],
                "summary": "Documents grouped by category with storage usage",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "X-Intern-ID",
                        "in": "header",
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
            },
            "post": {
                "tags": [
                    "Documents"
                ],
                "summary": "Record an uploaded document",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "X-Intern-ID",
                        "in": "header",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/UploadDocumentRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/intern/documents/{id}": {
            "delete": {
                "tags": [
                    "Documents"
                ],
                "summary": "Remove a document",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "X-Intern-ID",
                        "in": "header",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "id",
                        "in": "path",
                        "required": true,
                        "type": "string"
                    }
                ],
                "responses": {
                    "204": {
                        "description": "Deleted"
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/ResponseEnvelope"
                        }
                    }
                }
            }
        },
        "/api/v1/intern/documents/{id}/download": {
            "get": {
                "tags": [
                    "Documents"
                ],
                "summary": "Download descriptor of a document",
                "parameters": [
                    {
                        "name": "X-Tracker-Role",
                        "in": "header",
                        "required": true,
                        "type": "string",
                        "enum": [
                            "intern",
                            "supervisor"
                        ]
                    },
                    {
                        "name": "X-Tracker-View",
                        "in": "header",
                        "type": "string"
                    },
                    {
                        "name": "X-Intern-ID",
                        "in": "header",
                        "required": true,
                        "type": "string"
                    },
                    {
                        "name": "id",
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
        }
    },
    "definitions": {
        "SetFieldRequest": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "value": {
                    "type": "string"
                }
            },
            "required": [
                "field"
            ]
        },
        "ToggleMemberRequest": {
            "type": "object",
            "properties": {
                "member": {
                    "type": "string"
                },
                "include": {
                    "type": "boolean"
                }
            },
            "required": [
                "member",
                "include"
            ]
        },
        "ExportRosterRequest": {
            "type": "object",
            "properties": {
                "format": {
                    "type": "string",
                    "enum": [
                        "csv",
                        "pdf"
                    ]
                },
                "search": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "unit": {
                    "type": "string"
                }
            },
            "required": [
                "format"
            ]
        },
        "UploadDocumentRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string"
                },
                "type": {
                    "type": "string"
                },
                "size": {
                    "type": "integer",
                    "format": "int64"
                },
                "category": {
                    "type": "string",
                    "enum": [
                        "agreements",
                        "contracts",
                        "reports",
                        "certificates"
                    ]
                }
            },
            "required": [
                "name",
                "category"
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
