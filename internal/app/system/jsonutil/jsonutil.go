// Package jsonutil provides helper functions for JSON API responses.
//
// Every response in the API — success or failure — uses the same envelope:
//
//	{ success, message?, data?, count?, total?, page?, totalPages?, error? }
//
// Handlers should only write responses through these helpers so the shape
// stays uniform across all resources.
package jsonutil

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response body for every endpoint.
type Envelope struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Data       any    `json:"data,omitempty"`
	Count      *int   `json:"count,omitempty"`
	Total      *int64 `json:"total,omitempty"`
	Page       *int64 `json:"page,omitempty"`
	TotalPages *int64 `json:"totalPages,omitempty"`
	Error      string `json:"error,omitempty"`
}

// JSON writes an envelope with the given status code.
func JSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

// OK writes a 200 response with data.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, Envelope{Success: true, Data: data})
}

// OKMessage writes a 200 response with a message and optional data.
func OKMessage(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

// OKList writes a 200 response with data and a count field.
func OKList(w http.ResponseWriter, data any, count int) {
	JSON(w, http.StatusOK, Envelope{Success: true, Data: data, Count: &count})
}

// OKPage writes a 200 response with data and pagination fields.
func OKPage(w http.ResponseWriter, data any, total, page, totalPages int64) {
	JSON(w, http.StatusOK, Envelope{
		Success:    true,
		Data:       data,
		Total:      &total,
		Page:       &page,
		TotalPages: &totalPages,
	})
}

// Created writes a 201 response with data.
func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, Envelope{Success: true, Data: data})
}

// CreatedMessage writes a 201 response with a message and data.
func CreatedMessage(w http.ResponseWriter, message string, data any) {
	JSON(w, http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Fail writes an error response. The envelope carries success:false and a
// human-readable error string; no other fields are set.
func Fail(w http.ResponseWriter, status int, message string) {
	JSON(w, status, Envelope{Success: false, Error: message})
}

// Decode reads and decodes JSON from the request body into v.
//
// Usage:
//
//	var input CreateInput
//	if err := jsonutil.Decode(r, &input); err != nil {
//	    jsonutil.Fail(w, http.StatusBadRequest, "invalid request body")
//	    return
//	}
func Decode(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
