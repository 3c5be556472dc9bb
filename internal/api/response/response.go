package response

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of unexpected server failures and auth rejections.
type ErrorResponse struct {
	Error string `json:"error" example:"internal server error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, ErrorResponse{Error: message})
}

// Envelope wraps most catalog response bodies.
type Envelope struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// BoardEnvelope carries a product after an update to it or its task list.
type BoardEnvelope struct {
	Success bool `json:"success"`
	Board   any  `json:"board"`
}

// Message is the bare confirmation body of task updates and deletes.
type Message struct {
	Data string `json:"data"`
}

// WriteSuccess writes data inside a successful envelope.
func WriteSuccess(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, Envelope{Success: true, Data: data})
}

// WriteFailure writes a client error message inside a failed envelope.
func WriteFailure(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Envelope{Success: false, Data: message})
}

// WriteBoard writes the product under "board".
func WriteBoard(w http.ResponseWriter, status int, board any) {
	WriteJSON(w, status, BoardEnvelope{Success: true, Board: board})
}

// WriteMessage writes {"data": message} with no success flag.
func WriteMessage(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, Message{Data: message})
}
