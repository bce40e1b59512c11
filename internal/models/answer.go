package models

// Answer es la respuesta a una pregunta en lenguaje natural
type Answer struct {
	Found    bool      `json:"found"`
	Message  string    `json:"message"`
	Products []Product `json:"products"`
	Intent   string    `json:"intent,omitempty"`
}
