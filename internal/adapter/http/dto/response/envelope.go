package response

// Envelope is the success wrapper returned by every endpoint. Errors use the
// pkg.HTTPError shape instead.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func OK(message string, data interface{}) Envelope {
	return Envelope{Success: true, Message: message, Data: data}
}
