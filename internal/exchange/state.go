package exchange

import "net/http"

// ResponseState accumulates the outcome of a dispatch before it is written to
// the client in one shot.
type ResponseState struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

// NewResponseState creates a ResponseState with default status 200.
func NewResponseState() *ResponseState {
	return &ResponseState{
		StatusCode: http.StatusOK,
		Headers:    make(map[string]string),
	}
}

// Respond records a successful outcome.
func (rs *ResponseState) Respond(body string) {
	rs.StatusCode = http.StatusOK
	rs.Body = []byte(body)
}

// Halt records a non-2xx outcome with the given status and body.
func (rs *ResponseState) Halt(statusCode int, body string) {
	rs.StatusCode = statusCode
	rs.Body = []byte(body)
}

// WriteToResponseWriter writes the final state to the http.ResponseWriter.
func (rs *ResponseState) WriteToResponseWriter(w http.ResponseWriter) {
	for key, value := range rs.Headers {
		w.Header().Set(key, value)
	}
	w.WriteHeader(rs.StatusCode)
	if rs.Body != nil {
		w.Write(rs.Body)
	}
}
