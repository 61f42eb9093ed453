package exchange

import "net/http"

// RequestContext wraps the in-flight request with the read accessors the
// verification pipeline needs. The body is read once by the dispatcher and
// carried here so checks never touch the request stream.
type RequestContext struct {
	Request *http.Request
	Body    []byte
}

// NewRequestContext creates a RequestContext from an HTTP request and its
// already-read body.
func NewRequestContext(req *http.Request, body []byte) *RequestContext {
	return &RequestContext{
		Request: req,
		Body:    body,
	}
}

// PathParam returns the value bound to a path template segment.
func (c *RequestContext) PathParam(name string) string {
	return c.Request.PathValue(name)
}

// QueryParam returns the first value of a query parameter, or "".
func (c *RequestContext) QueryParam(name string) string {
	return c.Request.URL.Query().Get(name)
}

// Header returns the value of a request header, or "".
func (c *RequestContext) Header(name string) string {
	return c.Request.Header.Get(name)
}

// Cookie returns the value of a request cookie, or "" if not present.
func (c *RequestContext) Cookie(name string) string {
	cookie, err := c.Request.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
