package api

import "io"

// Request is an inbound call as seen by RecipeHandler, independent of the
// hosting platform
type Request struct {
	Method string
	Body   io.Reader
}

// Response is the status, headers and body to hand back to the platform
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}
