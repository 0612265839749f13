// Package http provides the HTTP API for textstore.
//
// # Endpoints
//
// Both endpoints accept any method:
//
//	<base>/writeFile/?text=<value>   append <value> as a line to the write file
//	<base>/readFile/<filename>       return the full contents of <filename>
//
// OPTIONS on any path returns 204 with an empty body. Unmatched paths return
// 404 with a usage hint. Every body is text/plain.
//
// # Status Codes
//
//   - 200: append confirmed, or file contents
//   - 400: missing "text", missing filename, or filename rejected by policy
//   - 404: file not found, or unknown path
//   - 500: unexpected I/O error or recovered panic (generic message only)
//
// # Usage
//
//	handlerCfg := http.HandlerConfig{
//	    BasePath: "",
//	    CORS:     http.CORSConfig{AllowedOrigins: []string{"*"}},
//	}
//	handler := http.NewHandler(&handlerCfg, service)
//	http.ListenAndServe(":3000", handler.Router())
//
// # Middleware
//
// Router installs, outermost first: RequestID, RequestLogger, Recoverer,
// go-chi/cors (preflight headers) and CORSHeaders, which sets
// Access-Control-Allow-Origin on every response and answers OPTIONS.
package http
