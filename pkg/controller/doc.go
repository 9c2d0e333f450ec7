// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for the allowed origins and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID, echoes the ID and logs access info.
//   - WithRecover: Converts handler panics into a JSON 500 response.
//   - WithAPIKey: Guards administrative routes with a static X-API-Key.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
package controller
