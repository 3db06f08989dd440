// Package api provides the optional admin REST API for wpa-netman.
//
// The API server exposes the same operations as the CLI over HTTP REST
// endpoints, intended for router web UIs and automation:
//   - CRUD operations for network fragments
//   - Assembled document preview and publish
//   - Tool status and interface enumeration
//
// # Response Format
//
// All successful responses wrap data in a "data" field:
//
//	{
//	  "data": { /* response payload */ }
//	}
//
// The one exception is GET /api/v1/document, which returns the assembled
// configuration as text/plain so it can be piped straight into a file.
//
// Error responses use the following format:
//
//	{
//	  "error": {
//	    "code": "error_code",
//	    "message": "Human-readable error message",
//	    "details": { /* optional context */ }
//	  }
//	}
//
// # Endpoints
//
//	GET    /api/v1/networks        List all networks
//	POST   /api/v1/networks        Create a network fragment
//	GET    /api/v1/networks/{ssid} Get one network
//	PUT    /api/v1/networks/{ssid} Replace a network fragment
//	DELETE /api/v1/networks/{ssid} Delete a network fragment
//	GET    /api/v1/document        Preview the assembled configuration
//	POST   /api/v1/document        Publish the assembled configuration
//	GET    /api/v1/status          Tool status
//	GET    /api/v1/interfaces      Network interface list
//	GET    /health                 Liveness probe (plain "OK")
//
// The server binds to the address from the [api] settings section and is
// only started by the "serve" command when api.enable is true.
package api
