package routes

// Package routes wires the HTTP surface of the freight message parser.
//
// Layout:
// - api.go: versioned API routes (/v1/*), health probes and /metrics
// - web.go: informational pages (/ and /docs)
//
// Usage:
// routes.SetupAllRoutes(router, parseController, adminController)
