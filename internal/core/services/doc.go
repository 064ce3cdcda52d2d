// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The upload coordinator, department router and document presenter
// together make up the client-side document lifecycle.
package services
