// Package api exposes the HTTP surface of the application: routing,
// request decoding and validation, and response formatting. It adapts
// HTTP concerns onto the internal services without carrying any
// medication scheduling logic of its own.
package api
