// Package gcp contains internal types and functions for talking to the
// Google Cloud metadata server.
//
// This package is not intended for direct use by consumers of the
// gcpresource library. It builds the traced metadata client, fetches and
// decodes the recursive metadata document, and loads detector configuration
// from the environment.
package gcp
