// Package domain contains the core model for the OCRopus automake tools.
//
// The domain is filesystem-agnostic: it classifies slash-separated paths relative to the
// project root and never touches disk. Infra adapters produce the raw path lists and
// render the results.
package domain
