// Package stylesheet converts loosely typed style dictionaries, as decoded
// from TOML or YAML, into typed layout styles.
//
// Parsing never fails outright. A key that cannot be resolved is reported as a
// [*StyleResolutionError] and left unset so the layout falls back to that
// key's default.
package stylesheet
