// Package skillmeta parses and validates the optional skill.yaml file a
// skill checkout may carry (display name, description, author, tags).
// Validation runs against an embedded JSON schema; an invalid or missing
// file is a warning for callers, never a lifecycle failure.
package skillmeta
