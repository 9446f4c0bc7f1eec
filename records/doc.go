// Package records reads and writes common file formats through scoped
// accesses.
//
// Every helper runs a single access.Access call, so each one releases its
// handle exactly once and reports on the accessor's side channel. Content
// that fails to decode (invalid UTF-8, CSV field count mismatches, JSON or
// YAML syntax errors) is reported as errors.KindMalformedContent.
package records
