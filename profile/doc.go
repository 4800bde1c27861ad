// Package profile encodes and decodes equalizer profiles.
//
// Two formats are supported: a JSON schema carrying device and timestamp
// metadata alongside the band sequence, and a line-oriented text grammar
// compatible with common parametric-EQ export conventions. Text decoding is
// deliberately permissive: recognized directives merge over the default
// band sequence and everything else is ignored, so hand-edited or
// comment-laden files still load.
//
// Decoding never touches live state. A decoded Parsed profile is applied to
// a store in a single atomic replacement via Apply, so a failed import
// leaves existing state exactly as it was.
package profile
