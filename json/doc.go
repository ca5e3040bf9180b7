// Package json implements the value model and parser that back this
// module's JWT claims and JWK representations: a tagged-variant Value
// (null, bool, integer, number, string, array, object), ordered Object
// and Array containers with a single monotonic lock flag each, and a
// bounded recursive-descent parser guarded by Limits.
//
// It is a deliberately narrower, stricter JSON implementation than
// encoding/json: final (write-once) object members, explicit per-document
// resource limits, and UTF-8 validation on every string are the point of
// this package, not incidental features.
package json
