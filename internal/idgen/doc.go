// Package idgen wraps the random UUID generator so that it can be stubbed in
// tests. It lives under `internal` because callers should create identifiers
// through uuidb64.New rather than depend on the generator directly.
package idgen
