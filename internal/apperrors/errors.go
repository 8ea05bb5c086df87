package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrTransport indicates that fetching a feed failed: the request did not
// complete or the server answered with a non-success status.
var ErrTransport = errors.New("transport error")

// ErrFeedNotFound marks a feed request answered with 404. It is always
// reported together with ErrTransport.
var ErrFeedNotFound = errors.New("feed not found")

// ErrFormat indicates a malformed archive or XML document, or a required
// field missing from an otherwise well-formed one.
var ErrFormat = errors.New("format error")

// ErrEncoding indicates that feed bytes could not be decoded from the
// publisher's legacy code page.
var ErrEncoding = errors.New("encoding error")
