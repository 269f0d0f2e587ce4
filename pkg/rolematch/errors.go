package rolematch

import "errors"

// ErrUnknownMatcher is returned when no built-in matcher carries the
// requested name.
var ErrUnknownMatcher = errors.New("rolematch.unknown_matcher")
