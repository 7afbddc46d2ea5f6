package position

import "errors"

// ErrInvalidArguments is returned when a bound contains a character outside
// a-z, when start does not sort strictly before end, or when a negative count
// is requested. Returned errors wrap it with the offending values, so match it
// with errors.Is.
var ErrInvalidArguments = errors.New("invalid arguments")
