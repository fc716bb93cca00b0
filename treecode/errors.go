package treecode

import "errors"

// ErrEmptyDestination is returned by NextStepTowards when dest is not
// longer than self, so no further step can be determined.
var ErrEmptyDestination = errors.New("treecode: destination is not longer than self")
