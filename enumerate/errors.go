package enumerate

import "errors"

// ErrUnsupportedDistribution is returned when enumeration reaches a
// Sample whose distribution cannot report a finite Support — enumeration
// requires one, unlike Forward or the particle filter.
var ErrUnsupportedDistribution = errors.New("enumerate: distribution has no finite support")
