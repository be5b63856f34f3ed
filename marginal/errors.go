package marginal

import "errors"

// ErrEmptyPosterior indicates every accumulated execution scored -Inf
// (zero unnormalized weight in total), so no marginal can be built.
var ErrEmptyPosterior = errors.New("marginal: empty posterior (total weight is zero)")
