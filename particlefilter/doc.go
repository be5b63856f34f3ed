// Package particlefilter implements sequential importance resampling:
// N interleaved copies ("particles") of a user computation advance in
// round-robin lockstep, each sample drawn from the prior with no weight
// update; every factor adds to the active particle's log-weight and
// hands control to the next particle, and once every particle has
// passed the same factor (the round-robin wraps back to particle 0) the
// ensemble is resampled with Liu & West's residual scheme before
// continuing. The marginal is built unweighted from the N particles'
// final return values, since resampling has already folded their
// relative weight into how many copies of each survive.
package particlefilter
