// Package forward implements Forward (prior) sampling: run the user
// computation once, following whatever random choices the program
// itself makes, and reject any attempt to condition with Factor.
//
// Complexity:
//
//   - Time:  O(1) suspensions beyond whatever the user program itself does;
//     exactly one execution, no re-entry, no resampling.
//   - Space: O(1) strategy state.
package forward
