// Package trace provides ready-made reporting adapters for the search
// engine: a console reporter with graded verbosity, an interactive step
// gate, and a structured zerolog reporter for headless runs.
//
// What
//
//   - Console: implements search.Reporter, writing human-readable progress
//     to an io.Writer at verbosity levels 0..3:
//   - 0 — silent
//   - 1 — end-of-run statistics only
//   - 2 — per-iteration one-line summaries plus statistics
//   - 3 — per-iteration node detail plus statistics
//   - Gate: returns a search.StepFunc that blocks on line input, realizing
//     the classic "pause between iterations" mode (verbosity 4: combine a
//     Console at level 2 or 3 with a Gate).
//   - Logger: implements search.Reporter over a zerolog.Logger, emitting
//     one structured event per iteration and per outcome.
//
// Why
//
//	The engine itself is silent. Presentation is an external collaborator
//	wired in through search.WithReporter / search.WithStepGate, so headless
//	and interactive use share one core.
package trace
