package trace

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/bestfirst/search"
)

// Gate returns a search.StepFunc that prompts on out and blocks until a
// line is read from in. Wire it with search.WithStepGate to pause the
// search between iterations (the classic verbosity-4 behavior).
//
// End of input releases the gate permanently, so a closed stdin degrades
// into a non-interactive run rather than an aborted one. Any other read
// error aborts the search.
func Gate(in io.Reader, out io.Writer) search.StepFunc {
	br := bufio.NewReader(in)
	exhausted := false

	return func() error {
		if exhausted {
			return nil
		}
		fmt.Fprint(out, "continue > ")
		if _, err := br.ReadString('\n'); err != nil {
			if !errors.Is(err, io.EOF) {
				return err
			}
			exhausted = true
		}

		return nil
	}
}
