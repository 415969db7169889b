package world

// Sink receives narrative output, one line per call. The engine only
// appends; tests capture lines for assertions.
type Sink interface {
	Print(line string)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(line string)

func (f SinkFunc) Print(line string) { f(line) }

// Transcript is an in-memory Sink.
type Transcript struct {
	lines []string
}

func (t *Transcript) Print(line string) {
	t.lines = append(t.lines, line)
}

// Lines returns all captured lines.
func (t *Transcript) Lines() []string {
	out := make([]string, len(t.lines))
	copy(out, t.lines)
	return out
}

// Drain returns the captured lines and clears the transcript.
func (t *Transcript) Drain() []string {
	out := t.lines
	t.lines = nil
	return out
}

// Len returns the number of captured lines.
func (t *Transcript) Len() int {
	return len(t.lines)
}
