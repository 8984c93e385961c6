package nav

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Confirmer resolves a yes/no question put to the user. The rest of the UI
// is not blocked while the prompt is pending; only the calling flow suspends.
type Confirmer interface {
	Confirm(ctx context.Context, title, question string) (bool, error)
}

// TerminalConfirmer asks on the terminal and accepts s/sim/y/yes (any case)
// as affirmative. Anything else, including a dismissed or failed read,
// counts as declined.
type TerminalConfirmer struct {
	In  *bufio.Reader
	Out io.Writer
}

func (c *TerminalConfirmer) Confirm(_ context.Context, title, question string) (bool, error) {
	if _, err := fmt.Fprintf(c.Out, "%s\n%s [s/N] ", title, question); err != nil {
		return false, err
	}

	line, err := c.In.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "s", "sim", "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// StaticConfirmer answers every prompt with a fixed value. Used for scripted
// runs and tests.
type StaticConfirmer struct {
	Answer bool
}

func (c StaticConfirmer) Confirm(context.Context, string, string) (bool, error) {
	return c.Answer, nil
}
