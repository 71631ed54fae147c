package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// Confirm prints a styled yes/no prompt and reads one line, respecting
// context cancellation. Only "y" or "yes" count as confirmation.
func Confirm(ctx context.Context, in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, WarningStyle.Render(prompt+" [y/N] "))

	type result struct {
		err  error
		line string
	}
	resultCh := make(chan result, 1)

	go func() {
		line, err := bufio.NewReader(in).ReadString('\n')
		resultCh <- result{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return false, ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil && res.line == "" {
			return false, res.err
		}
		answer := strings.ToLower(strings.TrimSpace(res.line))
		return answer == "y" || answer == "yes", nil
	}
}
