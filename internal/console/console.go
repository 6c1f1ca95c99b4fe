package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/averycrespi/calc-mcp/internal/keypad"
	"github.com/averycrespi/calc-mcp/pkg/types"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Console is an interactive calculator on a terminal
type Console struct {
	pad    *keypad.Keypad
	memory types.Memory
	in     io.Reader
	out    io.Writer
}

// New creates a console reading keys from in and drawing to out
func New(pad *keypad.Keypad, memory types.Memory, in io.Reader, out io.Writer) *Console {
	return &Console{
		pad:    pad,
		memory: memory,
		in:     in,
		out:    out,
	}
}

// Run reads keys until quit, end of input or context cancellation. A terminal is
// read one keystroke at a time with the display redrawn in place; anything else is
// read line by line, each line being a key sequence.
func (c *Console) Run(ctx context.Context) error {
	if f, ok := c.in.(*os.File); ok && isTerminal(f) {
		return c.runRaw(ctx, f)
	}
	return c.runLines(ctx)
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *Console) display() string {
	return Render(c.pad.State().Snapshot(), c.memory.Recall())
}

func (c *Console) runRaw(ctx context.Context, f *os.File) error {
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enter raw mode: %w", err)
	}
	defer func() {
		if err := term.Restore(fd, oldState); err != nil {
			slog.Warn("Failed to restore terminal", "error", err)
		}
	}()

	writer := uilive.New()
	writer.Out = c.out

	// Raw mode disables output post-processing, so lines end in \r\n
	draw := func() {
		fmt.Fprintf(writer, "%s\r\n%s\r\n", c.display(), HelpLine)
		if err := writer.Flush(); err != nil {
			slog.Warn("Failed to draw display", "error", err)
		}
	}
	draw()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	return c.pressKeystrokes(ctx, readKeystrokes(ctx, f), draw)
}

// keystroke is one byte read from the terminal, or the error that ended reading
type keystroke struct {
	b   byte
	err error
}

// readKeystrokes reads r a byte at a time on its own goroutine so a cancelled
// context is noticed while a Read is still blocked. That goroutine exits after
// its pending Read returns.
func readKeystrokes(ctx context.Context, r io.Reader) <-chan keystroke {
	keys := make(chan keystroke)
	go func() {
		defer close(keys)
		buf := make([]byte, 1)
		for {
			n, err := r.Read(buf)
			if n == 0 && err == nil {
				err = io.EOF
			}
			if n == 1 && !send(ctx, keys, keystroke{b: buf[0]}) {
				return
			}
			if err != nil {
				send(ctx, keys, keystroke{err: err})
				return
			}
		}
	}()
	return keys
}

func (c *Console) pressKeystrokes(ctx context.Context, keys <-chan keystroke, draw func()) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case k, ok := <-keys:
			if !ok || ctx.Err() != nil || errors.Is(k.err, io.EOF) {
				return nil
			}
			if k.err != nil {
				return fmt.Errorf("failed to read key: %w", k.err)
			}
			if isQuit(k.b) {
				return nil
			}
			if key, ok := KeyForByte(k.b); ok {
				c.pad.Press(key)
				draw()
			}
		}
	}
}

// line is one line of piped input, or the error that ended reading
type line struct {
	text string
	err  error
}

// readLines scans r on its own goroutine; the channel closes at end of input
func readLines(ctx context.Context, r io.Reader) <-chan line {
	lines := make(chan line)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if !send(ctx, lines, line{text: scanner.Text()}) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			send(ctx, lines, line{err: err})
		}
	}()
	return lines
}

func (c *Console) runLines(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := readLines(ctx, c.in)
	for {
		select {
		case <-ctx.Done():
			return nil
		case l, ok := <-lines:
			if !ok || ctx.Err() != nil {
				return nil
			}
			if l.err != nil {
				return fmt.Errorf("failed to read input: %w", l.err)
			}
			if l.text == "q" || l.text == "quit" {
				return nil
			}

			if _, err := c.pad.Type(l.text); err != nil {
				fmt.Fprintf(c.out, "%v\n", err)
				continue
			}
			fmt.Fprintln(c.out, c.display())
		}
	}
}

// send delivers v unless ctx is cancelled first
func send[T any](ctx context.Context, ch chan<- T, v T) bool {
	select {
	case ch <- v:
		return true
	case <-ctx.Done():
		return false
	}
}
