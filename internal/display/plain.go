package display

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Plain writes unstyled output to a writer. It has the same print methods
// as [UI] and is used for piped sessions and tests.
type Plain struct {
	mu  sync.Mutex
	out io.Writer
}

// NewPlain creates a plain printer writing to out.
func NewPlain(out io.Writer) *Plain {
	return &Plain{out: out}
}

func (p *Plain) Println(a ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, a...)
}

func (p *Plain) Printf(format string, a ...any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.out, format+"\n", a...)
}

func (p *Plain) PrintChat(text string)    { p.Println("  " + text) }
func (p *Plain) PrintHeading(text string) { p.Println("  " + text) }
func (p *Plain) PrintEntry(text string)   { p.Println("    " + text) }
func (p *Plain) PrintHint(text string)    { p.Println("  " + text) }
func (p *Plain) PrintUrgent(text string)  { p.Println("  " + text) }

// PrintTable writes a rendered table as is.
func (p *Plain) PrintTable(rendered string) {
	p.Println(strings.TrimRight(rendered, "\n"))
}

// Lines reads r line by line and delivers each line, newline stripped, on
// the returned channel. The channel is closed at EOF, on a read error, or
// when ctx is cancelled.
func Lines(ctx context.Context, r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case ch <- strings.TrimRight(sc.Text(), "\r"):
			case <-ctx.Done():
				return
			}
		}
	}()
	return ch
}
