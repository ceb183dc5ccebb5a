// Package chime plays the short cue heard when a quiz result appears.
package chime

import (
	"context"
	"fmt"
	"io"
	"time"
)

// Chimer plays a chime. Implementations must be safe to call from a
// tea.Cmd goroutine.
type Chimer interface {
	Play(ctx context.Context) error
}

const (
	bellBeats = 3
	bellGap   = 120 * time.Millisecond
	bellChar  = "\a"
)

// Bell rings the terminal bell a few times by writing BEL to W.
type Bell struct {
	W   io.Writer
	Gap time.Duration
}

// NewBell creates a Bell writing to w with the default pause between beats.
func NewBell(w io.Writer) *Bell {
	return &Bell{W: w, Gap: bellGap}
}

func (b *Bell) Play(ctx context.Context) error {
	for i := 0; i < bellBeats; i++ {
		if i > 0 && b.Gap > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(b.Gap):
			}
		}
		if _, err := io.WriteString(b.W, bellChar); err != nil {
			return fmt.Errorf("ring bell: %w", err)
		}
	}
	return nil
}

// Nop is a Chimer that does nothing.
type Nop struct{}

func (Nop) Play(context.Context) error { return nil }
