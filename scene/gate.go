package scene

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
)

// ErrGateOverflow is returned when more assets resolve than the gate expects.
var ErrGateOverflow = errors.New("asset gate resolved more assets than expected")

// AssetGate closes once a known number of assets have resolved.
type AssetGate struct {
	mu        sync.Mutex
	total     int
	remaining int
	done      chan struct{}
}

// NewAssetGate creates an instance of an AssetGate expecting total assets.
// A gate with nothing to wait for is already closed.
func NewAssetGate(total int) *AssetGate {
	g := new(AssetGate)
	g.total = total
	g.remaining = total
	g.done = make(chan struct{})
	if total <= 0 {
		g.remaining = 0
		close(g.done)
	}
	return g
}

// Resolve marks one asset as available.
func (g *AssetGate) Resolve(name string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.remaining == 0 {
		return fmt.Errorf("%w: %s", ErrGateOverflow, name)
	}
	g.remaining--
	log.Printf("Loaded %s (%d/%d)", name, g.total-g.remaining, g.total)
	if g.remaining == 0 {
		close(g.done)
	}
	return nil
}

// Remaining is the number of assets still outstanding.
func (g *AssetGate) Remaining() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.remaining
}

// Done is closed when every asset has resolved.
func (g *AssetGate) Done() <-chan struct{} {
	return g.done
}

// Wait blocks until the gate closes or ctx is cancelled.
func (g *AssetGate) Wait(ctx context.Context) error {
	select {
	case <-g.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
