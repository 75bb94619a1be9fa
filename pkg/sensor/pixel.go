package sensor

import (
	"sync"

	"github.com/kavanaugh-render/pathtracer/pkg/pathmath"
)

// Pixel is a fixed (i,j) coordinate with a synchronized color accumulator.
// The static partition performed by the dispatcher means the lock is
// uncontended by construction: each pixel is written by exactly one
// worker for the lifetime of a render. The lock still exists so the
// sensor stays safely readable by a concurrent monitor/preview consumer,
// following the teacher's own note that PixelStats could be guarded this
// way if exposed mid-render.
type Pixel struct {
	I, J int

	mu    sync.Mutex
	color pathmath.Color
}

// Set overwrites the pixel's accumulated color.
func (p *Pixel) Set(c pathmath.Color) {
	p.mu.Lock()
	p.color = c
	p.mu.Unlock()
}

// Color returns the pixel's current accumulated color.
func (p *Pixel) Color() pathmath.Color {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.color
}
