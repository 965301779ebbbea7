package t2048

import "time"

// TileView is an immutable snapshot of a tile.
type TileView struct {
	ID    int
	Value int
	Row   int
	Col   int
	X     float64
	Y     float64
}

// Frame is what the rendering collaborator observes once per tick.
type Frame struct {
	Tick       uint64
	Rows       int
	Cols       int
	CellWidth  float64
	CellHeight float64
	Tiles      []TileView // Row-major order
}

// Renderer consumes one frame per animation tick.
type Renderer interface {
	RenderFrame(f Frame)
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(f Frame)

// RenderFrame calls fn(f).
func (fn RendererFunc) RenderFrame(f Frame) {
	fn(f)
}

// Pacer is the per-tick yield point of the slide engine.
type Pacer interface {
	Wait()
}

// NoPacer never blocks.
type NoPacer struct{}

// Wait returns immediately.
func (NoPacer) Wait() {}

// TickerPacer blocks until the next tick of a fixed-rate ticker.
type TickerPacer struct {
	ticker *time.Ticker
}

// NewTickerPacer creates a pacer running at rate ticks per second.
func NewTickerPacer(rate int) *TickerPacer {
	if rate <= 0 {
		rate = 60
	}
	return &TickerPacer{ticker: time.NewTicker(time.Second / time.Duration(rate))}
}

// Wait blocks until the next tick.
func (p *TickerPacer) Wait() {
	<-p.ticker.C
}

// Stop releases the underlying ticker.
func (p *TickerPacer) Stop() {
	p.ticker.Stop()
}

// FrameRecorder buffers frames so they can be replayed at a later pace.
type FrameRecorder struct {
	frames []Frame
}

// RenderFrame appends the frame to the buffer.
func (r *FrameRecorder) RenderFrame(f Frame) {
	r.frames = append(r.frames, f)
}

// Drain returns buffered frames and empties the buffer.
func (r *FrameRecorder) Drain() []Frame {
	frames := r.frames
	r.frames = nil
	return frames
}

// Source supplies the randomness used for spawning.
// *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
	Float64() float64
}
