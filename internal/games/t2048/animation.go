package t2048

// The engine simulates a whole move synchronously and emits one frame per
// tick into a FrameRecorder. The game then shows one recorded frame per
// platform tick, so every intermediate state is rendered at the tick rate.

// startPlayback queues the frames of a finished move.
// The board after spawning is appended so the new tile appears last.
func (g *Game) startPlayback(frames []Frame) {
	final := g.engine.Board().Frame(g.engine.Tick())
	g.playback = append(frames, final)
	g.advancePlayback()
}

// advancePlayback shows the next queued frame.
// Returns false if nothing was queued.
func (g *Game) advancePlayback() bool {
	if len(g.playback) == 0 {
		return false
	}
	g.frame = g.playback[0]
	g.playback = g.playback[1:]
	return true
}

// Animating reports whether recorded frames are still waiting to be shown.
func (g *Game) Animating() bool {
	return len(g.playback) > 0
}

// SkipAnimation jumps to the final frame of the current move.
func (g *Game) SkipAnimation() {
	if n := len(g.playback); n > 0 {
		g.frame = g.playback[n-1]
		g.playback = nil
	}
}

// CurrentFrame returns the frame on screen.
func (g *Game) CurrentFrame() Frame {
	return g.frame
}
