package render

import "glbatch/glx"

// Queue is the execution context draws are issued from. It assumes the
// single-threaded GL model: one queue, one current context, commands
// submitted synchronously in call order.
type Queue struct {
	f glx.Funcs
}

// NewQueue builds a queue over a command table. The calling goroutine must
// hold the current GL context.
func NewQueue(f glx.Funcs) *Queue {
	return &Queue{f: f}
}

// Viewport sets the viewport transform.
func (q *Queue) Viewport(x, y, width, height int) {
	q.f.Viewport(int32(x), int32(y), int32(width), int32(height))
}

// Clear clears the bound framebuffer's color and depth. With debug checks
// enabled the driver error flag is polled afterwards; otherwise the returned
// error is always nil.
func (q *Queue) Clear(r, g, b, a float32) error {
	return glx.DebugCheck(q.f, "clear", func() {
		q.f.ClearColor(r, g, b, a)
		q.f.Clear(glx.COLOR_BUFFER_BIT | glx.DEPTH_BUFFER_BIT)
	})
}

// Draw executes a framebuffer batch: the framebuffer is bound once, each
// program batch binds its program once, and commands run strictly in
// declared order at every level. No reordering happens here; callers
// pre-sort batches to minimize state changes, and Draw only skips
// re-applying pipeline state identical to the immediately preceding
// command's. With debug checks enabled the driver error flag is polled once
// after the batch has executed.
func (q *Queue) Draw(b FBBatch) error {
	var err error
	checkErr := glx.DebugCheck(q.f, "draw", func() {
		q.f.BindFramebuffer(glx.FRAMEBUFFER, b.fb.Name())
		var st pipelineState
		for _, sp := range b.batches {
			if err = sp.run(q, &st); err != nil {
				return
			}
		}
	})
	if err != nil {
		return err
	}
	return checkErr
}

// pipelineState tracks the blend/depth state applied by the previous
// command of the current traversal, across program batch boundaries.
type pipelineState struct {
	valid     bool
	blending  Blending
	depthTest bool
}

func (st *pipelineState) apply(f glx.Funcs, b Blending, depthTest bool) {
	if !st.valid || st.blending != b {
		if b.Enabled {
			f.Enable(glx.BLEND)
			f.BlendFunc(b.Src, b.Dst)
		} else {
			f.Disable(glx.BLEND)
		}
		st.blending = b
	}
	if !st.valid || st.depthTest != depthTest {
		if depthTest {
			f.Enable(glx.DEPTH_TEST)
		} else {
			f.Disable(glx.DEPTH_TEST)
		}
		st.depthTest = depthTest
	}
	st.valid = true
}
