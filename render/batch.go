package render

import (
	"glbatch/gpu"
	"glbatch/shader"
)

// Entry pairs one command with the uniform projection applied immediately
// before its draw. A nil Update skips uniform writes for that command.
type Entry[I any, P Drawable] struct {
	Update func(I) shader.UpdateSet
	Cmd    Cmd[P]
}

// SPBatch is a shader-program batch: every contained command executes under
// the one bound program, in declared order.
type SPBatch[I any, P Drawable] struct {
	prog    *shader.Program[I]
	entries []Entry[I, P]
}

// NewSPBatch groups entries under prog.
func NewSPBatch[I any, P Drawable](prog *shader.Program[I], entries ...Entry[I, P]) SPBatch[I, P] {
	return SPBatch[I, P]{prog: prog, entries: entries}
}

// AnySPBatch is a program batch with its payload and interface types
// erased, so one framebuffer batch can hold a heterogeneous sequence.
type AnySPBatch interface {
	run(q *Queue, st *pipelineState) error
}

func (b SPBatch[I, P]) run(q *Queue, st *pipelineState) error {
	b.prog.Object().Bind()
	for _, e := range b.entries {
		st.apply(q.f, e.Cmd.Blending, e.Cmd.DepthTest)
		if e.Update != nil {
			if err := b.prog.Update(e.Update); err != nil {
				return err
			}
		}
		e.Cmd.Payload.Draw(q.f)
	}
	return nil
}

// FBBatch is a framebuffer batch: every contained program batch renders
// into the one target framebuffer, in declared order.
type FBBatch struct {
	fb      *gpu.Framebuffer
	batches []AnySPBatch
}

// NewFBBatch groups program batches under their target framebuffer.
func NewFBBatch(fb *gpu.Framebuffer, batches ...AnySPBatch) FBBatch {
	return FBBatch{fb: fb, batches: batches}
}
