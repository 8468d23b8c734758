package gpu

import (
	"fmt"

	"glbatch/glx"
	"glbatch/resource"
)

// Renderbuffer is a render-target-only image, usable as a framebuffer
// attachment when the contents never need sampling.
type Renderbuffer struct {
	name   uint32
	width  int
	height int
}

// NewRenderbuffer allocates renderbuffer storage with the given internal
// format, e.g. glx.DEPTH_COMPONENT32F.
func NewRenderbuffer(sc *resource.Scope, f glx.Funcs, internalFormat glx.Enum, width, height int) *Renderbuffer {
	return resource.Acquire(sc, func() (*Renderbuffer, func() error) {
		name := f.CreateRenderbuffer()
		f.NamedRenderbufferStorage(name, internalFormat, int32(width), int32(height))
		rb := &Renderbuffer{name: name, width: width, height: height}
		return rb, func() error {
			f.DeleteRenderbuffer(name)
			return nil
		}
	})
}

// Name returns the raw GL renderbuffer name.
func (rb *Renderbuffer) Name() uint32 { return rb.name }

// Width returns the storage width in pixels.
func (rb *Renderbuffer) Width() int { return rb.width }

// Height returns the storage height in pixels.
func (rb *Renderbuffer) Height() int { return rb.height }

func (rb *Renderbuffer) attach(f glx.Funcs, fb uint32, point glx.Enum) {
	f.NamedFramebufferRenderbuffer(fb, point, rb.name)
}

// Attachable is anything that can back a framebuffer attachment point:
// textures and renderbuffers.
type Attachable interface {
	attach(f glx.Funcs, fb uint32, point glx.Enum)
}

// Framebuffer is a render target: a set of attached images programs render
// into. The zero-named default framebuffer is the window surface.
type Framebuffer struct {
	f    glx.Funcs
	name uint32
}

// DefaultFramebuffer wraps the window-system-provided framebuffer (name 0).
// It owns no GPU object and needs no scope.
func DefaultFramebuffer(f glx.Funcs) *Framebuffer {
	return &Framebuffer{f: f}
}

// NewFramebuffer allocates an offscreen framebuffer with no attachments.
// Attach images with AttachColor/AttachDepth, then verify with Complete.
func NewFramebuffer(sc *resource.Scope, f glx.Funcs) *Framebuffer {
	return resource.Acquire(sc, func() (*Framebuffer, func() error) {
		name := f.CreateFramebuffer()
		fb := &Framebuffer{f: f, name: name}
		return fb, func() error {
			f.DeleteFramebuffer(name)
			return nil
		}
	})
}

// Name returns the raw GL framebuffer name; 0 is the default framebuffer.
func (fb *Framebuffer) Name() uint32 { return fb.name }

// AttachColor attaches a to color attachment point index.
func (fb *Framebuffer) AttachColor(index uint32, a Attachable) {
	a.attach(fb.f, fb.name, glx.COLOR_ATTACHMENT0+glx.Enum(index))
}

// AttachDepth attaches a as the depth attachment.
func (fb *Framebuffer) AttachDepth(a Attachable) {
	a.attach(fb.f, fb.name, glx.DEPTH_ATTACHMENT)
}

// Complete checks framebuffer completeness after attachment.
func (fb *Framebuffer) Complete() error {
	if status := fb.f.CheckNamedFramebufferStatus(fb.name, glx.FRAMEBUFFER); status != glx.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("framebuffer %d incomplete: status 0x%04x", fb.name, status)
	}
	return nil
}
