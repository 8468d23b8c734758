package gpu_test

import (
	"testing"

	"glbatch/glx"
	"glbatch/gpu"
	"glbatch/internal/glxtest"
	"glbatch/resource"
)

func TestBufferRegionRoundTrip(t *testing.T) {
	f := glxtest.New()
	err := resource.With(func(sc *resource.Scope) error {
		buf := gpu.NewBuffer[float32](sc, f, 8)
		if buf.Len() != 8 {
			t.Errorf("Len = %d, want 8", buf.Len())
		}

		gpu.Write(gpu.Whole[gpu.RW](buf), []float32{1, 2, 3, 4, 5, 6, 7, 8})

		out := make([]float32, 8)
		gpu.Read(gpu.Whole[gpu.R](buf), out)
		for i, v := range out {
			if v != float32(i+1) {
				t.Errorf("out[%d] = %g, want %d", i, v, i+1)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSubRegionOffsets(t *testing.T) {
	f := glxtest.New()
	err := resource.With(func(sc *resource.Scope) error {
		buf := gpu.NewBuffer[uint32](sc, f, 16)

		gpu.Write(gpu.View[gpu.W](buf, 4, 2), []uint32{10, 11})

		out := make([]uint32, 2)
		gpu.Read(gpu.View[gpu.R](buf, 4, 2), out)
		if out[0] != 10 || out[1] != 11 {
			t.Errorf("read back %v, want [10 11]", out)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Element offset 4 of uint32 is byte offset 16.
	if n := f.Count("NamedBufferSubData(1, 16, 8)"); n != 1 {
		t.Errorf("expected one sub-write at byte offset 16, calls: %v", f.Calls)
	}
}

func TestBufferFromDataSingleBulkWrite(t *testing.T) {
	f := glxtest.New()
	err := resource.With(func(sc *resource.Scope) error {
		gpu.NewBufferFrom(sc, f, []float32{1, 2, 3})
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := f.Count("NamedBufferSubData"); n != 1 {
		t.Errorf("expected a single bulk write, got %d", n)
	}
}

func TestTextureCreationConfiguresStorageAndSampling(t *testing.T) {
	f := glxtest.New()
	err := resource.With(func(sc *resource.Scope) error {
		smp := gpu.Sampling{
			WrapS:     gpu.Repeat,
			WrapT:     gpu.ClampToEdge,
			MinFilter: gpu.Linear,
			MagFilter: gpu.Nearest,
		}
		tex := gpu.NewTexture2D[gpu.PixelRGBA8, gpu.RGBA8N](sc, f, 64, 32, 4, smp)
		if tex.Width() != 64 || tex.Height() != 32 || tex.Levels() != 4 {
			t.Errorf("metadata = %dx%d levels %d", tex.Width(), tex.Height(), tex.Levels())
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := f.Count("TextureStorage2D(1, 4, 0x8058, 64, 32)"); n != 1 {
		t.Errorf("expected immutable RGBA8 storage, calls: %v", f.Calls)
	}
	// Wrap and filter parameters land at creation, atomically with storage.
	if n := f.Count("TextureParameteri"); n != 4 {
		t.Errorf("expected 4 sampling parameters, got %d", n)
	}
	if n := f.Count("DeleteTexture(1)"); n != 1 {
		t.Errorf("texture must be deleted with the scope, got %d deletions", n)
	}
}

// Format[P] only admits a format paired with its own host pixel type;
// these instantiations are the compile-time contract the texture API rests
// on. A mismatched pairing such as Texture2D[float64, RGBA8N] does not
// compile.
func TestFormatsPairWithTheirHostPixelTypes(t *testing.T) {
	f := glxtest.New()
	err := resource.With(func(sc *resource.Scope) error {
		tex := gpu.NewTexture2D[gpu.PixelRGBAF, gpu.RGBA32F](sc, f, 2, 2, 1, gpu.DefaultSampling())
		tex.UploadWhole(make([]gpu.PixelRGBAF, 4))

		gpu.NewTexture2D[float32, gpu.Depth32F](sc, f, 2, 2, 1, gpu.DefaultSampling())
		gpu.NewTexture2D[gpu.PixelRGB8, gpu.RGB8N](sc, f, 2, 2, 1, gpu.DefaultSampling())
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := f.Count("TextureStorage2D(1, 1, 0x8814, 2, 2)"); n != 1 {
		t.Errorf("expected RGBA32F storage, calls: %v", f.Calls)
	}
	if n := f.Count("TextureSubImage2D(1, 0, 0, 0, 2, 2)"); n != 1 {
		t.Errorf("float pixel upload missing, calls: %v", f.Calls)
	}
}

func TestTextureUploadAndFill(t *testing.T) {
	f := glxtest.New()
	err := resource.With(func(sc *resource.Scope) error {
		tex := gpu.NewTexture2D[gpu.PixelR8, gpu.R8N](sc, f, 4, 4, 2, gpu.DefaultSampling())

		pixels := make([]uint8, 16)
		tex.UploadWhole(pixels)
		tex.UploadSub(1, 1, 2, 2, pixels[:4])
		tex.FillSub(0, 0, 4, 1, 0xff)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := f.Count("TextureSubImage2D(1, 0, 0, 0, 4, 4)"); n != 1 {
		t.Errorf("whole upload missing, calls: %v", f.Calls)
	}
	if n := f.Count("GenerateTextureMipmap"); n != 1 {
		t.Error("whole upload of a mipped texture must regenerate mips")
	}
	if n := f.Count("TextureSubImage2D(1, 0, 1, 1, 2, 2)"); n != 1 {
		t.Errorf("sub upload missing, calls: %v", f.Calls)
	}
	if n := f.Count("ClearTexSubImage(1, 0, 0, 0, 4, 1)"); n != 1 {
		t.Errorf("fill missing, calls: %v", f.Calls)
	}
}

func TestDepthComparisonSampler(t *testing.T) {
	f := glxtest.New()
	err := resource.With(func(sc *resource.Scope) error {
		smp := gpu.DefaultSampling()
		smp.Compare = gpu.CompareLessEqual
		s := gpu.NewSampler(sc, f, smp)
		s.Bind(3)
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Wrap, filter, compare mode and compare func.
	if n := f.Count("SamplerParameteri"); n != 6 {
		t.Errorf("expected 6 sampler parameters, got %d", n)
	}
	if n := f.Count("BindSampler(3, 1)"); n != 1 {
		t.Errorf("sampler bind missing, calls: %v", f.Calls)
	}
	if n := f.Count("DeleteSampler(1)"); n != 1 {
		t.Error("sampler must be deleted with the scope")
	}
}

func TestFramebufferAttachAndComplete(t *testing.T) {
	f := glxtest.New()
	err := resource.With(func(sc *resource.Scope) error {
		color := gpu.NewTexture2D[gpu.PixelRGBA8, gpu.RGBA8N](sc, f, 128, 128, 1, gpu.DefaultSampling())
		depth := gpu.NewRenderbuffer(sc, f, glx.DEPTH_COMPONENT32F, 128, 128)

		fb := gpu.NewFramebuffer(sc, f)
		fb.AttachColor(0, color)
		fb.AttachDepth(depth)
		return fb.Complete()
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n := f.Count("NamedFramebufferTexture"); n != 1 {
		t.Error("color texture attachment missing")
	}
	if n := f.Count("NamedFramebufferRenderbuffer"); n != 1 {
		t.Error("depth renderbuffer attachment missing")
	}
}

func TestFramebufferIncomplete(t *testing.T) {
	f := glxtest.New()
	f.FramebufferStatus = 0x8CD6 // incomplete attachment
	err := resource.With(func(sc *resource.Scope) error {
		return gpu.NewFramebuffer(sc, f).Complete()
	})
	if err == nil {
		t.Fatal("expected completeness error")
	}
}

func TestDefaultFramebufferIsNameZero(t *testing.T) {
	f := glxtest.New()
	if name := gpu.DefaultFramebuffer(f).Name(); name != 0 {
		t.Errorf("default framebuffer name = %d, want 0", name)
	}
}
