package shader_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"glbatch/internal/glxtest"
	"glbatch/resource"
	"glbatch/shader"
)

// noTessDriver is a backend without tessellation stages.
type noTessDriver struct {
	shader.GL45
}

func (noTessDriver) SupportsStage(k shader.StageKind) bool {
	return k == shader.Vertex || k == shader.Fragment
}

func newScope(t *testing.T) *resource.Scope {
	t.Helper()
	sc := &resource.Scope{}
	t.Cleanup(func() {
		if err := sc.ReleaseAll(); err != nil {
			t.Errorf("release: %v", err)
		}
	})
	return sc
}

func linkProgram(t *testing.T, sc *resource.Scope, f *glxtest.Fake, locs map[string]int32) shader.Lookup {
	t.Helper()
	f.UniformLocs = locs
	d := shader.NewGL45(f)
	vert, err := shader.NewStage(sc, d, shader.Vertex, "void main() {}")
	if err != nil {
		t.Fatalf("vertex stage: %v", err)
	}
	frag, err := shader.NewStage(sc, d, shader.Fragment, "void main() {}")
	if err != nil {
		t.Fatalf("fragment stage: %v", err)
	}
	var lookup shader.Lookup
	_, err = shader.NewProgram(sc, d, []shader.Stage{vert, frag},
		func(lk shader.Lookup) (struct{}, error) {
			lookup = lk
			return struct{}{}, nil
		})
	if err != nil {
		t.Fatalf("program: %v", err)
	}
	return lookup
}

func TestUnsupportedStage(t *testing.T) {
	f := glxtest.New()
	sc := newScope(t)
	d := noTessDriver{shader.NewGL45(f)}

	_, err := shader.NewStage(sc, d, shader.TessControl, "")
	var unsupported *shader.UnsupportedStageError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedStageError, got %v", err)
	}
	if unsupported.Kind != shader.TessControl {
		t.Errorf("error names kind %v, want %v", unsupported.Kind, shader.TessControl)
	}
	if n := f.Count("CreateShader"); n != 0 {
		t.Error("unsupported stage must be rejected before any GL call")
	}
}

func TestCompileErrorCarriesLog(t *testing.T) {
	f := glxtest.New()
	f.CompileFail = true
	f.Log = "0:1: syntax error"
	sc := newScope(t)

	_, err := shader.NewStage(sc, shader.NewGL45(f), shader.Vertex, "garbage")
	var compile *shader.CompileError
	if !errors.As(err, &compile) {
		t.Fatalf("expected CompileError, got %v", err)
	}
	if compile.Log != "0:1: syntax error" {
		t.Errorf("log = %q", compile.Log)
	}
	if n := f.Count("DeleteShader"); n != 1 {
		t.Error("failed stage must be deleted immediately")
	}
}

func TestLinkErrorCarriesLog(t *testing.T) {
	f := glxtest.New()
	f.LinkFail = true
	f.Log = "unresolved varying"
	sc := newScope(t)
	d := shader.NewGL45(f)

	vert, err := shader.NewStage(sc, d, shader.Vertex, "void main() {}")
	if err != nil {
		t.Fatalf("stage: %v", err)
	}
	_, err = shader.NewProgram(sc, d, []shader.Stage{vert},
		func(shader.Lookup) (struct{}, error) { return struct{}{}, nil })
	var link *shader.LinkError
	if !errors.As(err, &link) {
		t.Fatalf("expected LinkError, got %v", err)
	}
	if link.Log != "unresolved varying" {
		t.Errorf("log = %q", link.Log)
	}
}

func TestInactiveUniform(t *testing.T) {
	f := glxtest.New()
	sc := newScope(t)
	lk := linkProgram(t, sc, f, map[string]int32{"uColor": 3})

	_, err := shader.GetUniform[mgl32.Vec4](lk, "uMissing")
	var inactive *shader.InactiveUniformError
	if !errors.As(err, &inactive) {
		t.Fatalf("expected InactiveUniformError, got %v", err)
	}
	if inactive.Name != "uMissing" {
		t.Errorf("error names %q", inactive.Name)
	}

	// The program stays usable for the uniforms it does expose.
	color, err := shader.GetUniform[mgl32.Vec4](lk, "uColor")
	if err != nil {
		t.Fatalf("uColor lookup after failed lookup: %v", err)
	}
	if err := color.Update(mgl32.Vec4{1, 0, 0, 1}).Apply(); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if n := f.Count("ProgramUniform4fv"); n != 1 {
		t.Errorf("expected one vec4 write, calls: %v", f.Calls)
	}
}

func TestMergeDisjointIsOrderIndependent(t *testing.T) {
	f := glxtest.New()
	sc := newScope(t)
	lk := linkProgram(t, sc, f, map[string]int32{"a": 0, "b": 1, "c": 2})

	a, _ := shader.GetUniform[float32](lk, "a")
	b, _ := shader.GetUniform[float32](lk, "b")
	c, _ := shader.GetUniform[float32](lk, "c")

	run := func(sets ...shader.UpdateSet) []string {
		f.Calls = nil
		for _, s := range sets {
			if err := s.Apply(); err != nil {
				t.Fatalf("apply: %v", err)
			}
		}
		calls := append([]string(nil), f.Calls...)
		sort.Strings(calls)
		return calls
	}

	left := run(shader.Merge(a.Update(1), b.Update(2)), c.Update(3))
	right := run(a.Update(1), shader.Merge(b.Update(2), c.Update(3)))

	if len(left) != 3 || len(left) != len(right) {
		t.Fatalf("write counts differ: %v vs %v", left, right)
	}
	for i := range left {
		if left[i] != right[i] {
			t.Errorf("resulting uniform state differs: %v vs %v", left, right)
		}
	}
}

func TestMergeDetectsCollision(t *testing.T) {
	f := glxtest.New()
	sc := newScope(t)
	lk := linkProgram(t, sc, f, map[string]int32{"a": 0})

	a, _ := shader.GetUniform[float32](lk, "a")
	f.Calls = nil
	err := shader.Merge(a.Update(1), a.Update(2)).Apply()
	if err == nil {
		t.Fatal("expected collision error")
	}
	if n := f.Count("ProgramUniform1f"); n != 0 {
		t.Error("no writes may be issued for a colliding set")
	}
}

func TestDivideSplitsAcrossUniforms(t *testing.T) {
	f := glxtest.New()
	sc := newScope(t)
	lk := linkProgram(t, sc, f, map[string]int32{"mvp": 0, "tint": 1})

	mvp, _ := shader.GetUniform[mgl32.Mat4](lk, "mvp")
	tint, _ := shader.GetUniform[mgl32.Vec4](lk, "tint")

	type material struct {
		transform mgl32.Mat4
		color     mgl32.Vec4
	}
	u := shader.Divide(
		func(m material) (mgl32.Mat4, mgl32.Vec4) { return m.transform, m.color },
		mvp, tint,
	)

	f.Calls = nil
	set := u.Update(material{transform: mgl32.Ident4(), color: mgl32.Vec4{0, 1, 0, 1}})
	if set.Len() != 2 {
		t.Errorf("set carries %d writes, want 2", set.Len())
	}
	if err := set.Apply(); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if f.Count("ProgramUniformMatrix4fv") != 1 || f.Count("ProgramUniform4fv") != 1 {
		t.Errorf("expected one matrix and one vec4 write, calls: %v", f.Calls)
	}
}

func TestDivideCollisionSurfacesAtApply(t *testing.T) {
	f := glxtest.New()
	sc := newScope(t)
	lk := linkProgram(t, sc, f, map[string]int32{"a": 0})

	a, _ := shader.GetUniform[float32](lk, "a")
	u := shader.Divide(
		func(v float32) (float32, float32) { return v, v * 2 },
		a, a,
	)
	if err := u.Update(1).Apply(); err == nil {
		t.Fatal("expected collision from both sides targeting one uniform")
	}
}

func TestContramapAndConquer(t *testing.T) {
	f := glxtest.New()
	sc := newScope(t)
	lk := linkProgram(t, sc, f, map[string]int32{"scale": 4})

	scale, _ := shader.GetUniform[float32](lk, "scale")
	u := shader.Contramap(func(percent int) float32 { return float32(percent) / 100 }, scale)

	f.Calls = nil
	if err := u.Update(50).Apply(); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if n := f.Count("ProgramUniform1f"); n != 1 {
		t.Errorf("expected one float write, calls: %v", f.Calls)
	}

	empty := shader.Conquer[int]().Update(5)
	if empty.Len() != 0 {
		t.Errorf("Conquer produced %d writes", empty.Len())
	}
	if err := empty.Apply(); err != nil {
		t.Errorf("empty set apply: %v", err)
	}
}

func TestSemanticAddressingBypassesLookup(t *testing.T) {
	f := glxtest.New()
	sc := newScope(t)
	lk := linkProgram(t, sc, f, nil)

	u := shader.GetUniformAt[int32](lk, 7)
	if u.Location() != 7 {
		t.Errorf("location = %d, want 7", u.Location())
	}
	f.Calls = nil
	if err := u.Update(42).Apply(); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if n := f.Count("ProgramUniform1i"); n != 1 {
		t.Errorf("expected one int write, calls: %v", f.Calls)
	}
}

func TestProgramReleasedWithScope(t *testing.T) {
	f := glxtest.New()
	sc := &resource.Scope{}
	d := shader.NewGL45(f)
	vert, err := shader.NewStage(sc, d, shader.Vertex, "void main() {}")
	if err != nil {
		t.Fatalf("vertex stage: %v", err)
	}
	frag, err := shader.NewStage(sc, d, shader.Fragment, "void main() {}")
	if err != nil {
		t.Fatalf("fragment stage: %v", err)
	}
	_, err = shader.NewProgram(sc, d, []shader.Stage{vert, frag},
		func(shader.Lookup) (struct{}, error) { return struct{}{}, nil })
	if err != nil {
		t.Fatalf("program: %v", err)
	}
	if err := sc.ReleaseAll(); err != nil {
		t.Fatalf("release: %v", err)
	}
	if f.Count("DeleteProgram") != 1 {
		t.Error("program must be deleted exactly once on scope exit")
	}
	if f.Count("DeleteShader") != 2 {
		t.Errorf("both stages must be deleted, got %d", f.Count("DeleteShader"))
	}
}
