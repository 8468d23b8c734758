// Command demo renders every mesh primitive of a glTF file with a simple
// normal-shaded program, spinning the model in front of a fixed camera.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"glbatch/core"
	"glbatch/geometry"
	"glbatch/glx"
	"glbatch/gpu"
	meshio "glbatch/io"
	"glbatch/render"
	"glbatch/resource"
	"glbatch/shader"
)

const vertSrc = `#version 450 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;
layout (location = 2) in vec2 aUV;

uniform mat4 uMVP;
uniform mat4 uModel;

out vec3 vNormal;

void main() {
    vNormal = mat3(uModel) * aNormal;
    gl_Position = uMVP * vec4(aPos, 1.0);
}
`

const fragSrc = `#version 450 core

uniform vec3 uLightDir;

in vec3 vNormal;
out vec4 fragColor;

void main() {
    float diffuse = max(dot(normalize(vNormal), -uLightDir), 0.0);
    vec3 base = vec3(0.7, 0.72, 0.75);
    fragColor = vec4(base * (0.15 + 0.85 * diffuse), 1.0);
}
`

// meshUniforms is the demo program's uniform interface.
type meshUniforms struct {
	mvp      shader.Uniform[mgl32.Mat4]
	model    shader.Uniform[mgl32.Mat4]
	lightDir shader.Uniform[mgl32.Vec3]
}

func main() {
	debug := flag.Bool("debug", false, "enable per-operation GL error checks")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [-debug] model.gltf\n", os.Args[0])
		os.Exit(2)
	}
	glx.SetDebugChecks(*debug)

	meshes, err := meshio.LoadMeshes(flag.Arg(0))
	if err != nil {
		log.Fatalf("load: %v", err)
	}
	log.Printf("loaded %d mesh primitives from %s", len(meshes), flag.Arg(0))

	config := core.DefaultWindowConfig()
	config.Title = "glbatch demo"
	window, err := core.NewWindow(config)
	if err != nil {
		log.Fatalf("window: %v", err)
	}
	defer window.Destroy()

	funcs, err := glx.Load()
	if err != nil {
		log.Fatalf("opengl: %v", err)
	}

	if err := run(window, funcs, meshes); err != nil {
		log.Fatalf("render: %v", err)
	}
}

func run(window *core.Window, funcs glx.Funcs, meshes []meshio.Mesh) error {
	return resource.With(func(sc *resource.Scope) error {
		driver := shader.NewGL45(funcs)
		vert, err := shader.NewStage(sc, driver, shader.Vertex, vertSrc)
		if err != nil {
			return err
		}
		frag, err := shader.NewStage(sc, driver, shader.Fragment, fragSrc)
		if err != nil {
			return err
		}
		prog, err := shader.NewProgram(sc, driver, []shader.Stage{vert, frag},
			func(lk shader.Lookup) (meshUniforms, error) {
				mvp, err := shader.GetUniform[mgl32.Mat4](lk, "uMVP")
				if err != nil {
					return meshUniforms{}, err
				}
				model, err := shader.GetUniform[mgl32.Mat4](lk, "uModel")
				if err != nil {
					return meshUniforms{}, err
				}
				lightDir, err := shader.GetUniform[mgl32.Vec3](lk, "uLightDir")
				if err != nil {
					return meshUniforms{}, err
				}
				return meshUniforms{mvp: mvp, model: model, lightDir: lightDir}, nil
			})
		if err != nil {
			return err
		}

		geoms := make([]*geometry.Geometry, 0, len(meshes))
		for _, m := range meshes {
			g, err := m.Upload(sc, funcs)
			if err != nil {
				return fmt.Errorf("mesh %s: %w", m.Name, err)
			}
			geoms = append(geoms, g)
		}

		queue := render.NewQueue(funcs)
		screen := gpu.DefaultFramebuffer(funcs)
		projection := mgl32.Perspective(mgl32.DegToRad(60), 16.0/9.0, 0.1, 100)
		view := mgl32.LookAtV(mgl32.Vec3{0, 1, 3}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
		light := mgl32.Vec3{0.4, -1, -0.3}.Normalize()

		angle := float32(0)
		for !window.ShouldClose() {
			window.PollEvents()
			angle += 0.008

			model := mgl32.HomogRotate3DY(angle)
			mvp := projection.Mul4(view).Mul4(model)

			entries := make([]render.Entry[meshUniforms, *geometry.Geometry], 0, len(geoms))
			for _, g := range geoms {
				entries = append(entries, render.Entry[meshUniforms, *geometry.Geometry]{
					Update: func(u meshUniforms) shader.UpdateSet {
						return shader.Merge(
							u.mvp.Update(mvp),
							u.model.Update(model),
							u.lightDir.Update(light),
						)
					},
					Cmd: render.StdCmd(g),
				})
			}
			batch := render.NewFBBatch(screen, render.NewSPBatch(prog, entries...))

			w, h := window.GetFramebufferSize()
			queue.Viewport(0, 0, w, h)
			if err := queue.Clear(0.08, 0.09, 0.1, 1); err != nil {
				return err
			}
			if err := queue.Draw(batch); err != nil {
				return err
			}
			window.SwapBuffers()
		}
		return nil
	})
}
