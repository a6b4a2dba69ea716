// raster3d - Terminal CPU rasterizer viewer.
// View OBJ and GLB meshes rendered by the software transform-clip-
// rasterize pipeline, presented in a terminal with half-block characters.
//
// Controls:
//
//	Mouse drag  - Orbit camera
//	Scroll      - Zoom in/out
//	W/S/A/D     - Orbit pitch/yaw
//	Space       - Apply random orbit impulse
//	R           - Reset camera
//	+/-         - Adjust zoom
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/kvraster/raster3d/pkg/gltffile"
	"github.com/kvraster/raster3d/pkg/objfile"
	"github.com/kvraster/raster3d/pkg/render"
	"github.com/kvraster/raster3d/pkg/scene"
)

var (
	texturePath = flag.String("texture", "", "Path to texture image (PNG/JPG)")
	targetFPS   = flag.Int("fps", 60, "Target FPS")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "raster3d - terminal CPU rasterizer viewer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: raster3d [options] <model.obj|model.glb>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Mouse drag  - Orbit camera\n")
		fmt.Fprintf(os.Stderr, "  Scroll      - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  W/S/A/D     - Orbit pitch/yaw\n")
		fmt.Fprintf(os.Stderr, "  Space       - Random orbit impulse\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset camera\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// orbitAxis tracks one angular degree of freedom with harmonica spring
// decay: an impulse sets Velocity, which then relaxes toward 0 over time
// while continuously driving Position.
type orbitAxis struct {
	Position  float64
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64
}

func newOrbitAxis(fps int) orbitAxis {
	return orbitAxis{
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

func (a *orbitAxis) Update() {
	a.Position += a.Velocity
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

// orbitState holds the camera's yaw/pitch around a fixed target with
// harmonica spring physics, replacing the teacher's model-rotation state:
// this pipeline has no per-object model transform, so the viewer orbits
// the camera instead of spinning the mesh.
type orbitState struct {
	Yaw, Pitch orbitAxis
	Distance   float64
	fps        int
}

func newOrbitState(fps int) *orbitState {
	return &orbitState{
		Yaw:      newOrbitAxis(fps),
		Pitch:    newOrbitAxis(fps),
		Distance: 5,
		fps:      fps,
	}
}

func (o *orbitState) Update() {
	o.Yaw.Update()
	o.Pitch.Update()
	const pitchLimit = math.Pi/2 - 0.01
	if o.Pitch.Position > pitchLimit {
		o.Pitch.Position = pitchLimit
	}
	if o.Pitch.Position < -pitchLimit {
		o.Pitch.Position = -pitchLimit
	}
}

func (o *orbitState) ApplyImpulse(yaw, pitch float64) {
	o.Yaw.Velocity += yaw
	o.Pitch.Velocity += pitch
}

func (o *orbitState) Reset() {
	o.Yaw = newOrbitAxis(o.fps)
	o.Pitch = newOrbitAxis(o.fps)
	o.Distance = 5
}

// Eye returns the camera position orbiting the origin at the current
// yaw/pitch/distance.
func (o *orbitState) Eye() (x, y, z float64) {
	cy, sy := math.Cos(o.Yaw.Position), math.Sin(o.Yaw.Position)
	cp, sp := math.Cos(o.Pitch.Position), math.Sin(o.Pitch.Position)
	return o.Distance * sy * cp, o.Distance * sp, o.Distance * cy * cp
}

func run(modelPath string) error {
	term := uv.DefaultTerminal()

	cols, rows, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(cols, rows)

	fmt.Fprint(os.Stdout, "\x1b[?1003h")
	fmt.Fprint(os.Stdout, "\x1b[?1006h")

	renderer := scene.NewRenderer(cols, rows*2)
	sink := render.NewTermSink(renderer.RenderTarget())

	if err := loadModel(renderer, modelPath); err != nil {
		return fmt.Errorf("load model: %w", err)
	}

	orbit := newOrbitState(*targetFPS)
	const torqueStrength = 1.5

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	inputTorque := struct{ yaw, pitch float64 }{}
	var mouseDown bool
	var lastMouseX, lastMouseY int

	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				cols, rows = ev.Width, ev.Height
				term.Erase()
				term.Resize(cols, rows)
				renderer = scene.NewRenderer(cols, rows*2)
				sink = render.NewTermSink(renderer.RenderTarget())
				_ = loadModel(renderer, modelPath)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("r"):
					orbit.Reset()
				case ev.MatchString("w", "up"):
					inputTorque.pitch = torqueStrength
				case ev.MatchString("s", "down"):
					inputTorque.pitch = -torqueStrength
				case ev.MatchString("a", "left"):
					inputTorque.yaw = -torqueStrength
				case ev.MatchString("d", "right"):
					inputTorque.yaw = torqueStrength
				case ev.MatchString("space"):
					orbit.ApplyImpulse((rand.Float64()-0.5)*1.5, (rand.Float64()-0.5)*1.5)
				case ev.MatchString("+", "="):
					orbit.Distance = math.Max(1, orbit.Distance-0.5)
				case ev.MatchString("-", "_"):
					orbit.Distance = math.Min(20, orbit.Distance+0.5)
				}

			case uv.KeyReleaseEvent:
				switch {
				case ev.MatchString("w"), ev.MatchString("up"), ev.MatchString("s"), ev.MatchString("down"):
					inputTorque.pitch = 0
				case ev.MatchString("a"), ev.MatchString("left"), ev.MatchString("d"), ev.MatchString("right"):
					inputTorque.yaw = 0
				}

			case uv.MouseClickEvent:
				mouseDown = true
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					orbit.ApplyImpulse(float64(dx)*0.03, float64(-dy)*0.03)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					orbit.Distance = math.Max(1, orbit.Distance-0.5)
				case uv.MouseWheelDown:
					orbit.Distance = math.Min(20, orbit.Distance+0.5)
				}
			}
		}
	}()

	targetDuration := time.Second / time.Duration(*targetFPS)
	lastFrame := time.Now()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		dt := now.Sub(lastFrame).Seconds()
		lastFrame = now
		if dt > 0.1 {
			dt = 0.1
		}

		orbit.ApplyImpulse(inputTorque.yaw*dt, inputTorque.pitch*dt)
		inputTorque.yaw *= 0.9
		inputTorque.pitch *= 0.9
		orbit.Update()

		ex, ey, ez := orbit.Eye()
		renderer.SetCameraPosition(ex, ey, ez)
		renderer.SetCameraTarget(0, 0, 0)

		renderer.Render()
		term.Render(sink)

		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// loadModel parses modelPath by extension and attaches it to renderer,
// falling back to a flag-supplied texture or a small built-in checker
// pattern when the mesh carries none of its own.
func loadModel(renderer *scene.Renderer, modelPath string) error {
	ext := strings.ToLower(filepath.Ext(modelPath))

	switch ext {
	case ".glb", ".gltf":
		obj, err := gltffile.Load(modelPath)
		if err != nil {
			return err
		}
		if obj.Texture == nil {
			obj.Texture = resolveTexture()
		}
		renderer.AddPreparedObject(obj)
		return nil

	case ".obj":
		data, err := os.ReadFile(modelPath)
		if err != nil {
			return fmt.Errorf("read %s: %w", modelPath, err)
		}
		obj, err := objfile.Parse(string(data))
		if err != nil {
			return err
		}
		obj.Texture = resolveTexture()
		renderer.AddPreparedObject(obj)
		return nil

	default:
		return fmt.Errorf("unsupported format: %s (use .obj or .glb)", ext)
	}
}

// resolveTexture loads the -texture flag's image if set, otherwise falls
// back to a small built-in checker pattern.
func resolveTexture() *render.Texture {
	if *texturePath != "" {
		tex, err := render.LoadTexture(*texturePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not load texture: %v\n", err)
		} else {
			return tex
		}
	}
	return checkerTexture()
}

// checkerTexture builds a small built-in fallback so a model with no
// declared texture still renders as something other than solid black.
func checkerTexture() *render.Texture {
	const size = 8
	pixels := make([]byte, size*size*4)
	for y := range size {
		for x := range size {
			o := (y*size + x) * 4
			if (x+y)%2 == 0 {
				pixels[o], pixels[o+1], pixels[o+2], pixels[o+3] = 200, 200, 200, 255
			} else {
				pixels[o], pixels[o+1], pixels[o+2], pixels[o+3] = 90, 90, 90, 255
			}
		}
	}
	tex, _ := render.NewTexture(size, size, pixels)
	return tex
}
