//go:build !js

package main

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/seqsense/pcgol/mat"

	"github.com/seqsense/sierpinski/config"
	"github.com/seqsense/sierpinski/fractal"
	"github.com/seqsense/sierpinski/input"
	"github.com/seqsense/sierpinski/raster"
)

// maxBatchVertices is the number of vertices addressable by uint16 indices,
// rounded down to whole triangles.
const maxBatchVertices = 65535 / 3 * 3

// game drives the scene from the ebiten loop.
type game struct {
	s       *scene
	o       overrides
	watcher *config.Watcher
	log     *slog.Logger

	white    *ebiten.Image
	batch    raster.Batch
	vertices []ebiten.Vertex
	indices  []uint16

	cursorX, cursorY int
	cursorValid      bool
	started          bool
}

func newGame(cfg *config.Config, o overrides, w *config.Watcher, logger *slog.Logger) *game {
	return &game{
		s:       newScene(cfg),
		o:       o,
		watcher: w,
		log:     logger,
	}
}

func (g *game) Update() error {
	// Update is called once per frame after the previous Draw,
	// so the clock paces the previous frame here.
	if g.started {
		g.s.tick()
	}
	g.started = true

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.log.Debug("subdivide", "subdivide", g.s.setSubdivide(g.s.subdivide+1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.log.Debug("subdivide", "subdivide", g.s.setSubdivide(g.s.subdivide-1))
	}
	g.reload()

	g.s.update(g.input())
	return nil
}

func (g *game) reload() {
	if g.watcher == nil {
		return
	}
	select {
	case cfg, ok := <-g.watcher.Configs:
		if !ok {
			g.watcher = nil
			return
		}
		if err := g.o.apply(cfg); err != nil {
			g.log.Warn("reloaded config conflicts with options", "error", err)
			return
		}
		g.s.apply(cfg)
		g.log.Info("config reloaded", "fps", cfg.FPS, "subdivide", g.s.subdivide)
	case err, ok := <-g.watcher.Errors:
		if !ok {
			g.watcher = nil
			return
		}
		g.log.Warn("config reload failed", "error", err)
	default:
	}
}

func (g *game) input() input.State {
	st := input.State{
		Keys: input.Keys{
			Forward: ebiten.IsKeyPressed(ebiten.KeyW),
			Back:    ebiten.IsKeyPressed(ebiten.KeyS),
			Left:    ebiten.IsKeyPressed(ebiten.KeyA),
			Right:   ebiten.IsKeyPressed(ebiten.KeyD),
			Up:      ebiten.IsKeyPressed(ebiten.KeyShiftLeft),
			Down:    ebiten.IsKeyPressed(ebiten.KeyControlLeft),
		},
	}

	x, y := ebiten.CursorPosition()
	if g.cursorValid {
		st.MouseDX = float64(x - g.cursorX)
		st.MouseDY = float64(y - g.cursorY)
	}
	g.cursorX, g.cursorY, g.cursorValid = x, y, true

	for _, id := range ebiten.AppendGamepadIDs(nil) {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		st.Gamepad = true
		st.LeftStick = input.Stick{
			X: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
			Y: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical),
		}
		st.RightStick = input.Stick{
			X: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal),
			Y: ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical),
		}
		break
	}
	return st
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)

	b := screen.Bounds()
	width, height := b.Dx(), b.Dy()
	view, proj := g.s.matrices(width, height)
	vp := proj.Mul(view)

	g.batch.Reset(width, height)
	for _, m := range g.s.models {
		mvp := vp.Mul(m)
		for i := 0; i < fractal.VertexCount; i += 3 {
			var pos, col [3]mat.Vec3
			for j := range pos {
				pos[j], col[j] = fractal.Vertex(i + j)
			}
			g.batch.Add(mvp, pos, col)
		}
	}

	if g.white == nil {
		g.white = ebiten.NewImage(3, 3)
		g.white.Fill(color.White)
	}
	src := g.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	g.vertices, g.indices = g.vertices[:0], g.indices[:0]
	for _, t := range g.batch.Sorted() {
		if len(g.vertices)+3 > maxBatchVertices {
			screen.DrawTriangles(g.vertices, g.indices, src, nil)
			g.vertices, g.indices = g.vertices[:0], g.indices[:0]
		}
		for _, v := range t {
			g.indices = append(g.indices, uint16(len(g.vertices)))
			g.vertices = append(g.vertices, ebiten.Vertex{
				DstX:   v.X,
				DstY:   v.Y,
				SrcX:   1,
				SrcY:   1,
				ColorR: v.Color[0],
				ColorG: v.Color[1],
				ColorB: v.Color[2],
				ColorA: 1,
			})
		}
	}
	if len(g.vertices) > 0 {
		screen.DrawTriangles(g.vertices, g.indices, src, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
