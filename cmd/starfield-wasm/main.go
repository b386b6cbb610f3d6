//go:build js && wasm

// Command starfield-wasm animates every <canvas data-starfield="..."> on the
// page. Build with GOOS=js GOARCH=wasm into web/static/starfield.wasm.
package main

import (
	"fmt"
	"math"
	"strconv"
	"syscall/js"

	"github.com/Zachkp/starfolio/internal/starfield"
)

type scene struct {
	canvas js.Value
	ctx    js.Value
	field  *starfield.Field
	geos   []starfield.Geometry
	buf    []starfield.Projected
	last   float64
}

func main() {
	doc := js.Global().Get("document")
	canvases := doc.Call("querySelectorAll", "canvas[data-starfield]")

	var scenes []*scene
	for i := 0; i < canvases.Length(); i++ {
		s, err := newScene(canvases.Index(i), currentTheme(doc))
		if err != nil {
			js.Global().Get("console").Call("warn", err.Error())
			continue
		}
		scenes = append(scenes, s)
	}
	if len(scenes) == 0 {
		return
	}

	// app.js dispatches this after flipping the theme class
	js.Global().Call("addEventListener", "themechange", js.FuncOf(func(this js.Value, args []js.Value) any {
		theme := currentTheme(doc)
		for _, s := range scenes {
			s.field.SetTheme(theme)
		}
		return nil
	}))

	var pointer starfield.Pointer
	js.Global().Call("addEventListener", "pointermove", js.FuncOf(func(this js.Value, args []js.Value) any {
		e := args[0]
		w := js.Global().Get("innerWidth").Float()
		h := js.Global().Get("innerHeight").Float()
		pointer.X = e.Get("clientX").Float()/w*2 - 1
		pointer.Y = -(e.Get("clientY").Float()/h*2 - 1)
		return nil
	}))
	js.Global().Call("addEventListener", "pointerdown", js.FuncOf(func(this js.Value, args []js.Value) any {
		pointer.Held = true
		return nil
	}))
	js.Global().Call("addEventListener", "pointerup", js.FuncOf(func(this js.Value, args []js.Value) any {
		pointer.Held = false
		return nil
	}))

	var frame js.Func
	frame = js.FuncOf(func(this js.Value, args []js.Value) any {
		now := args[0].Float()
		for _, s := range scenes {
			s.field.SetPointer(pointer)
			s.draw(now)
		}
		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", frame)

	select {}
}

func currentTheme(doc js.Value) starfield.Theme {
	if doc.Get("documentElement").Get("classList").Call("contains", "light").Bool() {
		return starfield.Light
	}
	return starfield.Dark
}

func newScene(canvas js.Value, theme starfield.Theme) (*scene, error) {
	variant, err := starfield.ParseVariant(canvas.Get("dataset").Get("starfield").String())
	if err != nil {
		return nil, err
	}

	var seed uint64 = 1
	if raw := canvas.Get("dataset").Get("seed"); raw.Truthy() {
		if n, err := strconv.ParseUint(raw.String(), 10, 64); err == nil {
			seed = n
		}
	}

	field, err := starfield.New(variant, seed, theme)
	if err != nil {
		return nil, err
	}

	ctx := canvas.Call("getContext", "2d")
	if ctx.IsNull() {
		return nil, fmt.Errorf("canvas 2d context unavailable")
	}

	s := &scene{canvas: canvas, ctx: ctx, field: field}
	if variant == starfield.Hero {
		s.geos = starfield.Geometries(seed)
	}
	return s, nil
}

func (s *scene) draw(now float64) {
	if s.last > 0 {
		s.field.Step((now - s.last) / 1000)
	}
	s.last = now

	w := s.canvas.Get("clientWidth").Float()
	h := s.canvas.Get("clientHeight").Float()
	if w == 0 || h == 0 {
		return
	}
	if s.canvas.Get("width").Float() != w || s.canvas.Get("height").Float() != h {
		s.canvas.Set("width", w)
		s.canvas.Set("height", h)
	}

	s.ctx.Call("clearRect", 0, 0, w, h)
	cam := starfield.DefaultCamera(w, h)
	s.buf = cam.Frame(s.field, s.buf)

	for _, p := range s.buf {
		s.ctx.Set("fillStyle", rgb(p.Color))
		s.ctx.Call("fillRect", p.X-p.Radius, p.Y-p.Radius, p.Radius*2, p.Radius*2)
	}

	rx, ry := s.field.Rotation()
	for _, g := range s.geos {
		pt, ok := cam.Project(starfield.Rotate(g.Position, rx, ry))
		if !ok {
			continue
		}
		size := g.Scale * pt.Scale * 0.5
		s.ctx.Set("globalAlpha", 0.6)
		s.ctx.Call("beginPath")
		switch g.Shape {
		case starfield.Box:
			s.ctx.Call("rect", pt.X-size/2, pt.Y-size/2, size, size)
		case starfield.Cone:
			s.ctx.Call("moveTo", pt.X, pt.Y-size/2)
			s.ctx.Call("lineTo", pt.X+size/2, pt.Y+size/2)
			s.ctx.Call("lineTo", pt.X-size/2, pt.Y+size/2)
			s.ctx.Call("closePath")
		default:
			s.ctx.Call("arc", pt.X, pt.Y, size/2, 0, 2*math.Pi)
		}
		if g.Wireframe {
			s.ctx.Set("strokeStyle", g.Color())
			s.ctx.Call("stroke")
		} else {
			s.ctx.Set("fillStyle", g.Color())
			s.ctx.Call("fill")
		}
		s.ctx.Set("globalAlpha", 1)
	}
}

func rgb(c starfield.Color) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", int(c.R*255), int(c.G*255), int(c.B*255))
}
