package main

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/pixelforge/pf2d/color"
	"github.com/pixelforge/pf2d/geom"
	"github.com/pixelforge/pf2d/graphics"
	"github.com/pixelforge/pf2d/graphics/ui"
)

func init() {
	// GLFW and GL calls must come from the same OS thread throughout.
	runtime.LockOSThread()
}

const (
	windowWidth  = 960
	windowHeight = 540
	renderWidth  = 320
	renderHeight = 180
)

func main() {
	graphics.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	window := mustOpenWindow(windowWidth, windowHeight, "pf2d demo")
	defer glfw.Terminate()

	graphics.Init()

	target, ok := graphics.NewRenderTexture(renderWidth, renderHeight, graphics.DefaultSampling)
	if !ok {
		panic("demo: failed to create off-screen render target")
	}

	font := demoFont()

	for !window.ShouldClose() {
		glfw.PollEvents()

		fbW, fbH := window.GetFramebufferSize()

		graphics.BeginRender(target, graphics.FrameSetup{
			Camera:    graphics.CameraData{Extents: mgl32.Vec2{float32(renderWidth), float32(renderHeight)}},
			TargetRes: [2]int{renderWidth, renderHeight},
			ClearCol:  color.RGBA32{R: 0.05, G: 0.05, B: 0.08, A: 1},
		})

		scene := graphics.Scene()
		scene.DrawRect(graphics.RectSubmitCmd{
			Pos:     mgl32.Vec2{0, 0},
			Extents: mgl32.Vec2{40, 40},
			Tint:    [4]graphics.Color{color.Red, color.Red, color.Red, color.Red},
			UVRect:  geom.Ident,
		})

		root := ui.Root([2]int{renderWidth, renderHeight}, graphics.UI())
		root.SetFontSize(12)
		root.SetFontColor(color.White)
		root.SetRichText(true)
		root.DrawText(ui.Center, mgl32.Vec2{}, 0, mgl32.Vec2{200, 60},
			"<wave>pf2d</wave> demo running", font)

		graphics.EndRender([2]int{fbW, fbH})

		window.SwapBuffers()
	}
}

// demoFont returns a placeholder bitmap font backed by a blank 8x8-cell
// atlas, just enough to exercise the text pipeline without shipping a
// real font asset alongside this example.
func demoFont() *graphics.BitmapFont {
	tex := graphics.NewTexture2D(64, 8, graphics.FormatRGBA8, graphics.DefaultSampling)
	tex.SetPixels(make([]byte, 64*8*4))
	atlas := graphics.NewSpriteAtlas(tex, mgl32.Vec2{8, 8})

	font := graphics.NewBitmapFont(atlas, " pf2domenstrig!", graphics.FontCfg{
		SpaceWidth: graphics.PercentMeasure(1),
	})
	font.SetRichFunctions(graphics.DefaultRichTextFunctions())
	return font
}

type appWindow struct {
	w *glfw.Window
}

func mustOpenWindow(width, height int, title string) *appWindow {
	if err := glfw.Init(); err != nil {
		panic("demo: glfw init failed: " + err.Error())
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	w, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		panic("demo: window creation failed: " + err.Error())
	}
	w.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		panic("demo: gl init failed: " + err.Error())
	}

	return &appWindow{w: w}
}

func (a *appWindow) ShouldClose() bool                     { return a.w.ShouldClose() }
func (a *appWindow) SwapBuffers()                          { a.w.SwapBuffers() }
func (a *appWindow) GetFramebufferSize() (int, int)        { return a.w.GetFramebufferSize() }
