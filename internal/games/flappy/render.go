package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Renderer receives the draw calls of a frame in fixed order: background,
// each obstacle in field order, foreground, avatar.
type Renderer interface {
	DrawBackground(BackgroundShape)
	DrawObstacle(ObstacleShape)
	DrawForeground(ForegroundShape)
	DrawAvatar(AvatarShape)
}

// NopRenderer discards all draw calls.
type NopRenderer struct{}

func (NopRenderer) DrawBackground(BackgroundShape) {}
func (NopRenderer) DrawObstacle(ObstacleShape)     {}
func (NopRenderer) DrawForeground(ForegroundShape) {}
func (NopRenderer) DrawAvatar(AvatarShape)         {}

// Visual characters for rendering
const (
	SkyChar           = ' '
	CloudChar         = '░'
	PipeChar          = '█'
	PipeCapChar       = '▓'
	GroundChar        = '▒'
	GroundEdgeChar    = '═'
	GroundTextureChar = '▬'
	AvatarChar        = '●'
	WingChar          = '◖'
	EyeChar           = '•'
	BeakChar          = '▶'
)

// ScreenRenderer rasterizes shapes into a core.Screen, scaling the
// playfield to the whole screen.
type ScreenRenderer struct {
	dst    *core.Screen
	fieldW float64
	fieldH float64
	scale  core.Scale
}

// NewScreenRenderer creates a renderer drawing into dst.
func NewScreenRenderer(dst *core.Screen, cfg config.FlappyConfig) *ScreenRenderer {
	r := &ScreenRenderer{
		dst:    dst,
		fieldW: cfg.Playfield.Width,
		fieldH: cfg.Playfield.Height,
	}
	r.Refit()
	return r
}

// Refit recomputes the scale after the screen was resized.
func (r *ScreenRenderer) Refit() {
	r.scale = core.NewScale(r.fieldW, r.fieldH, r.dst.Width(), r.dst.Height())
}

// DrawBackground fills the sky and paints the clouds.
func (r *ScreenRenderer) DrawBackground(bg BackgroundShape) {
	r.dst.FillCell(core.Cell{Rune: SkyChar, Color: core.ColorSky})
	for _, c := range bg.Clouds {
		r.fillCircle(c, CloudChar, core.ColorCloud)
	}
}

// DrawObstacle paints both pipe segments and their caps.
func (r *ScreenRenderer) DrawObstacle(o ObstacleShape) {
	r.fillBox(o.Top, PipeChar, core.ColorPipe)
	r.fillBox(o.Bottom, PipeChar, core.ColorPipe)
	r.fillBox(o.TopCap, PipeCapChar, core.ColorPipeCap)
	r.fillBox(o.BottomCap, PipeCapChar, core.ColorPipeCap)
}

// DrawForeground paints the ground strip with its top edge and texture.
func (r *ScreenRenderer) DrawForeground(fg ForegroundShape) {
	ground := r.scale.Rect(fg.Ground)
	r.dst.DrawRect(ground, GroundChar, core.ColorGround)
	r.dst.DrawHLine(ground.X, ground.Y, ground.W, GroundEdgeChar, core.ColorGround)
	for _, s := range fg.Stripes {
		cell := r.scale.Rect(s)
		// Texture never overwrites the edge line
		if cell.Y == ground.Y {
			continue
		}
		r.dst.DrawRect(cell, GroundTextureChar, core.ColorGroundTexture)
	}
}

// DrawAvatar paints the body, then the wing, eye and beak on top of it.
func (r *ScreenRenderer) DrawAvatar(a AvatarShape) {
	r.fillCircle(a.Body, AvatarChar, core.ColorAvatar)
	r.plot(a.Wing.CX, a.Wing.CY, WingChar, core.ColorAvatarWing)
	r.plot(a.Eye.CX, a.Eye.CY, EyeChar, core.ColorEye)
	r.plot(a.Beak.X+a.Beak.W/2, a.Beak.Y+a.Beak.H/2, BeakChar, core.ColorBeak)
}

func (r *ScreenRenderer) fillBox(b core.Box, ch rune, c core.Color) {
	if b.Empty() {
		return
	}
	r.dst.DrawRect(r.scale.Rect(b), ch, c)
}

// fillCircle paints every cell whose center lies inside the circle, and
// always the cell holding the center so small circles stay visible.
func (r *ScreenRenderer) fillCircle(c core.Circle, ch rune, col core.Color) {
	area := r.scale.Rect(c.Bounds())
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			px, py := r.scale.CellCenter(x, y)
			if c.Contains(px, py) {
				r.dst.SetCell(x, y, ch, col)
			}
		}
	}
	r.plot(c.CX, c.CY, ch, col)
}

func (r *ScreenRenderer) plot(x, y float64, ch rune, c core.Color) {
	cx, cy := r.scale.Point(x, y)
	r.dst.SetCell(cx, cy, ch, c)
}
