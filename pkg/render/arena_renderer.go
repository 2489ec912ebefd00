package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"go-emitter-arena/internal/app"
	"go-emitter-arena/internal/component"
	"go-emitter-arena/internal/config"
	"go-emitter-arena/internal/ui"
)

const (
	fontSize      = 14
	titleFontSize = 36
	hudLineHeight = 20
	hudMargin     = 10
	headingLength = 60
)

// HUD — часть оверлея, которой нет в снимке
type HUD struct {
	Pattern     component.Pattern
	CircleForce bool
	Firing      bool
	Panel       *ui.TuningPanel // nil — без панели
}

// ArenaRenderer draws an app.Snapshot with ebiten vector shapes.
type ArenaRenderer struct {
	width   int
	height  int
	palette Palette

	fillImg   *ebiten.Image
	vs        []ebiten.Vertex
	is        []uint16
	fontFace  font.Face
	titleFace font.Face
	health    *ui.HealthIndicator

	ShowHUD bool
}

func NewArenaRenderer(width, height int, palette Palette) (*ArenaRenderer, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: fontSize, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("font face: %w", err)
	}
	title, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: titleFontSize, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("title face: %w", err)
	}

	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &ArenaRenderer{
		width:     width,
		height:    height,
		palette:   palette,
		fillImg:   fillImg,
		vs:        make([]ebiten.Vertex, 0, 8),
		is:        make([]uint16, 0, 12),
		fontFace:  face,
		titleFace: title,
		health:    &ui.HealthIndicator{Fill: palette.Player, Low: palette.Adversary, Border: palette.Text},
		ShowHUD:   true,
	}, nil
}

// Draw renders one playing frame.
func (r *ArenaRenderer) Draw(screen *ebiten.Image, snap app.Snapshot, hud HUD) {
	screen.Fill(r.palette.Background)

	for _, id := range component.Adversaries {
		body := snap.Body(id)
		if body.Eliminated {
			continue
		}
		fraction := body.Health / maxHealth(id)
		vector.DrawFilledCircle(screen, float32(body.Position.X()), float32(body.Position.Y()),
			float32(body.Size.Radius()), healthColor(r.palette.Adversary, fraction), true)
		r.drawShots(screen, body.Projectiles, r.palette.AdversaryShot)
		r.health.Draw(screen, body.Position.X(), body.Position.Y(), body.Size.H/2, body.Health, maxHealth(id))
	}

	player := snap.Body(component.Player)
	if !player.Eliminated {
		r.drawPlayer(screen, player)
		top := math.Max(player.Size.W, player.Size.H) / 2
		r.health.Draw(screen, player.Position.X(), player.Position.Y(), top, player.Health, maxHealth(component.Player))
	}
	r.drawShots(screen, player.Projectiles, r.palette.PlayerShot)

	for _, p := range snap.Effect {
		vector.DrawFilledCircle(screen, float32(p.Position.X()), float32(p.Position.Y()),
			float32(snap.EffectRadius), r.palette.Effect, true)
	}

	if r.ShowHUD {
		for i, line := range hudLines(snap, hud) {
			text.Draw(screen, line, r.fontFace, hudMargin, hudMargin+(i+1)*hudLineHeight, r.palette.Text)
		}
		if hud.Panel != nil {
			hud.Panel.Draw(screen, r.fontFace)
		}
	}
}

// DrawStart рисует титульный экран
func (r *ArenaRenderer) DrawStart(screen *ebiten.Image) {
	screen.Fill(r.palette.Background)
	vector.DrawFilledRect(screen, 0, float32(r.height)/2-60, float32(r.width), 120, r.palette.Accent, true)
	r.centered(screen, "EMITTER ARENA", r.titleFace, r.height/2)
	r.centered(screen, "release SPACE to start", r.fontFace, r.height/2+40)
}

// DrawEnd dims the last frame and shows the result.
func (r *ArenaRenderer) DrawEnd(screen *ebiten.Image, snap app.Snapshot, hud HUD) {
	r.Draw(screen, snap, hud)
	vector.DrawFilledRect(screen, 0, 0, float32(r.width), float32(r.height), r.palette.Dim, false)
	title := "DEFEAT"
	if snap.Phase == component.VictoryPhase {
		title = "VICTORY"
	}
	r.centered(screen, title, r.titleFace, r.height/2)
	r.centered(screen, fmt.Sprintf("score %d, press R to play again", snap.Score), r.fontFace, r.height/2+40)
}

// DrawPaused рисует замороженный кадр с надписью
func (r *ArenaRenderer) DrawPaused(screen *ebiten.Image, snap app.Snapshot, hud HUD) {
	r.Draw(screen, snap, hud)
	vector.DrawFilledRect(screen, 0, 0, float32(r.width), float32(r.height), r.palette.Dim, false)
	r.centered(screen, "PAUSED", r.titleFace, r.height/2)
}

func (r *ArenaRenderer) drawPlayer(screen *ebiten.Image, body app.BodySnapshot) {
	corners := bodyCorners(body.Position, body.Size, body.Rotation)
	path := vector.Path{}
	path.MoveTo(float32(corners[0].X()), float32(corners[0].Y()))
	for _, c := range corners[1:] {
		path.LineTo(float32(c.X()), float32(c.Y()))
	}
	path.Close()

	fill := healthColor(r.palette.Player, body.Health/maxHealth(component.Player))
	r.vs, r.is = path.AppendVerticesAndIndicesForFilling(r.vs[:0], r.is[:0])
	for i := range r.vs {
		r.vs[i].ColorR = float32(fill.R) / 255
		r.vs[i].ColorG = float32(fill.G) / 255
		r.vs[i].ColorB = float32(fill.B) / 255
		r.vs[i].ColorA = float32(fill.A) / 255
	}
	screen.DrawTriangles(r.vs, r.is, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	tip := body.Position.Add(body.Heading.Mul(headingLength))
	vector.StrokeLine(screen, float32(body.Position.X()), float32(body.Position.Y()),
		float32(tip.X()), float32(tip.Y()), r.palette.StrokeWidth, r.palette.Heading, true)
}

func (r *ArenaRenderer) drawShots(screen *ebiten.Image, shots []component.Entity, clr color.Color) {
	for _, s := range shots {
		vector.DrawFilledCircle(screen, float32(s.Position.X()), float32(s.Position.Y()),
			float32(s.Size.Radius()), clr, true)
	}
}

func (r *ArenaRenderer) centered(screen *ebiten.Image, s string, face font.Face, y int) {
	bounds := text.BoundString(face, s)
	x := (r.width - bounds.Dx()) / 2
	text.Draw(screen, s, face, x, y, r.palette.Text)
}

// bodyCorners returns the corners of a w x h rectangle centered on pos and
// turned by rotationDeg, in drawing order.
func bodyCorners(pos mgl64.Vec3, size component.Size, rotationDeg float64) [4]mgl64.Vec2 {
	rot := mgl64.Rotate2D(mgl64.DegToRad(rotationDeg))
	hw, hh := size.W/2, size.H/2
	offsets := [4]mgl64.Vec2{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	center := pos.Vec2()
	var out [4]mgl64.Vec2
	for i, o := range offsets {
		out[i] = center.Add(rot.Mul2x1(o))
	}
	return out
}

func hudLines(snap app.Snapshot, hud HUD) []string {
	fire := "off"
	if hud.Firing {
		fire = "on"
	}
	orbit := "off"
	if hud.CircleForce {
		orbit = "on"
	}
	lines := []string{
		fmt.Sprintf("score: %d", snap.Score),
		fmt.Sprintf("player: %.0f", snap.Body(component.Player).Health),
	}
	for _, id := range component.Adversaries {
		body := snap.Body(id)
		if body.Eliminated {
			lines = append(lines, fmt.Sprintf("%s: down", id))
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %.0f", id, body.Health))
	}
	return append(lines,
		fmt.Sprintf("fire: %s", fire),
		fmt.Sprintf("pattern: %s, orbit: %s", hud.Pattern, orbit),
	)
}

func maxHealth(id component.BodyID) float64 {
	if id == component.Player {
		return config.PlayerHealth
	}
	return config.AdversaryHealth
}
