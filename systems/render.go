package systems

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/dashcrawler/components"
	cfg "github.com/automoto/dashcrawler/config"
	"github.com/automoto/dashcrawler/shared/gamemath"
	"github.com/automoto/dashcrawler/shared/leveldata"
	"github.com/automoto/dashcrawler/tags"
)

const circleSegments = 20

var (
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image

	// Reused between polygon draws to avoid allocations
	polyVerts   []ebiten.Vertex
	polyIndices []uint16
	polyPoints  []gamemath.Vec3
)

func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		whiteImage = ebiten.NewImage(3, 3)
		whiteImage.Fill(color.White)
		whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// fillWorldPolygon projects a convex world-space polygon and fills it.
func fillWorldPolygon(screen *ebiten.Image, view gamemath.View, pts []gamemath.Vec3, clr color.RGBA, alpha float32) {
	if len(pts) < 3 {
		return
	}
	r, g, b := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255
	a := float32(clr.A) / 255 * alpha

	polyVerts = polyVerts[:0]
	for _, p := range pts {
		x, y := view.Project(p)
		polyVerts = append(polyVerts, ebiten.Vertex{
			DstX: float32(x), DstY: float32(y),
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}
	polyIndices = polyIndices[:0]
	for i := 1; i+1 < len(pts); i++ {
		polyIndices = append(polyIndices, 0, uint16(i), uint16(i+1))
	}

	screen.DrawTriangles(polyVerts, polyIndices, solidSource(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// strokeWorldLine projects a world-space segment and draws it.
func strokeWorldLine(screen *ebiten.Image, view gamemath.View, a, b gamemath.Vec3, width float32, clr color.Color) {
	x0, y0 := view.Project(a)
	x1, y1 := view.Project(b)
	vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), width, clr, true)
}

// DrawArena renders the floor, its grid and the walls.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Arena.BackgroundColor)

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	arena := components.Level.Get(levelEntry).Current
	if arena == nil {
		return
	}

	view := CameraView(ecs, float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy()))

	fillWorldPolygon(screen, view, []gamemath.Vec3{
		{X: 0, Y: 0},
		{X: arena.Width, Y: 0},
		{X: arena.Width, Y: arena.Height},
		{X: 0, Y: arena.Height},
	}, cfg.Arena.FloorColor, 1)

	if step := cfg.Arena.GridSpacing; step > 0 {
		for x := step; x < arena.Width; x += step {
			strokeWorldLine(screen, view, gamemath.Vec3{X: x}, gamemath.Vec3{X: x, Y: arena.Height}, 1, cfg.Arena.GridColor)
		}
		for y := step; y < arena.Height; y += step {
			strokeWorldLine(screen, view, gamemath.Vec3{Y: y}, gamemath.Vec3{X: arena.Width, Y: y}, 1, cfg.Arena.GridColor)
		}
	}

	drawWalls(screen, view, arena.Walls)
}

// drawWalls draws extruded wall boxes far to near so nearer walls cover farther ones.
func drawWalls(screen *ebiten.Image, view gamemath.View, walls []leveldata.Wall) {
	forward, _ := gamemath.YawBasis(view.Yaw)
	depth := func(w leveldata.Wall) float64 {
		c := gamemath.Vec3{X: w.X + w.W/2, Y: w.Y + w.H/2}
		return c.Sub(view.Target).Dot(forward)
	}

	sorted := make([]leveldata.Wall, len(walls))
	copy(sorted, walls)
	sort.Slice(sorted, func(i, j int) bool { return depth(sorted[i]) > depth(sorted[j]) })

	h := cfg.Arena.WallHeight
	for _, w := range sorted {
		base := [4]gamemath.Vec3{
			{X: w.X, Y: w.Y},
			{X: w.X + w.W, Y: w.Y},
			{X: w.X + w.W, Y: w.Y + w.H},
			{X: w.X, Y: w.Y + w.H},
		}
		// Outward normals of the edges base[i] -> base[i+1]
		normals := [4]gamemath.Vec3{{Y: -1}, {X: 1}, {Y: 1}, {X: -1}}

		for i := range base {
			// Only faces turned toward the camera
			if normals[i].Dot(forward) >= 0 {
				continue
			}
			a, b := base[i], base[(i+1)%4]
			fillWorldPolygon(screen, view, []gamemath.Vec3{
				a, b, {X: b.X, Y: b.Y, Z: h}, {X: a.X, Y: a.Y, Z: h},
			}, cfg.Arena.WallColor, 1)
		}

		top := make([]gamemath.Vec3, 4)
		for i, p := range base {
			top[i] = gamemath.Vec3{X: p.X, Y: p.Y, Z: h}
		}
		fillWorldPolygon(screen, view, top, cfg.Arena.WallTopColor, 1)
	}
}

// DrawParticles renders dash bursts and afterimages.
func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	view := CameraView(ecs, float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy()))

	components.Particle.Each(ecs.World, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		alpha := gamemath.Clamp(float64(p.AlphaValue), 0, 1)
		if alpha <= 0 {
			return
		}
		radius := p.Radius * float64(p.ScaleValue)
		fillWorldPolygon(screen, view, circlePoints(p.Position, radius, radius, p.Yaw), p.Color, float32(alpha))
	})
}

// DrawCharacters renders each character as a disc with a facing wedge.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	view := CameraView(ecs, float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy()))
	radius := cfg.Character.CapsuleRadius

	tags.Character.Each(ecs.World, func(e *donburi.Entry) {
		host := &characterHost{ecs: ecs, entry: e}
		tr := host.Transform()

		along, side, axis := 1.0, 1.0, tr.Yaw
		if e.HasComponent(components.SquashStretch) {
			ss := components.SquashStretch.Get(e)
			along, side, axis = ss.Along, ss.Side, ss.Axis
		}

		// Contact shadow
		fillWorldPolygon(screen, view, circlePoints(tr.Location, radius*1.1, radius*1.1, 0), color.RGBA{A: 255}, 0.35)

		body := tr.Location
		body.Z = radius
		fillWorldPolygon(screen, view, circlePoints(body, radius*along, radius*side, axis), cfg.Character.BodyColor, 1)

		forward := tr.Forward()
		_, right := gamemath.YawBasis(tr.Yaw)
		tip := body.Add(forward.Scale(radius * along * 1.3))
		fillWorldPolygon(screen, view, []gamemath.Vec3{
			tip,
			body.Add(forward.Scale(radius * 0.35)).Add(right.Scale(radius * 0.45)),
			body.Add(forward.Scale(radius * 0.35)).Sub(right.Scale(radius * 0.45)),
		}, cfg.Character.FacingColor, 1)
	})
}

// circlePoints returns an ellipse on the ground plane with radius rx along
// axisYaw and ry across it.
func circlePoints(center gamemath.Vec3, rx, ry, axisYaw float64) []gamemath.Vec3 {
	forward, right := gamemath.YawBasis(axisYaw)
	polyPoints = polyPoints[:0]
	for i := 0; i < circleSegments; i++ {
		s, c := math.Sincos(2 * math.Pi * float64(i) / circleSegments)
		p := center.Add(forward.Scale(c * rx)).Add(right.Scale(s * ry))
		polyPoints = append(polyPoints, p)
	}
	return polyPoints
}
