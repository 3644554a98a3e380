package systems

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/dashcrawler/components"
	"github.com/automoto/dashcrawler/tags"
)

// UpdateObjects syncs every collision object with its space cells.
func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}

// MoveAndCollide moves object by the velocity one axis at a time. Hitting a
// solid snaps the object flush against it and zeroes that velocity component,
// so the body slides along walls.
func MoveAndCollide(mv *components.MovementData, object *resolv.Object, dt float64) {
	if dx := mv.Velocity.X * dt; dx != 0 {
		if contact, hit := solidContact(object, dx, 0); hit {
			dx = contact
			mv.Velocity.X = 0
		}
		object.X += dx
	}

	if dy := mv.Velocity.Y * dt; dy != 0 {
		if contact, hit := solidContact(object, 0, dy); hit {
			dy = contact
			mv.Velocity.Y = 0
		}
		object.Y += dy
	}

	object.Update()
}

// solidContact returns the largest move along (dx, dy) that stays outside
// every solid the moved object would overlap.
func solidContact(object *resolv.Object, dx, dy float64) (float64, bool) {
	check := object.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return 0, false
	}

	want := dx + dy // one of them is zero
	best, hit := want, false
	for _, solid := range check.ObjectsByTags(tags.ResolvSolid) {
		if !overlapsAfter(object, solid, dx, dy) {
			continue
		}
		contact := check.ContactWithObject(solid)
		c := contact.X()
		if dx == 0 {
			c = contact.Y()
		}
		// Already inside this solid; let the body walk out
		if c*want < 0 {
			continue
		}
		hit = true
		if math.Abs(c) < math.Abs(best) {
			best = c
		}
	}
	return best, hit
}

// overlapsAfter reports whether object moved by (dx, dy) overlaps other.
// Touching edges do not count.
func overlapsAfter(object, other *resolv.Object, dx, dy float64) bool {
	x, y := object.X+dx, object.Y+dy
	return x < other.X+other.W && x+object.W > other.X &&
		y < other.Y+other.H && y+object.H > other.Y
}
