package draw

import "math"

// asteroidOutline is a lumpy unit polygon; radii per vertex.
var asteroidOutline = [...]float64{1, 0.82, 0.95, 0.78, 1, 0.88, 0.8, 0.93}

// Ship draws the player's ship, nose up, centred on (x, y).
func (c *Canvas) Ship(x, y float64, color Color) {
	pts := c.BorrowPoints(3)
	pts[0] = Point{X: x, Y: y + 0.45}
	pts[1] = Point{X: x - 0.4, Y: y - 0.3}
	pts[2] = Point{X: x + 0.4, Y: y - 0.3}
	c.DrawPolygon(pts, color, true)
}

// Bullet draws a short vertical streak.
func (c *Canvas) Bullet(x, y float64, color Color) {
	c.DrawLine(Point{X: x, Y: y - 0.1}, Point{X: x, Y: y + 0.15}, color)
}

// Asteroid draws a rock of world radius r. The rotation phase keeps rocks
// from looking identical.
func (c *Canvas) Asteroid(x, y, r, phase float64, color Color) {
	n := len(asteroidOutline)
	pts := c.BorrowPoints(n)
	for i, k := range asteroidOutline {
		a := phase + float64(i)*2*math.Pi/float64(n)
		pts[i] = Point{X: x + math.Cos(a)*r*k, Y: y + math.Sin(a)*r*k}
	}
	c.DrawPolygon(pts, color, true)
}

// Explosion draws an expanding burst for progress in [0, 1]: a hot core that
// fades into a ring.
func (c *Canvas) Explosion(x, y, progress float64) {
	progress = math.Max(0, math.Min(progress, 1))
	r := 0.2 + progress*0.8
	c.FillCircle(x, y, r, ColorExplosion)
	if progress < 0.6 {
		c.FillCircle(x, y, r*(0.6-progress), ColorFlash)
	} else {
		// Hollow out the centre as it fades.
		c.FillCircle(x, y, r*(progress-0.4), None)
	}
}
