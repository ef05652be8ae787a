package session

// ShipView is the ship as seen by a renderer.
type ShipView struct {
	X       float64 `json:"x"`        // Authoritative position
	RenderX float64 `json:"render_x"` // Eased position for drawing
	Y       float64 `json:"y"`
}

type BulletView struct {
	ID int     `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type AsteroidView struct {
	ID     int     `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Health int     `json:"health"`
	Color  int     `json:"color"`
	Scale  float64 `json:"scale"`
}

type ExplosionView struct {
	ID       int     `json:"id"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Progress float64 `json:"progress"`
}

// Snapshot is a read-only copy of the simulation state taken after a frame.
// It shares no memory with the session.
type Snapshot struct {
	State      State           `json:"state"`
	Score      int             `json:"score"`
	Elapsed    int             `json:"elapsed"`
	Frame      uint64          `json:"frame"`
	Hits       int             `json:"hits"`
	Destroys   int             `json:"destroys"`
	Ship       ShipView        `json:"ship"`
	Bullets    []BulletView    `json:"bullets"`
	Asteroids  []AsteroidView  `json:"asteroids"`
	Explosions []ExplosionView `json:"explosions"`
}

// Snapshot returns a fresh copy of the current state.
func (s *Session) Snapshot() Snapshot {
	var snap Snapshot
	s.SnapshotInto(&snap)
	return snap
}

// SnapshotInto fills dst, reusing its slices. Frame drivers keep one
// Snapshot around to avoid allocating every frame.
func (s *Session) SnapshotInto(dst *Snapshot) {
	dst.State = s.state
	dst.Score = s.score
	dst.Elapsed = s.elapsed
	dst.Frame = s.frame
	dst.Hits = s.hits
	dst.Destroys = s.destroys
	dst.Ship = ShipView{X: s.ship.TargetX, RenderX: s.ship.X, Y: s.ship.Y}

	dst.Bullets = dst.Bullets[:0]
	for _, b := range s.bullets.All() {
		dst.Bullets = append(dst.Bullets, BulletView{ID: b.ID, X: b.X, Y: b.Y})
	}

	dst.Asteroids = dst.Asteroids[:0]
	for _, a := range s.asteroids.All() {
		dst.Asteroids = append(dst.Asteroids, AsteroidView{
			ID:     a.ID,
			X:      a.X,
			Y:      a.Y,
			Health: a.Health,
			Color:  a.Color,
			Scale:  a.Scale(),
		})
	}

	dst.Explosions = dst.Explosions[:0]
	for _, e := range s.explosions.All() {
		dst.Explosions = append(dst.Explosions, ExplosionView{ID: e.ID, X: e.X, Y: e.Y, Progress: e.Progress})
	}
}
