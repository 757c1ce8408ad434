package defender

// spawnEnemy creates one enemy at a random x fully inside the playfield.
func (g *Game) spawnEnemy() {
	ec := g.cfg.Enemy
	g.enemies = append(g.enemies, Enemy{
		X:      g.rng.Float64() * (g.cfg.Playfield.Width - ec.Width),
		Y:      ec.SpawnY,
		W:      ec.Width,
		H:      ec.Height,
		Speed:  g.enemySpeed + g.rng.Float64()*ec.SpeedJitter,
		Period: ec.ZigzagMinPeriod + g.rng.Float64()*ec.ZigzagPeriodJitter,
	})
}

// spawnExplosion bursts particles outward from (x, y).
func (g *Game) spawnExplosion(x, y float64) {
	xc := g.cfg.Explosion
	for range xc.Particles {
		g.particles = append(g.particles, Particle{
			X:      x,
			Y:      y,
			VX:     (g.rng.Float64()*2 - 1) * xc.MaxSpeed,
			VY:     (g.rng.Float64()*2 - 1) * xc.MaxSpeed,
			Alpha:  1,
			Radius: xc.MinRadius + g.rng.Float64()*xc.RadiusJitter,
			Decay:  xc.MinDecay + g.rng.Float64()*xc.DecayJitter,
		})
	}
}
