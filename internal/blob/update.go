package blob

import "math"

// Step applies the queued inputs in order and advances one tick.
func Step(s State, in []Input, p Params) State {
	for _, i := range in {
		s = Apply(s, i, p)
	}
	return Update(s, p)
}

// Update advances the blob by one tick.
func Update(s State, p Params) State {
	s.Time += p.TimeStep

	s.Bounce.Velocity.X += -s.Bounce.Offset.X * p.BounceStiffness
	s.Bounce.Velocity.Y += -s.Bounce.Offset.Y * p.BounceStiffness
	s.Bounce.Velocity = s.Bounce.Velocity.Mul(p.BounceDamping)
	s.Bounce.Offset = s.Bounce.Offset.Add(s.Bounce.Velocity)

	s = updateDrop(s, p)
	s = updateRim(s, p)
	return s
}

func updateDrop(s State, p Params) State {
	if s.Pointer.Hovering {
		v := s.Pointer.Pos.Sub(s.Center)
		dist := v.Len()
		threshold := s.BaseRadius * p.EdgeThreshold

		if dist > threshold {
			s.Pointer.NearEdge = true
			pull := clamp01((dist - threshold) / (s.BaseRadius * p.PullSpan))
			s.Drop.TargetRadius = p.DropMinRadius + pull*p.DropRadiusGain
			target := s.Center.Add(v.Mul(p.DropReach + pull*p.DropReachGain))
			s.Drop.Pos = s.Drop.Pos.Lerp(target, p.DropFollowRate)
		} else {
			s.Pointer.NearEdge = false
			s.Drop.TargetRadius = 0
			s.Drop.Pos = s.Drop.Pos.Lerp(s.Center, p.DropReturnRate)
		}
	} else {
		s.Drop.Pos = s.Drop.Pos.Lerp(s.Center, p.DropIdleRate)
	}
	s.Drop.Radius += (s.Drop.TargetRadius - s.Drop.Radius) * p.DropRadiusRate
	return s
}

func updateRim(s State, p Params) State {
	var (
		stretch  bool
		dropDir  float64
		dropDist float64
	)
	if s.Pointer.NearEdge {
		d := s.Drop.Pos.Sub(s.Center)
		stretch = true
		dropDir = d.Angle()
		dropDist = d.Len()
	}

	t := s.Time + s.WobblePhase
	for i := range s.Rim {
		pt := &s.Rim[i]
		target := wobble(t, pt.BaseAngle)
		if stretch {
			if pull := math.Cos(pt.BaseAngle - dropDir); pull > 0 {
				target += pull * pull * dropDist * p.DropStretch
			}
		}
		pt.Velocity += (target - pt.Offset) * p.RimStiffness
		pt.Velocity *= p.RimDamping
		pt.Offset += pt.Velocity
	}
	return s
}

// wobble is the idle shimmer: three travelling waves around the rim.
func wobble(t, angle float64) float64 {
	return math.Sin(t*1.5+angle*2)*2 +
		math.Cos(t*2+angle*3)*1.5 +
		math.Sin(t*0.8+angle*4)*1
}

// MaxWobble bounds |wobble| for any time and angle.
const MaxWobble = 4.5
