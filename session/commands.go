package session

import mandel "github.com/marben/mandel_julia"

// key runs a discrete keyboard command. Orbit length and iteration budget
// keys are global; the others go to the view under the pointer and are
// ignored when there is none.
func (s *Session) key(k string) {
	switch k {
	case "ArrowUp":
		s.setOrbitLength(s.shared.OrbitLength + 1)
		return
	case "ArrowDown":
		s.setOrbitLength(s.shared.OrbitLength - 1)
		return
	case "]":
		s.setMaxIters(s.shared.MaxIters * 2)
		return
	case "[":
		s.setMaxIters(s.shared.MaxIters / 2)
		return
	}

	v := s.hovered()
	if v == nil {
		mandel.Logger().Debug("key ignored, no view under pointer", "key", k)
		return
	}
	switch k {
	case "c":
		s.pick(v)
	case "r":
		s.reset(v)
	case "+", "=":
		s.recenter(v, 2)
	case "-":
		s.recenter(v, 0.5)
	default:
		mandel.Logger().Debug("unbound key", "key", k)
	}
}

func (s *Session) hovered() *view {
	for _, v := range s.views {
		if v.ctl.Hovered() {
			return v
		}
	}
	return nil
}

// pick sets the Julia parameter from the Mandelbrot view, or the orbit
// seed from the Julia view, to the point under the pointer.
func (s *Session) pick(v *view) {
	z, ok := v.ctl.PointerComplex()
	if !ok {
		return
	}
	julia := s.views[Julia]
	if v.id == Mandelbrot {
		s.shared.JuliaParam = z
		mandel.Logger().Info("julia parameter selected", "c", z)
		s.recompute(julia)
		s.present(v)
		s.present(julia)
		return
	}
	s.shared.OrbitSeed = z
	mandel.Logger().Info("orbit seed selected", "seed", z)
	s.present(julia)
}

func (s *Session) reset(v *view) {
	v.ctl.Cancel()
	v.zoom.Stop()
	v.vp.Reset()
	v.display = v.vp.Mapper()
	mandel.Logger().Info("viewport reset", "view", v.id)
	s.recompute(v)
	s.present(v)
}

// recenter moves the view center under the pointer and scales by factor.
func (s *Session) recenter(v *view, factor float64) {
	z, ok := v.ctl.PointerComplex()
	if !ok {
		return
	}
	v.ctl.Cancel()
	v.zoom.Stop()
	if err := v.vp.Recenter(z, factor); err != nil {
		mandel.Logger().Warn("recenter rejected", "view", v.id, "err", err)
		return
	}
	v.display = v.vp.Mapper()
	mandel.Logger().Info("viewport recentered", "view", v.id, "center", z, "ppu", v.vp.PixelsPerUnit())
	s.recompute(v)
	s.present(v)
}

// setMaxIters stores the clamped budget at once and recomputes both views
// after the typing debounce.
func (s *Session) setMaxIters(n int) {
	c := s.cfg.ClampIters(n)
	if c != n {
		mandel.Logger().Debug("iteration budget clamped", "requested", n, "used", c)
	}
	if c == s.shared.MaxIters {
		return
	}
	s.shared.MaxIters = c
	s.iters.Schedule(s.cfg.ItersDebounce, func() { s.Post(itersDue{}) })
}

// setOrbitLength stores the clamped length and redraws the Julia overlay.
func (s *Session) setOrbitLength(n int) {
	c := s.cfg.ClampOrbit(n)
	if c != n {
		mandel.Logger().Debug("orbit length clamped", "requested", n, "used", c)
	}
	if c == s.shared.OrbitLength {
		return
	}
	s.shared.OrbitLength = c
	s.present(s.views[Julia])
}
