package asset

import "github.com/udisondev/skirmish/internal/geom"

// Template is a sprite sequence as authored, before it is scaled and timed
// for a particular use.
type Template struct {
	Name      string   `yaml:"-"`
	Frames    []string `yaml:"frames"`
	FrameTime float64  `yaml:"frame_time"`
	Loop      bool     `yaml:"loop"`
}

// Length returns natural playback time of the template.
func (t *Template) Length() float64 {
	return float64(len(t.Frames)) * t.FrameTime
}

// Animation is read-only playback data shared by every entity using it.
type Animation struct {
	Name     string
	Frames   []string
	Scale    geom.Vec2
	Duration float64
	Loop     bool
}

// FrameTime returns time spent on each frame.
func (a *Animation) FrameTime() float64 {
	if len(a.Frames) == 0 {
		return 0
	}
	return a.Duration / float64(len(a.Frames))
}

// ToAnimation builds an Animation from a template.
// A non-positive duration keeps the template's natural length.
// A nil loop keeps the template's loop flag.
func ToAnimation(t *Template, scale geom.Vec2, duration float64, loop *bool) *Animation {
	if duration <= 0 {
		duration = t.Length()
	}
	looped := t.Loop
	if loop != nil {
		looped = *loop
	}
	frames := make([]string, len(t.Frames))
	copy(frames, t.Frames)
	return &Animation{
		Name:     t.Name,
		Frames:   frames,
		Scale:    scale,
		Duration: duration,
		Loop:     looped,
	}
}

// AnimationState is the per-entity playback cursor over a shared Animation.
type AnimationState struct {
	Animation *Animation
	Frame     int
	Elapsed   float64
	Finished  bool
}

// NewAnimationState starts playback of a at its first frame.
func NewAnimationState(a *Animation) AnimationState {
	return AnimationState{
		Animation: a,
		Finished:  a == nil || len(a.Frames) == 0,
	}
}

// Advance moves playback forward by dt.
// Non-looping animations stop on their last frame.
func (s *AnimationState) Advance(dt float64) {
	if s.Finished || s.Animation == nil {
		return
	}
	s.Elapsed += dt
	a := s.Animation
	if a.Duration <= 0 {
		s.Frame = len(a.Frames) - 1
		s.Finished = !a.Loop
		return
	}
	if s.Elapsed >= a.Duration {
		if !a.Loop {
			s.Elapsed = a.Duration
			s.Frame = len(a.Frames) - 1
			s.Finished = true
			return
		}
		for s.Elapsed >= a.Duration {
			s.Elapsed -= a.Duration
		}
	}
	s.Frame = min(int(s.Elapsed/a.FrameTime()), len(a.Frames)-1)
}

// Sprite returns the sprite key of the current frame.
func (s *AnimationState) Sprite() string {
	if s.Animation == nil || len(s.Animation.Frames) == 0 {
		return ""
	}
	return s.Animation.Frames[s.Frame]
}
