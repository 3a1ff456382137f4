package model

import "fmt"

// Status is a timed attachment on a unit.
// Closed set: *ChargeStatus.
type Status interface {
	// Tick decrements remaining time by dt.
	// Returns true while the status is still active.
	Tick(dt float64) bool
	Remaining() float64
	status()
}

// ChargeStatus is attached to a dashing unit. OnContact is fired by the host
// when the unit touches another unit before Time runs out.
type ChargeStatus struct {
	Time      float64
	OnContact Effect
}

func (s *ChargeStatus) status() {}

func (s *ChargeStatus) Tick(dt float64) bool {
	s.Time -= dt
	return s.Time > 0
}

func (s *ChargeStatus) Remaining() float64 {
	return s.Time
}

// TakeOnContact moves the contact effect out of the status.
// Subsequent calls return Noop, so the effect fires at most once.
func (s *ChargeStatus) TakeOnContact() Effect {
	e := s.OnContact
	s.OnContact = Noop{}
	if e == nil {
		return Noop{}
	}
	return e
}

func (s *ChargeStatus) String() string {
	return fmt.Sprintf("Charge(%.2f, %s)", s.Time, KindOf(s.OnContact))
}
