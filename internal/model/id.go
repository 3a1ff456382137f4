package model

// ID identifies a live simulation entity.
// IDs are issued by world.IDGenerator and never reused.
type ID uint32

// NoID marks an absent entity reference (0 = invalid, same as mock objects).
const NoID ID = 0
