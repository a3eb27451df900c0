package core

// Size describes the dimensions of a map grid.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a generator must implement to be driven by
// the app, render and ui layers.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}
