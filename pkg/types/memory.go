package types

// Memory defines the calculator memory register interface
type Memory interface {
	Store(v float64)
	Recall() float64
	Clear()
	Add(v float64)
	Subtract(v float64)
}
