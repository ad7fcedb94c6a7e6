package core

// Shape is a drawable body: *Circle or *Segment
// Consumers switch on the concrete type
type Shape interface {
	shape()
}

func (*Circle) shape()  {}
func (*Segment) shape() {}
