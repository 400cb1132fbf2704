package scene

// Object is the handle animations mutate. The renderer owns the mesh; this is
// only its transform.
type Object struct {
	Name     string
	Kind     Kind
	Position Vector3
	Rotation Vector3
	Scale    float64
}

// NewObject creates an instance of an Object at the origin with unit scale.
func NewObject(name string, kind Kind) *Object {
	o := new(Object)
	o.Name = name
	o.Kind = kind
	o.Scale = 1
	return o
}

// ObjectState is a copy of an Object's transform at one instant.
type ObjectState struct {
	Name     string  `json:"name"`
	Position Vector3 `json:"position"`
	Rotation Vector3 `json:"rotation"`
	Scale    float64 `json:"scale"`
}

// State copies the object's transform.
func (o *Object) State() ObjectState {
	return ObjectState{
		Name:     o.Name,
		Position: o.Position,
		Rotation: o.Rotation,
		Scale:    o.Scale,
	}
}
