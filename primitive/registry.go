package primitive

// Descriptor is the immutable, process-lifetime description of one
// primitive: its dimensionality, numeric domain, and the concrete
// implementation for whichever of Int1D/Int2D/Int3D/Float1D/Float2D/Float3D
// applies. Exactly one of the Int*/Float* fields is non-nil, selected by
// Dim and Domain.
type Descriptor struct {
	ID     ID
	Dim    Dim
	Domain Domain

	Int1  Int1D
	Int2  Int2D
	Int3  Int3D
	Float1 Float1D
	Float2 Float2D
	Float3 Float3D
}

var registry = map[ID]Descriptor{
	IDIntegerTent:     {ID: IDIntegerTent, Dim: D1, Domain: DomainU32, Int1: IntegerTent},
	IDIntegerLogistic: {ID: IDIntegerLogistic, Dim: D1, Domain: DomainU32, Int1: IntegerLogistic},
	IDIntegerSine:     {ID: IDIntegerSine, Dim: D1, Domain: DomainU32, Int1: IntegerSine},
	IDIntegerHenon:    {ID: IDIntegerHenon, Dim: D2, Domain: DomainU32, Int2: IntegerHenon},
	IDIntegerLorenz:   {ID: IDIntegerLorenz, Dim: D3, Domain: DomainU32, Int3: IntegerLorenz},
	IDIntegerChen:     {ID: IDIntegerChen, Dim: D3, Domain: DomainU32, Int3: IntegerChen},
	IDLogistic:        {ID: IDLogistic, Dim: D1, Domain: DomainF64, Float1: Logistic},
	IDTent:            {ID: IDTent, Dim: D1, Domain: DomainF64, Float1: Tent},
	IDSine:            {ID: IDSine, Dim: D1, Domain: DomainF64, Float1: Sine},
	IDHenon:           {ID: IDHenon, Dim: D2, Domain: DomainF64, Float2: Henon},
	IDLorenz:          {ID: IDLorenz, Dim: D3, Domain: DomainF64, Float3: Lorenz},
	IDChen:            {ID: IDChen, Dim: D3, Domain: DomainF64, Float3: Chen},
}

// Describe looks up the descriptor for id. It panics on an unknown ID since
// the set of IDs is closed and fixed at compile time — an unknown ID is a
// programmer error, not a runtime precondition violation a caller supplies
// input for.
func Describe(id ID) Descriptor {
	d, ok := registry[id]
	if !ok {
		panic("primitive: unknown id " + id.String())
	}
	return d
}
