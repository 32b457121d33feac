package symtab

import "github.com/corvidscan/jsurlx/internal/ast"

// PropertyValue is an Object Shape property's value: another tagged
// variant of deferred initializer nodes, a nested shape, or unresolved.
type PropertyValue struct {
	Inits      []*ast.Node
	Shape      *ObjectShape
	Unresolved bool
}

func (p *PropertyValue) addInit(n *ast.Node, policy Policy) {
	p.Unresolved = false
	if policy == Override {
		p.Inits = []*ast.Node{n}
		return
	}
	p.Inits = append(p.Inits, n)
}

// ObjectShape is a recursive mapping from property name to value, built
// from object literals and tracked property assignments on a known
// object symbol.
type ObjectShape struct {
	Properties map[string]*PropertyValue

	// Dynamic collects writes made through a computed key that did not
	// reduce to a literal string, per the "recorded under the unresolved
	// marker" rule; any lookup through a non-literal key resolves here.
	Dynamic *PropertyValue
}

// NewObjectShape returns an empty shape.
func NewObjectShape() *ObjectShape {
	return &ObjectShape{Properties: make(map[string]*PropertyValue)}
}

// Get returns the named property's value, or nil if the shape has no
// record of it.
func (o *ObjectShape) Get(key string) *PropertyValue {
	if o == nil {
		return nil
	}
	return o.Properties[key]
}

// Set records an initializer expression for key under policy, creating the
// property entry if needed.
func (o *ObjectShape) Set(key string, n *ast.Node, policy Policy) {
	if o.Properties == nil {
		o.Properties = make(map[string]*PropertyValue)
	}
	pv, ok := o.Properties[key]
	if !ok {
		pv = &PropertyValue{}
		o.Properties[key] = pv
	}
	pv.addInit(n, policy)
}

// SetShape records a nested Object Shape for key, e.g. `a.b = {...}`.
func (o *ObjectShape) SetShape(key string, shape *ObjectShape) {
	if o.Properties == nil {
		o.Properties = make(map[string]*PropertyValue)
	}
	o.Properties[key] = &PropertyValue{Shape: shape}
}

// SetDynamic records a write through a computed key that did not resolve
// to a literal string.
func (o *ObjectShape) SetDynamic(n *ast.Node, policy Policy) {
	if o.Dynamic == nil {
		o.Dynamic = &PropertyValue{}
	}
	o.Dynamic.addInit(n, policy)
}
