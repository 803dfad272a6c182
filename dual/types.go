// Package dual defines the core value types of the forward-mode engine:
// the Number variant set, independent-variable tags, and constructors.
package dual

import (
	"fmt"
	"strings"
)

// VarID is the opaque tag of an independent variable, assigned at seeding
// time. Tags — not names — key the partials mapping, so identically named
// variables in nested scopes can never collide.
type VarID int

// Number is the closed operand set of the engine. Exactly three variants
// implement it: Const (plain scalar), *Dual (value + partials) and
// *Hyper (value + first and second derivative w.r.t. one variable).
// Every operation in this package dispatches explicitly across these
// variants; any other implementation is rejected with ErrUnsupported.
type Number interface {
	// Value returns the nominal scalar carried by the operand.
	Value() complex128

	// number seals the variant set.
	number()
}

// Const is a plain scalar lifted into the operand set. Its partials
// domain is empty: every derivative through a Const is zero.
type Const complex128

// Value returns the wrapped scalar.
func (c Const) Value() complex128 { return complex128(c) }

func (Const) number() {}

// Lift wraps a plain scalar as a Number with empty partials.
// Complexity: O(1).
func Lift(v complex128) Number { return Const(v) }

// Dual is a scalar paired with an ordered mapping of partial derivatives.
// It is immutable once constructed: operations allocate fresh instances
// and never mutate operands. The ids slice fixes the deterministic order
// of the partials domain (first appearance during the computation).
type Dual struct {
	val  complex128
	ids  []VarID
	part map[VarID]complex128
	be   Backend
}

// Var creates a seed: a Dual with the given value whose derivative is 1
// with respect to its own tag and implicitly 0 with respect to every
// other variable. Seeds use the default Complex backend.
// Complexity: O(1).
func Var(id VarID, v complex128) *Dual {
	return VarWith(id, v, nil)
}

// VarWith creates a seed bound to an explicit numeric backend.
// A nil backend means the package default (Complex).
// Complexity: O(1).
func VarWith(id VarID, v complex128, be Backend) *Dual {
	return &Dual{
		val:  v,
		ids:  []VarID{id},
		part: map[VarID]complex128{id: 1},
		be:   be,
	}
}

// Value returns the nominal scalar value.
func (d *Dual) Value() complex128 { return d.val }

func (*Dual) number() {}

// Vars returns the partials domain in its deterministic order.
// The returned slice is a copy; mutating it cannot affect d.
// Complexity: O(k) for k variables.
func (d *Dual) Vars() []VarID {
	out := make([]VarID, len(d.ids))
	copy(out, d.ids)

	return out
}

// Partial returns the derivative with respect to id. Variables absent
// from the dependency path report zero.
// Complexity: O(1).
func (d *Dual) Partial(id VarID) complex128 { return d.part[id] }

// Gradient returns the partials in the order given by ids; variables
// absent from the domain contribute zero entries.
// Complexity: O(len(ids)).
func (d *Dual) Gradient(ids []VarID) []complex128 {
	out := make([]complex128, len(ids))
	for i, id := range ids {
		out[i] = d.part[id]
	}

	return out
}

// String renders the value and partials in domain order, e.g.
// "(21+0i); ∂0=(6+0i) ∂1=(3+0i)". Intended for debugging only.
func (d *Dual) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v;", d.val)
	for _, id := range d.ids {
		fmt.Fprintf(&sb, " ∂%d=%v", id, d.part[id])
	}

	return sb.String()
}

// Promote returns n as a *Dual whose partials domain is exactly ids, in
// the given order; partials absent from n are zero. Const promotes to an
// all-zero gradient. *Hyper cannot be promoted (its derivative is tied
// to a single variable, not a domain) and yields ErrUnsupported.
// Complexity: O(len(ids)).
func Promote(n Number, ids []VarID) (*Dual, error) {
	switch t := n.(type) {
	case Const:
		out := &Dual{val: complex128(t), ids: cloneIDs(ids), part: make(map[VarID]complex128, len(ids))}
		for _, id := range ids {
			out.part[id] = 0
		}

		return out, nil
	case *Dual:
		out := &Dual{val: t.val, ids: cloneIDs(ids), part: make(map[VarID]complex128, len(ids)), be: t.be}
		for _, id := range ids {
			out.part[id] = t.part[id]
		}

		return out, nil
	case *Hyper:
		return nil, fmt.Errorf("Promote: hyperdual operand: %w", ErrUnsupported)
	default:
		return nil, fmt.Errorf("Promote: operand kind %T: %w", n, ErrUnsupported)
	}
}

// Hyper carries a value together with the first and second derivative
// with respect to a single independent variable. It is the engine's
// restricted "dual-of-dual": seeding one variable as a Hyper and running
// a computation propagates f, f′ and f″ together. Mixed second partials
// are outside its reach.
type Hyper struct {
	val complex128
	d1  complex128
	d2  complex128
	be  Backend
}

// HyperVar seeds a Hyper at value v: first derivative 1, second 0.
// Complexity: O(1).
func HyperVar(v complex128) *Hyper {
	return HyperVarWith(v, nil)
}

// HyperVarWith seeds a Hyper bound to an explicit backend (nil = default).
// Complexity: O(1).
func HyperVarWith(v complex128, be Backend) *Hyper {
	return &Hyper{val: v, d1: 1, be: be}
}

// Value returns the nominal scalar value.
func (h *Hyper) Value() complex128 { return h.val }

func (*Hyper) number() {}

// First returns the first derivative component.
func (h *Hyper) First() complex128 { return h.d1 }

// Second returns the second derivative component.
func (h *Hyper) Second() complex128 { return h.d2 }

// cloneIDs copies a VarID slice so results never alias caller storage.
func cloneIDs(ids []VarID) []VarID {
	out := make([]VarID, len(ids))
	copy(out, ids)

	return out
}
