package dual

import (
	"fmt"
)

// Arithmetic on the closed operand set.
//
// Every binary operation accepts any two Numbers and dispatches
// explicitly on the variant pair:
//
//	Const ⊗ Const → Const   (plain scalar arithmetic)
//	Dual  ⊗ Dual  → Dual    (chain rule over the union of domains)
//	Dual  ⊗ Const → Dual    (Const acts as a Dual with empty partials)
//	Hyper ⊗ Hyper → Hyper   (first and second derivative propagation)
//	Hyper ⊗ Const → Hyper
//	Dual  ⊗ Hyper → ErrUnsupported (no defined semantics)
//
// All operations are pure: operands are never mutated, results are
// freshly allocated, and evaluating the same expression twice yields
// bit-identical values.

// kind tags the three operand variants for explicit dispatch.
type kind int

const (
	kindConst kind = iota
	kindDual
	kindHyper
	kindBad
)

// kindOf classifies an operand; anything outside the sealed set is kindBad.
func kindOf(n Number) kind {
	switch n.(type) {
	case Const:
		return kindConst
	case *Dual:
		return kindDual
	case *Hyper:
		return kindHyper
	default:
		return kindBad
	}
}

// asDual views a Const or *Dual operand through the dual path. A Const
// becomes a Dual with empty partials (no allocation of a partials map).
func asDual(n Number) *Dual {
	switch t := n.(type) {
	case Const:
		return &Dual{val: complex128(t)}
	case *Dual:
		return t
	default:
		return nil
	}
}

// asHyper views a Const or *Hyper operand through the hyper path.
func asHyper(n Number) *Hyper {
	switch t := n.(type) {
	case Const:
		return &Hyper{val: complex128(t)}
	case *Hyper:
		return t
	default:
		return nil
	}
}

// route classifies a binary operand pair into the evaluation path.
// Returns kindBad together with an error for sealed-set violations and
// for the undefined Dual ⊗ Hyper combination.
func route(op string, x, y Number) (kind, error) {
	kx, ky := kindOf(x), kindOf(y)
	if kx == kindBad {
		return kindBad, fmt.Errorf("%s: operand kind %T: %w", op, x, ErrUnsupported)
	}
	if ky == kindBad {
		return kindBad, fmt.Errorf("%s: operand kind %T: %w", op, y, ErrUnsupported)
	}
	if (kx == kindDual && ky == kindHyper) || (kx == kindHyper && ky == kindDual) {
		return kindBad, fmt.Errorf("%s: mixing dual and hyperdual operands: %w", op, ErrUnsupported)
	}
	if kx == kindHyper || ky == kindHyper {
		return kindHyper, nil
	}
	if kx == kindDual || ky == kindDual {
		return kindDual, nil
	}

	return kindConst, nil
}

// unionIDs merges two partials domains in first-appearance order:
// all of x's variables, then y's variables not already present.
// The result never aliases operand storage.
func unionIDs(x, y *Dual) []VarID {
	out := make([]VarID, 0, len(x.ids)+len(y.ids))
	out = append(out, x.ids...)
	for _, id := range y.ids {
		if _, ok := x.part[id]; !ok {
			out = append(out, id)
		}
	}

	return out
}

// combine assembles the dual-path result of a binary operation: scalar
// value v, and for every variable in the union of operand domains the
// chain-rule partial df(∂x, ∂y).
func combine(x, y *Dual, v complex128, df func(dx, dy complex128) complex128) *Dual {
	ids := unionIDs(x, y)
	part := make(map[VarID]complex128, len(ids))
	for _, id := range ids {
		part[id] = df(x.part[id], y.part[id])
	}
	be := x.be
	if be == nil {
		be = y.be
	}

	return &Dual{val: v, ids: ids, part: part, be: be}
}

// unary assembles the dual-path result of a unary operation: scalar
// value v, each partial scaled by the chain-rule factor df.
func unary(x *Dual, v, df complex128) *Dual {
	part := make(map[VarID]complex128, len(x.ids))
	for _, id := range x.ids {
		part[id] = df * x.part[id]
	}

	return &Dual{val: v, ids: cloneIDs(x.ids), part: part, be: x.be}
}

// Add returns x + y. Partials add component-wise over the union domain.
// Complexity: O(k) for k variables in the union.
func Add(x, y Number) (Number, error) {
	path, err := route("Add", x, y)
	if err != nil {
		return nil, err
	}
	switch path {
	case kindConst:
		return Const(x.Value() + y.Value()), nil
	case kindHyper:
		hx, hy := asHyper(x), asHyper(y)

		return &Hyper{
			val: hx.val + hy.val,
			d1:  hx.d1 + hy.d1,
			d2:  hx.d2 + hy.d2,
			be:  firstBackend(hx.be, hy.be),
		}, nil
	default:
		dx, dy := asDual(x), asDual(y)

		return combine(dx, dy, dx.val+dy.val, func(a, b complex128) complex128 { return a + b }), nil
	}
}

// Sub returns x − y. Partials subtract component-wise.
// Complexity: O(k).
func Sub(x, y Number) (Number, error) {
	path, err := route("Sub", x, y)
	if err != nil {
		return nil, err
	}
	switch path {
	case kindConst:
		return Const(x.Value() - y.Value()), nil
	case kindHyper:
		hx, hy := asHyper(x), asHyper(y)

		return &Hyper{
			val: hx.val - hy.val,
			d1:  hx.d1 - hy.d1,
			d2:  hx.d2 - hy.d2,
			be:  firstBackend(hx.be, hy.be),
		}, nil
	default:
		dx, dy := asDual(x), asDual(y)

		return combine(dx, dy, dx.val-dy.val, func(a, b complex128) complex128 { return a - b }), nil
	}
}

// Mul returns x · y via the product rule:
// ∂(xy) = x·∂y + y·∂x, and on the hyper path
// (xy)″ = x·y″ + 2·x′·y′ + y·x″.
// Complexity: O(k).
func Mul(x, y Number) (Number, error) {
	path, err := route("Mul", x, y)
	if err != nil {
		return nil, err
	}
	switch path {
	case kindConst:
		return Const(x.Value() * y.Value()), nil
	case kindHyper:
		hx, hy := asHyper(x), asHyper(y)

		return &Hyper{
			val: hx.val * hy.val,
			d1:  hx.val*hy.d1 + hy.val*hx.d1,
			d2:  hx.val*hy.d2 + 2*hx.d1*hy.d1 + hy.val*hx.d2,
			be:  firstBackend(hx.be, hy.be),
		}, nil
	default:
		dx, dy := asDual(x), asDual(y)
		vx, vy := dx.val, dy.val

		return combine(dx, dy, vx*vy, func(a, b complex128) complex128 { return vx*b + vy*a }), nil
	}
}

// Div returns x / y via the quotient rule:
// ∂(x/y) = (y·∂x − x·∂y) / y².
// A zero-valued denominator yields ErrDomain.
// Complexity: O(k).
func Div(x, y Number) (Number, error) {
	path, err := route("Div", x, y)
	if err != nil {
		return nil, err
	}
	if y.Value() == 0 {
		return nil, fmt.Errorf("Div: zero-valued denominator: %w", ErrDomain)
	}
	switch path {
	case kindConst:
		return Const(x.Value() / y.Value()), nil
	case kindHyper:
		hx, hy := asHyper(x), asHyper(y)
		// 1/y first, then the product rule: keeps the second-derivative
		// algebra in one place.
		inv := recipHyper(hy)

		return Mul(hx, inv)
	default:
		dx, dy := asDual(x), asDual(y)
		vx, vy := dx.val, dy.val

		return combine(dx, dy, vx/vy, func(a, b complex128) complex128 {
			return (vy*a - vx*b) / (vy * vy)
		}), nil
	}
}

// recipHyper returns 1/h: (1/y)′ = −y′/y², (1/y)″ = 2y′²/y³ − y″/y².
// The caller has already rejected a zero value.
func recipHyper(h *Hyper) *Hyper {
	v := h.val

	return &Hyper{
		val: 1 / v,
		d1:  -h.d1 / (v * v),
		d2:  2*h.d1*h.d1/(v*v*v) - h.d2/(v*v),
		be:  h.be,
	}
}

// Neg returns −x; every derivative component flips sign.
// Complexity: O(k).
func Neg(x Number) (Number, error) {
	switch t := x.(type) {
	case Const:
		return Const(-complex128(t)), nil
	case *Dual:
		return unary(t, -t.val, -1), nil
	case *Hyper:
		return &Hyper{val: -t.val, d1: -t.d1, d2: -t.d2, be: t.be}, nil
	default:
		return nil, fmt.Errorf("Neg: operand kind %T: %w", x, ErrUnsupported)
	}
}

// PowReal returns x**p for a fixed real exponent:
// value from the backend, ∂(x^p) = p·x^(p−1)·∂x, and on the hyper path
// (x^p)″ = p(p−1)·x^(p−2)·x′² + p·x^(p−1)·x″.
// Domain violations (negative real base with non-integer p on the Real
// backend, zero base with p ≤ 0) surface as ErrDomain.
// Complexity: O(k).
func PowReal(x Number, p float64) (Number, error) {
	be := backendOf(x)
	cp := complex(p, 0)
	switch t := x.(type) {
	case Const:
		v, err := be.Pow(complex128(t), cp)
		if err != nil {
			return nil, fmt.Errorf("PowReal: %w", err)
		}

		return Const(v), nil
	case *Dual:
		v, err := be.Pow(t.val, cp)
		if err != nil {
			return nil, fmt.Errorf("PowReal: %w", err)
		}
		d, err := be.Pow(t.val, cp-1)
		if err != nil {
			return nil, fmt.Errorf("PowReal: derivative: %w", err)
		}

		return unary(t, v, cp*d), nil
	case *Hyper:
		v, err := be.Pow(t.val, cp)
		if err != nil {
			return nil, fmt.Errorf("PowReal: %w", err)
		}
		d1, err := be.Pow(t.val, cp-1)
		if err != nil {
			return nil, fmt.Errorf("PowReal: derivative: %w", err)
		}
		d2, err := be.Pow(t.val, cp-2)
		if err != nil {
			return nil, fmt.Errorf("PowReal: second derivative: %w", err)
		}

		return &Hyper{
			val: v,
			d1:  cp * d1 * t.d1,
			d2:  cp*(cp-1)*d2*t.d1*t.d1 + cp*d1*t.d2,
			be:  t.be,
		}, nil
	default:
		return nil, fmt.Errorf("PowReal: operand kind %T: %w", x, ErrUnsupported)
	}
}

// Pow returns x**y for arbitrary operands. A constant real exponent
// takes the PowReal fast path; the general case composes through
// exp(y·log x), so its domain is that of Log on the active backend.
// Complexity: O(k).
func Pow(x, y Number) (Number, error) {
	if _, err := route("Pow", x, y); err != nil {
		return nil, err
	}
	if c, ok := y.(Const); ok && imag(complex128(c)) == 0 {
		return PowReal(x, real(complex128(c)))
	}
	lx, err := Log(x)
	if err != nil {
		return nil, fmt.Errorf("Pow: %w", err)
	}
	e, err := Mul(y, lx)
	if err != nil {
		return nil, fmt.Errorf("Pow: %w", err)
	}

	return Exp(e)
}

// Sqrt returns √x: value from the backend, ∂√x = ∂x / (2√x).
// A zero value with a live derivative has no finite slope and yields
// ErrDomain; on the Real backend a negative value is rejected as well.
// Complexity: O(k).
func Sqrt(x Number) (Number, error) {
	be := backendOf(x)
	switch t := x.(type) {
	case Const:
		v, err := be.Sqrt(complex128(t))
		if err != nil {
			return nil, fmt.Errorf("Sqrt: %w", err)
		}

		return Const(v), nil
	case *Dual:
		if t.val == 0 {
			return nil, fmt.Errorf("Sqrt: zero value, derivative undefined: %w", ErrDomain)
		}
		v, err := be.Sqrt(t.val)
		if err != nil {
			return nil, fmt.Errorf("Sqrt: %w", err)
		}

		return unary(t, v, 1/(2*v)), nil
	case *Hyper:
		if t.val == 0 {
			return nil, fmt.Errorf("Sqrt: zero value, derivative undefined: %w", ErrDomain)
		}

		return PowReal(t, 0.5)
	default:
		return nil, fmt.Errorf("Sqrt: operand kind %T: %w", x, ErrUnsupported)
	}
}

// firstBackend picks the first explicitly bound backend of a pair.
func firstBackend(a, b Backend) Backend {
	if a != nil {
		return a
	}

	return b
}
