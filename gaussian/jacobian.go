package gaussian

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/veltanor/hybnet/vars"
)

// JacobianFactor is an immutable linear factor ½·‖Σᵢ Aᵢ·xᵢ − b‖² over the
// ordered keys, one A block per key.
type JacobianFactor struct {
	keys []vars.Key
	a    []*mat.Dense
	b    *mat.VecDense
}

// NewJacobianFactor builds a factor from per-key blocks. All blocks must
// share the row count of b; inputs are copied.
//
// Errors: ErrKeyCount, ErrShapeMismatch, ErrBadKey.
func NewJacobianFactor(keys []vars.Key, a []*mat.Dense, b *mat.VecDense) (*JacobianFactor, error) {
	if len(keys) != len(a) {
		return nil, fmt.Errorf("%w (%d keys, %d blocks)", ErrKeyCount, len(keys), len(a))
	}
	if b == nil {
		return nil, fmt.Errorf("%w (nil rhs)", ErrShapeMismatch)
	}
	rows := b.Len()
	seen := make(map[vars.Key]struct{}, len(keys))
	for i, k := range keys {
		if _, dup := seen[k]; dup {
			return nil, fmt.Errorf("%w (%s)", ErrBadKey, vars.DefaultKeyFormatter(k))
		}
		seen[k] = struct{}{}
		if a[i] == nil {
			return nil, fmt.Errorf("%w (nil block for %s)", ErrShapeMismatch, vars.DefaultKeyFormatter(k))
		}
		if r, _ := a[i].Dims(); r != rows {
			return nil, fmt.Errorf("%w (block %s has %d rows, rhs has %d)",
				ErrShapeMismatch, vars.DefaultKeyFormatter(k), r, rows)
		}
	}
	f := &JacobianFactor{
		keys: append([]vars.Key(nil), keys...),
		a:    make([]*mat.Dense, len(a)),
		b:    mat.VecDenseCopyOf(b),
	}
	for i, blk := range a {
		f.a[i] = mat.DenseCopyOf(blk)
	}
	return f, nil
}

// Keys returns the ordered keys; the slice is the caller's to keep.
func (f *JacobianFactor) Keys() []vars.Key {
	return append([]vars.Key(nil), f.keys...)
}

// Rows reports the residual dimension.
func (f *JacobianFactor) Rows() int { return f.b.Len() }

// Error evaluates ½·‖Σᵢ Aᵢ·xᵢ − b‖² at the given values.
//
// Errors: ErrMissingValue, ErrShapeMismatch.
func (f *JacobianFactor) Error(values Values) (float64, error) {
	r, err := residual(f.keys, f.a, f.b, values)
	if err != nil {
		return 0, err
	}
	return 0.5 * mat.Dot(r, r), nil
}

// Equal reports near-equality: identical ordered keys and shapes, all
// entries within tol (absolute).
func (f *JacobianFactor) Equal(other *JacobianFactor, tol float64) bool {
	if f == nil || other == nil {
		return f == other
	}
	if len(f.keys) != len(other.keys) {
		return false
	}
	for i, k := range f.keys {
		if other.keys[i] != k {
			return false
		}
	}
	if !shapedEqualApprox(f.b, other.b, tol) {
		return false
	}
	for i := range f.a {
		if !shapedEqualApprox(f.a[i], other.a[i], tol) {
			return false
		}
	}
	return true
}

// String renders the factor deterministically, one block per key.
func (f *JacobianFactor) String() string {
	var sb strings.Builder
	sb.WriteString("JacobianFactor on [" + vars.FormatKeys(f.keys, nil) + "]\n")
	for i, k := range f.keys {
		fmt.Fprintf(&sb, "  A[%s] =\n%v\n", vars.DefaultKeyFormatter(k),
			mat.Formatted(f.a[i], mat.Prefix("    "), mat.Squeeze()))
	}
	fmt.Fprintf(&sb, "  b = %v\n", mat.Formatted(f.b.T(), mat.Squeeze()))
	return sb.String()
}

// residual computes Σᵢ blocksᵢ·values[keysᵢ] − b.
func residual(keys []vars.Key, blocks []*mat.Dense, b *mat.VecDense, values Values) (*mat.VecDense, error) {
	r := mat.NewVecDense(b.Len(), nil)
	r.ScaleVec(-1, b)
	var term mat.VecDense
	for i, k := range keys {
		x, ok := values[k]
		if !ok {
			return nil, fmt.Errorf("%w (%s)", ErrMissingValue, vars.DefaultKeyFormatter(k))
		}
		if _, c := blocks[i].Dims(); c != x.Len() {
			return nil, fmt.Errorf("%w (value for %s has length %d, block has %d columns)",
				ErrShapeMismatch, vars.DefaultKeyFormatter(k), x.Len(), c)
		}
		term.MulVec(blocks[i], x)
		r.AddVec(r, &term)
	}
	return r, nil
}

// shapedEqualApprox is mat.EqualApprox guarded by a shape check, so
// differently shaped operands compare unequal instead of panicking.
func shapedEqualApprox(a, b mat.Matrix, tol float64) bool {
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	return mat.EqualApprox(a, b, tol)
}
