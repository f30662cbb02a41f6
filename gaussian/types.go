package gaussian

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/veltanor/hybnet/vars"
)

var (
	// ErrKeyCount signals a key/block count disagreement, or a conditional
	// declared without frontal keys.
	ErrKeyCount = errors.New("gaussian: key/block count mismatch")
	// ErrShapeMismatch signals block dimensions that do not line up.
	ErrShapeMismatch = errors.New("gaussian: block shape mismatch")
	// ErrBadKey signals a duplicate key within one conditional or factor.
	ErrBadKey = errors.New("gaussian: duplicate key")
	// ErrMissingValue signals evaluation against Values lacking a key.
	ErrMissingValue = errors.New("gaussian: missing value for key")
)

// DefaultTol is the absolute tolerance used by near-equality checks when the
// caller does not supply one.
const DefaultTol = 1e-9

// Values assigns a vector to each continuous variable.
type Values map[vars.Key]*mat.VecDense

// Clone returns an independent copy: fresh map, fresh vectors.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, vec := range v {
		out[k] = mat.VecDenseCopyOf(vec)
	}
	return out
}

// Insert returns a copy of v with key set to a copy of vec; v is unchanged.
func (v Values) Insert(key vars.Key, vec *mat.VecDense) Values {
	out := v.Clone()
	out[key] = mat.VecDenseCopyOf(vec)
	return out
}
