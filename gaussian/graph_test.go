package gaussian_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/veltanor/hybnet/gaussian"
	"github.com/veltanor/hybnet/vars"
)

func mustFactor(t *testing.T, keys []vars.Key, a []*mat.Dense, b *mat.VecDense) *gaussian.JacobianFactor {
	t.Helper()
	f, err := gaussian.NewJacobianFactor(keys, a, b)
	require.NoError(t, err)
	return f
}

// TestNewJacobianFactor_Errors exercises the factor construction sentinels.
func TestNewJacobianFactor_Errors(t *testing.T) {
	_, err := gaussian.NewJacobianFactor([]vars.Key{keyX}, nil, vec(1))
	assert.ErrorIs(t, err, gaussian.ErrKeyCount)

	_, err = gaussian.NewJacobianFactor([]vars.Key{keyX}, []*mat.Dense{m11(1)}, nil)
	assert.ErrorIs(t, err, gaussian.ErrShapeMismatch)

	_, err = gaussian.NewJacobianFactor(
		[]vars.Key{keyX, keyX}, []*mat.Dense{m11(1), m11(2)}, vec(1))
	assert.ErrorIs(t, err, gaussian.ErrBadKey)

	_, err = gaussian.NewJacobianFactor(
		[]vars.Key{keyX}, []*mat.Dense{mat.NewDense(2, 1, []float64{1, 2})}, vec(1))
	assert.ErrorIs(t, err, gaussian.ErrShapeMismatch)
}

// TestJacobianFactor_Error verifies the pointwise quadratic error.
func TestJacobianFactor_Error(t *testing.T) {
	// ½·‖x + 3y − 2‖² over two scalar keys.
	f := mustFactor(t, []vars.Key{keyX, keyY}, []*mat.Dense{m11(1), m11(3)}, vec(2))

	e, err := f.Error(gaussian.Values{keyX: vec(2), keyY: vec(1)})
	require.NoError(t, err)
	assert.InDelta(t, 4.5, e, 1e-12, "residual 2+3−2 = 3")

	_, err = f.Error(gaussian.Values{keyX: vec(2)})
	assert.ErrorIs(t, err, gaussian.ErrMissingValue)
}

// TestJacobianFactor_Equal verifies order-sensitive near-equality.
func TestJacobianFactor_Equal(t *testing.T) {
	f := mustFactor(t, []vars.Key{keyX, keyY}, []*mat.Dense{m11(1), m11(3)}, vec(2))
	g := mustFactor(t, []vars.Key{keyX, keyY}, []*mat.Dense{m11(1), m11(3)}, vec(2))
	assert.True(t, f.Equal(g, gaussian.DefaultTol))

	swapped := mustFactor(t, []vars.Key{keyY, keyX}, []*mat.Dense{m11(3), m11(1)}, vec(2))
	assert.False(t, f.Equal(swapped, gaussian.DefaultTol), "key order is part of identity")

	wider := mustFactor(t, []vars.Key{keyX}, []*mat.Dense{mat.NewDense(1, 2, []float64{1, 3})}, vec(2))
	assert.False(t, f.Equal(wider, gaussian.DefaultTol))
}

// TestFactorGraph_Append verifies value semantics: extending one collection
// twice never lets the two extensions share storage.
func TestFactorGraph_Append(t *testing.T) {
	f1 := mustFactor(t, []vars.Key{keyX}, []*mat.Dense{m11(1)}, vec(1))
	f2 := mustFactor(t, []vars.Key{keyY}, []*mat.Dense{m11(2)}, vec(2))
	f3 := mustFactor(t, []vars.Key{keyZ}, []*mat.Dense{m11(3)}, vec(3))

	base := gaussian.FactorGraph{f1}
	withF2 := base.Append(f2)
	withF3 := base.Append(f3)

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, withF2.Len())
	assert.Same(t, f2, withF2[1])
	assert.Same(t, f3, withF3[1], "second Append must not overwrite the first")
}

// TestFactorGraph_Concat verifies concatenation copies both operands.
func TestFactorGraph_Concat(t *testing.T) {
	f1 := mustFactor(t, []vars.Key{keyX}, []*mat.Dense{m11(1)}, vec(1))
	f2 := mustFactor(t, []vars.Key{keyY}, []*mat.Dense{m11(2)}, vec(2))

	a := gaussian.FactorGraph{f1}
	b := gaussian.FactorGraph{f2}

	ab := gaussian.Concat(a, b)
	require.Equal(t, 2, ab.Len())
	assert.Same(t, f1, ab[0])
	assert.Same(t, f2, ab[1])

	// Extending the result must not disturb the operands.
	_ = ab.Append(f1)
	assert.Equal(t, gaussian.FactorGraph{f1}, a)
	assert.Equal(t, gaussian.FactorGraph{f2}, b)

	assert.True(t, gaussian.Concat(nil, nil).Empty())
	assert.Equal(t, 1, gaussian.Concat(a, nil).Len())
}

// TestFactorGraph_Equal verifies order sensitivity and the empty cases.
func TestFactorGraph_Equal(t *testing.T) {
	f1 := mustFactor(t, []vars.Key{keyX}, []*mat.Dense{m11(1)}, vec(1))
	f2 := mustFactor(t, []vars.Key{keyY}, []*mat.Dense{m11(2)}, vec(2))

	g12 := gaussian.FactorGraph{f1, f2}
	g21 := gaussian.FactorGraph{f2, f1}

	assert.True(t, g12.Equal(gaussian.FactorGraph{f1, f2}, gaussian.DefaultTol))
	assert.False(t, g12.Equal(g21, gaussian.DefaultTol), "order matters")
	assert.False(t, g12.Equal(gaussian.FactorGraph{f1}, gaussian.DefaultTol))

	assert.True(t, gaussian.FactorGraph{}.Equal(nil, gaussian.DefaultTol))
	assert.True(t, gaussian.FactorGraph{}.Empty())
}
