package dtree_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veltanor/hybnet/dtree"
	"github.com/veltanor/hybnet/vars"
)

func add(a, b int) int { return a + b }

// TestApply_SameKeys verifies pointwise combination over a shared key set.
func TestApply_SameKeys(t *testing.T) {
	t1 := mustTree(t, vars.DiscreteKeys{keyA}, []int{1, 2})
	t2 := mustTree(t, vars.DiscreteKeys{keyA}, []int{10, 20})

	sum, err := t1.Apply(t2, add)
	assert.NoError(t, err)

	assert.Equal(t, 11, at(t, sum, vars.Assignment{keyA.Key: 0}))
	assert.Equal(t, 22, at(t, sum, vars.Assignment{keyA.Key: 1}))
	assert.Equal(t, vars.DiscreteKeys{keyA}, sum.Keys())
}

// TestApply_BroadcastDisjoint verifies that keys present in only one
// operand are branched over fully, the other operand's value repeating.
func TestApply_BroadcastDisjoint(t *testing.T) {
	onA := mustTree(t, vars.DiscreteKeys{keyA}, []int{1, 2})
	onB := mustTree(t, vars.DiscreteKeys{keyB}, []int{10, 20, 30})

	sum, err := onA.Apply(onB, add)
	assert.NoError(t, err)

	assert.Equal(t, vars.DiscreteKeys{keyA, keyB}, sum.Keys(), "result spans the union")
	for a := 0; a < keyA.Card; a++ {
		for b := 0; b < keyB.Card; b++ {
			want := (a + 1) + 10*(b+1)
			got := at(t, sum, vars.Assignment{keyA.Key: a, keyB.Key: b})
			assert.Equal(t, want, got, "A=%d B=%d", a, b)
		}
	}
}

// TestApply_BroadcastOverlap verifies the union semantics when key sets
// overlap without nesting.
func TestApply_BroadcastOverlap(t *testing.T) {
	onAB := mustTree(t, vars.DiscreteKeys{keyA, keyB}, []int{0, 1, 2, 100, 101, 102})
	onBC := mustTree(t, vars.DiscreteKeys{keyB, keyC}, []int{10, 20, 30, 40, 50, 60})

	sum, err := onAB.Apply(onBC, add)
	assert.NoError(t, err)
	assert.Equal(t, vars.DiscreteKeys{keyA, keyB, keyC}, sum.Keys())

	for a := 0; a < keyA.Card; a++ {
		for b := 0; b < keyB.Card; b++ {
			for c := 0; c < keyC.Card; c++ {
				asn := vars.Assignment{keyA.Key: a, keyB.Key: b, keyC.Key: c}
				want := (100*a + b) + (10 + 20*b + 10*c)
				assert.Equal(t, want, at(t, sum, asn), "A=%d B=%d C=%d", a, b, c)
			}
		}
	}
}

// TestApply_LeafOperand verifies combining with a constant tree.
func TestApply_LeafOperand(t *testing.T) {
	onA := mustTree(t, vars.DiscreteKeys{keyA}, []int{1, 2})

	sum, err := onA.Apply(dtree.NewLeaf(100, eqInt), add)
	assert.NoError(t, err)
	assert.Equal(t, 101, at(t, sum, vars.Assignment{keyA.Key: 0}))
	assert.Equal(t, 102, at(t, sum, vars.Assignment{keyA.Key: 1}))

	// And the other way round: a constant receiver broadcasts too.
	sum2, err := dtree.NewLeaf(100, eqInt).Apply(onA, add)
	assert.NoError(t, err)
	assert.True(t, sum.Equal(sum2), "addition commutes per assignment")
}

// TestApply_CompressesResult verifies that a combine collapsing all leaves
// to one value yields a single-leaf tree.
func TestApply_CompressesResult(t *testing.T) {
	t1 := mustTree(t, vars.DiscreteKeys{keyA}, []int{1, 2})
	t2 := mustTree(t, vars.DiscreteKeys{keyA}, []int{4, 3})

	sum, err := t1.Apply(t2, add)
	assert.NoError(t, err)

	assert.True(t, sum.IsLeaf(), "constant result must compress away the key")
	assert.Equal(t, 1, sum.NumLeaves())
	assert.Equal(t, 5, at(t, sum, vars.Assignment{}))
	assert.True(t, sum.Equal(dtree.NewLeaf(5, eqInt)))
}

// TestApply_DoesNotMutateOperands verifies purity of Apply.
func TestApply_DoesNotMutateOperands(t *testing.T) {
	t1 := mustTree(t, vars.DiscreteKeys{keyA}, []int{1, 2})
	t2 := mustTree(t, vars.DiscreteKeys{keyB}, []int{10, 20, 30})

	_, err := t1.Apply(t2, add)
	assert.NoError(t, err)

	assert.Equal(t, []int{1, 2}, flatten(t, t1, vars.DiscreteKeys{keyA}))
	assert.Equal(t, []int{10, 20, 30}, flatten(t, t2, vars.DiscreteKeys{keyB}))
}

// TestApply_Errors exercises the operand sentinels.
func TestApply_Errors(t *testing.T) {
	t1 := mustTree(t, vars.DiscreteKeys{keyA}, []int{1, 2})

	_, err := t1.Apply(nil, add)
	assert.ErrorIs(t, err, dtree.ErrNilTree)

	_, err = t1.Apply(t1, nil)
	assert.ErrorIs(t, err, dtree.ErrNilCombine)

	// Same key id, double cardinality on the other side.
	clash := mustTree(t, vars.DiscreteKeys{{Key: keyA.Key, Card: 4}}, []int{1, 2, 3, 4})
	_, err = t1.Apply(clash, add)
	assert.ErrorIs(t, err, dtree.ErrCardinalityClash)
}

// TestMap_TransformsLeaves verifies the unary structural map with a type
// change.
func TestMap_TransformsLeaves(t *testing.T) {
	tree := mustTree(t, vars.DiscreteKeys{keyA, keyB}, []int{0, 1, 2, 3, 4, 5})

	labels, err := dtree.Map(tree, strconv.Itoa, func(a, b string) bool { return a == b })
	assert.NoError(t, err)

	assert.Equal(t, "3", mustAt(t, labels, vars.Assignment{keyA.Key: 1, keyB.Key: 0}))
	assert.Equal(t, tree.Keys(), labels.Keys(), "shape-preserving map keeps keys")
}

// TestMap_RecompressesCoincidingLeaves verifies compression when the map
// makes previously distinct leaves equal.
func TestMap_RecompressesCoincidingLeaves(t *testing.T) {
	tree := mustTree(t, vars.DiscreteKeys{keyA}, []int{1, 2})

	parity, err := dtree.Map(tree, func(v int) int { return v % 2 }, eqInt)
	assert.NoError(t, err)
	assert.Equal(t, 2, parity.NumLeaves(), "1 and 2 differ mod 2")

	squashed, err := dtree.Map(tree, func(int) int { return 0 }, eqInt)
	assert.NoError(t, err)
	assert.True(t, squashed.IsLeaf(), "constant map must collapse the tree")
}

// TestMap_Errors exercises the map sentinels.
func TestMap_Errors(t *testing.T) {
	tree := mustTree(t, vars.DiscreteKeys{keyA}, []int{1, 2})

	_, err := dtree.Map[int, int](nil, func(v int) int { return v }, eqInt)
	assert.ErrorIs(t, err, dtree.ErrNilTree)

	_, err = dtree.Map[int, int](tree, nil, eqInt)
	assert.ErrorIs(t, err, dtree.ErrNilMap)

	_, err = dtree.Map(tree, func(v int) int { return v }, nil)
	assert.ErrorIs(t, err, dtree.ErrNilEq)
}

// TestEqual_ShapeIndependence verifies assignment-based equality across
// construction orders and compression states.
func TestEqual_ShapeIndependence(t *testing.T) {
	ac := vars.DiscreteKeys{keyA, keyC}
	ca := vars.DiscreteKeys{keyC, keyA}

	// Same function, transposed layouts.
	t1 := mustTree(t, ac, []int{5, 5, 7, 7})
	t2 := mustTree(t, ca, []int{5, 7, 5, 7})
	assert.True(t, t1.Equal(t2))
	assert.True(t, t2.Equal(t1))

	// One genuinely different value.
	t3 := mustTree(t, ac, []int{5, 5, 7, 8})
	assert.False(t, t1.Equal(t3))

	// Constant tree against its collapsed form.
	assert.True(t, mustTree(t, ac, []int{4, 4, 4, 4}).Equal(dtree.NewLeaf(4, eqInt)))
}

// TestEqual_CardinalityClash verifies incompatible key spaces never compare
// equal.
func TestEqual_CardinalityClash(t *testing.T) {
	t1 := mustTree(t, vars.DiscreteKeys{keyA}, []int{1, 2})
	t2 := mustTree(t, vars.DiscreteKeys{{Key: keyA.Key, Card: 3}}, []int{1, 2, 3})
	assert.False(t, t1.Equal(t2))
}

// TestEqualFunc_ExplicitPredicate verifies comparison under a predicate
// chosen at call time rather than at construction.
func TestEqualFunc_ExplicitPredicate(t *testing.T) {
	t1 := mustTree(t, vars.DiscreteKeys{keyA}, []int{1, 2})
	t2 := mustTree(t, vars.DiscreteKeys{keyA}, []int{11, 12})

	assert.False(t, t1.Equal(t2))
	assert.True(t, t1.EqualFunc(t2, func(a, b int) bool { return a%10 == b%10 }))
	assert.False(t, t1.EqualFunc(t2, nil))
}

// mustAt evaluates a string tree or fails the test.
func mustAt(t *testing.T, tree *dtree.Tree[string], a vars.Assignment) string {
	t.Helper()
	v, err := tree.At(a)
	assert.NoError(t, err)
	return v
}

// flatten enumerates a tree or fails the test.
func flatten(t *testing.T, tree *dtree.Tree[int], keys vars.DiscreteKeys) []int {
	t.Helper()
	out, err := tree.Flatten(keys)
	assert.NoError(t, err)
	return out
}
