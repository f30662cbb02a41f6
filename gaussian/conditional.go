package gaussian

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/veltanor/hybnet/vars"
)

// Conditional is an immutable linear-Gaussian conditional
//
//	P(F | P) ∝ exp(−½ · ‖R·x_F + Σⱼ Sⱼ·x_Pⱼ − d‖²)
//
// stored as per-key column blocks: rBlocks[i] holds the R columns of the
// i-th frontal key, sBlocks[j] the S block of the j-th parent key. The
// concatenation [R₀|R₁|…] is square.
type Conditional struct {
	frontals []vars.Key
	parents  []vars.Key
	rBlocks  []*mat.Dense
	sBlocks  []*mat.Dense
	d        *mat.VecDense
}

// NewConditional builds a conditional from per-key column blocks. Every
// block must have d.Len() rows, the frontal blocks must jointly be square,
// and keys may not repeat across frontals and parents. Inputs are copied.
//
// Errors: ErrKeyCount, ErrShapeMismatch, ErrBadKey.
func NewConditional(frontals []vars.Key, R []*mat.Dense, parents []vars.Key, S []*mat.Dense, d *mat.VecDense) (*Conditional, error) {
	if len(frontals) == 0 {
		return nil, fmt.Errorf("%w (no frontal keys)", ErrKeyCount)
	}
	if len(frontals) != len(R) {
		return nil, fmt.Errorf("%w (%d frontal keys, %d R blocks)", ErrKeyCount, len(frontals), len(R))
	}
	if len(parents) != len(S) {
		return nil, fmt.Errorf("%w (%d parent keys, %d S blocks)", ErrKeyCount, len(parents), len(S))
	}
	if d == nil {
		return nil, fmt.Errorf("%w (nil rhs)", ErrShapeMismatch)
	}
	rows := d.Len()
	seen := make(map[vars.Key]struct{}, len(frontals)+len(parents))
	checkBlocks := func(keys []vars.Key, blocks []*mat.Dense) (int, error) {
		cols := 0
		for i, k := range keys {
			if _, dup := seen[k]; dup {
				return 0, fmt.Errorf("%w (%s)", ErrBadKey, vars.DefaultKeyFormatter(k))
			}
			seen[k] = struct{}{}
			if blocks[i] == nil {
				return 0, fmt.Errorf("%w (nil block for %s)", ErrShapeMismatch, vars.DefaultKeyFormatter(k))
			}
			r, c := blocks[i].Dims()
			if r != rows {
				return 0, fmt.Errorf("%w (block %s has %d rows, rhs has %d)",
					ErrShapeMismatch, vars.DefaultKeyFormatter(k), r, rows)
			}
			cols += c
		}
		return cols, nil
	}
	rCols, err := checkBlocks(frontals, R)
	if err != nil {
		return nil, err
	}
	if rCols != rows {
		return nil, fmt.Errorf("%w (R is %d×%d, must be square)", ErrShapeMismatch, rows, rCols)
	}
	if _, err = checkBlocks(parents, S); err != nil {
		return nil, err
	}
	c := &Conditional{
		frontals: append([]vars.Key(nil), frontals...),
		parents:  append([]vars.Key(nil), parents...),
		rBlocks:  make([]*mat.Dense, len(R)),
		sBlocks:  make([]*mat.Dense, len(S)),
		d:        mat.VecDenseCopyOf(d),
	}
	for i, blk := range R {
		c.rBlocks[i] = mat.DenseCopyOf(blk)
	}
	for j, blk := range S {
		c.sBlocks[j] = mat.DenseCopyOf(blk)
	}
	return c, nil
}

// NewUnary builds P(x_key) with a single frontal key and no parents.
func NewUnary(key vars.Key, R *mat.Dense, d *mat.VecDense) (*Conditional, error) {
	return NewConditional([]vars.Key{key}, []*mat.Dense{R}, nil, nil, d)
}

// NewWithParent builds P(x_key | x_parent).
func NewWithParent(key vars.Key, R *mat.Dense, parent vars.Key, S *mat.Dense, d *mat.VecDense) (*Conditional, error) {
	return NewConditional([]vars.Key{key}, []*mat.Dense{R}, []vars.Key{parent}, []*mat.Dense{S}, d)
}

// Frontals returns the ordered frontal keys; the slice is the caller's.
func (c *Conditional) Frontals() []vars.Key {
	return append([]vars.Key(nil), c.frontals...)
}

// Parents returns the ordered parent keys; the slice is the caller's.
func (c *Conditional) Parents() []vars.Key {
	return append([]vars.Key(nil), c.parents...)
}

// Dim reports the joint frontal dimension (the row count of R).
func (c *Conditional) Dim() int { return c.d.Len() }

// ToFactor converts to the equivalent factor A = [R | S₁ | … | Sₚ], b = d,
// keyed by frontals then parents. The factor shares no storage with c.
func (c *Conditional) ToFactor() *JacobianFactor {
	keys := make([]vars.Key, 0, len(c.frontals)+len(c.parents))
	keys = append(keys, c.frontals...)
	keys = append(keys, c.parents...)
	blocks := make([]*mat.Dense, 0, len(keys))
	blocks = append(blocks, c.rBlocks...)
	blocks = append(blocks, c.sBlocks...)
	f, err := NewJacobianFactor(keys, blocks, c.d)
	if err != nil {
		// A constructed conditional always satisfies the factor invariants.
		panic(err)
	}
	return f
}

// Error evaluates ½·‖R·x_F + Σⱼ Sⱼ·x_Pⱼ − d‖² at the given values.
//
// Errors: ErrMissingValue, ErrShapeMismatch.
func (c *Conditional) Error(values Values) (float64, error) {
	keys := make([]vars.Key, 0, len(c.frontals)+len(c.parents))
	keys = append(keys, c.frontals...)
	keys = append(keys, c.parents...)
	blocks := make([]*mat.Dense, 0, len(keys))
	blocks = append(blocks, c.rBlocks...)
	blocks = append(blocks, c.sBlocks...)
	r, err := residual(keys, blocks, c.d, values)
	if err != nil {
		return 0, err
	}
	return 0.5 * mat.Dot(r, r), nil
}

// Equal reports near-equality: identical ordered frontal and parent keys,
// identical block shapes, all entries within tol (absolute).
func (c *Conditional) Equal(other *Conditional, tol float64) bool {
	if c == nil || other == nil {
		return c == other
	}
	if !vars.KeysEqual(c.frontals, other.frontals) || !vars.KeysEqual(c.parents, other.parents) {
		return false
	}
	if !shapedEqualApprox(c.d, other.d, tol) {
		return false
	}
	for i := range c.rBlocks {
		if !shapedEqualApprox(c.rBlocks[i], other.rBlocks[i], tol) {
			return false
		}
	}
	for j := range c.sBlocks {
		if !shapedEqualApprox(c.sBlocks[j], other.sBlocks[j], tol) {
			return false
		}
	}
	return true
}

// String renders the conditional deterministically.
func (c *Conditional) String() string {
	var sb strings.Builder
	sb.WriteString("Conditional P(" + vars.FormatKeys(c.frontals, nil))
	if len(c.parents) > 0 {
		sb.WriteString(" | " + vars.FormatKeys(c.parents, nil))
	}
	sb.WriteString(")\n")
	for i, k := range c.frontals {
		fmt.Fprintf(&sb, "  R[%s] =\n%v\n", vars.DefaultKeyFormatter(k),
			mat.Formatted(c.rBlocks[i], mat.Prefix("    "), mat.Squeeze()))
	}
	for j, k := range c.parents {
		fmt.Fprintf(&sb, "  S[%s] =\n%v\n", vars.DefaultKeyFormatter(k),
			mat.Formatted(c.sBlocks[j], mat.Prefix("    "), mat.Squeeze()))
	}
	fmt.Fprintf(&sb, "  d = %v\n", mat.Formatted(c.d.T(), mat.Squeeze()))
	return sb.String()
}
