package ml

import (
	"fmt"
	"slices"
)

const defaultMinSamplesSplit = 2

// DecisionTree is a CART classifier using gini impurity. Every midpoint
// between consecutive distinct values of every feature is a split candidate;
// ties keep the first feature and the lowest threshold.
type DecisionTree struct {
	MaxDepth        int // 0 means unlimited
	MinSamplesSplit int

	nodes       []treeNode
	importances []float64
}

type treeNode struct {
	feature   int
	threshold float64
	left      int
	right     int
	leaf      bool
	positive  float64 // share of class 1 among the node samples
	samples   int
}

func NewDecisionTree(maxDepth int) *DecisionTree {
	return &DecisionTree{
		MaxDepth:        maxDepth,
		MinSamplesSplit: defaultMinSamplesSplit,
	}
}

func (t *DecisionTree) Fit(X [][]float64, y []int) error {
	nFeatures, err := validate(X, y, false)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	b := treeBuilder{
		X:               X,
		y:               y,
		maxDepth:        t.MaxDepth,
		minSamplesSplit: max(t.MinSamplesSplit, defaultMinSamplesSplit),
		importances:     make([]float64, nFeatures),
	}

	indices := make([]int, len(X))
	for i := range indices {
		indices[i] = i
	}

	b.build(indices, 0)

	var total float64
	for _, v := range b.importances {
		total += v
	}

	if total > 0 {
		for i := range b.importances {
			b.importances[i] /= total
		}
	}

	t.nodes = b.nodes
	t.importances = b.importances

	return nil
}

func (t *DecisionTree) leaf(x []float64) (treeNode, bool) {
	if len(t.nodes) == 0 || len(x) != len(t.importances) {
		return treeNode{}, false
	}

	node := t.nodes[0]
	for !node.leaf {
		if x[node.feature] <= node.threshold {
			node = t.nodes[node.left]
		} else {
			node = t.nodes[node.right]
		}
	}

	return node, true
}

func (t *DecisionTree) PredictProba(x []float64) (float64, float64) {
	node, ok := t.leaf(x)
	if !ok {
		return 0, 0
	}

	return 1 - node.positive, node.positive
}

// FeatureImportances is the total weighted gini decrease per feature,
// normalised to sum to 1. All zeros when the tree is a single leaf.
func (t *DecisionTree) FeatureImportances() []float64 {
	return slices.Clone(t.importances)
}

func (t *DecisionTree) Depth() int {
	if len(t.nodes) == 0 {
		return 0
	}

	return t.depth(0)
}

func (t *DecisionTree) depth(i int) int {
	node := t.nodes[i]
	if node.leaf {
		return 0
	}

	return 1 + max(t.depth(node.left), t.depth(node.right))
}

func (t *DecisionTree) Leaves() int {
	var n int

	for _, node := range t.nodes {
		if node.leaf {
			n++
		}
	}

	return n
}

type treeBuilder struct {
	X               [][]float64
	y               []int
	maxDepth        int
	minSamplesSplit int
	nodes           []treeNode
	importances     []float64
}

type split struct {
	feature   int
	threshold float64
	impurity  float64 // weighted child impurity, sum of n_child * gini_child
	found     bool
}

// build appends the subtree for indices and returns the index of its root.
func (b *treeBuilder) build(indices []int, depth int) int {
	positives := 0
	for _, i := range indices {
		positives += b.y[i]
	}

	n := len(indices)
	id := len(b.nodes)

	b.nodes = append(b.nodes, treeNode{
		leaf:     true,
		positive: float64(positives) / float64(n),
		samples:  n,
	})

	if positives == 0 || positives == n || n < b.minSamplesSplit || (b.maxDepth > 0 && depth >= b.maxDepth) {
		return id
	}

	parentImpurity := float64(n) * gini(positives, n)

	// A split without impurity decrease is still taken, XOR-like data needs it.
	best := b.bestSplit(indices)
	if !best.found {
		return id
	}

	b.importances[best.feature] += max(parentImpurity-best.impurity, 0)

	var left, right []int

	for _, i := range indices {
		if b.X[i][best.feature] <= best.threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	leftID := b.build(left, depth+1)
	rightID := b.build(right, depth+1)

	b.nodes[id] = treeNode{
		feature:   best.feature,
		threshold: best.threshold,
		left:      leftID,
		right:     rightID,
		positive:  b.nodes[id].positive,
		samples:   n,
	}

	return id
}

func (b *treeBuilder) bestSplit(indices []int) split {
	var best split

	n := len(indices)
	totalPositives := 0

	for _, i := range indices {
		totalPositives += b.y[i]
	}

	sorted := make([]int, n)

	for feature := range b.importances {
		copy(sorted, indices)
		slices.SortStableFunc(sorted, func(a, c int) int {
			switch va, vc := b.X[a][feature], b.X[c][feature]; {
			case va < vc:
				return -1
			case va > vc:
				return 1
			default:
				return 0
			}
		})

		leftPositives := 0

		for k := 0; k < n-1; k++ {
			leftPositives += b.y[sorted[k]]

			current, next := b.X[sorted[k]][feature], b.X[sorted[k+1]][feature]
			if current == next {
				continue
			}

			nLeft, nRight := k+1, n-k-1
			impurity := float64(nLeft)*gini(leftPositives, nLeft) +
				float64(nRight)*gini(totalPositives-leftPositives, nRight)

			if !best.found || impurity < best.impurity {
				best = split{
					feature:   feature,
					threshold: current + (next-current)/2, //nolint:mnd
					impurity:  impurity,
					found:     true,
				}
			}
		}
	}

	return best
}

func gini(positives, n int) float64 {
	if n == 0 {
		return 0
	}

	p := float64(positives) / float64(n)

	return 1 - p*p - (1-p)*(1-p)
}
