package catalog

// Catalog is the immutable node table for one problem instance: a dense
// array of Node indexed by internal id, plus precomputed id-by-kind
// buckets for the iteration the initial-solution builder needs.
type Catalog struct {
	nodes   []Node
	byKind  map[Kind][]int
	byID    map[string]int
}

// NewCatalog builds a Catalog from nodes already assigned dense internal
// ids in [0, len(nodes)). Returns ErrInvalidID / ErrDuplicateID if the
// internal ids are not a permutation of [0, len(nodes)).
func NewCatalog(nodes []Node) (*Catalog, error) {
	n := len(nodes)
	slots := make([]Node, n)
	seen := make([]bool, n)
	byID := make(map[string]int, n)

	for _, node := range nodes {
		if node.Internal < 0 || node.Internal >= n {
			return nil, ErrInvalidID
		}
		if seen[node.Internal] {
			return nil, ErrDuplicateID
		}
		seen[node.Internal] = true
		slots[node.Internal] = node
		byID[node.ID] = node.Internal
	}

	byKind := make(map[Kind][]int, 3)
	for i, node := range slots {
		byKind[node.Kind] = append(byKind[node.Kind], i)
	}

	return &Catalog{nodes: slots, byKind: byKind, byID: byID}, nil
}

// N returns the number of nodes in the catalog.
func (c *Catalog) N() int { return len(c.nodes) }

// Node returns the node at internal id i. Panics if i is out of range,
// matching the teacher's convention of trusting internally-validated
// indices on the hot path (see route.Route, which only ever passes ids
// sourced from this same Catalog).
func (c *Catalog) Node(i int) Node {
	return c.nodes[i]
}

// Lookup resolves a stable user id to its internal id.
func (c *Catalog) Lookup(id string) (int, bool) {
	i, ok := c.byID[id]
	return i, ok
}

// ByKind returns the internal ids of every node of the given kind, in
// ascending internal-id order. The returned slice must not be mutated.
func (c *Catalog) ByKind(k Kind) []int {
	return c.byKind[k]
}
