package searcher

// NodeCounter tallies visited tree nodes. Implementations are not safe for
// concurrent use.
type NodeCounter interface {
	Visit()
	Nodes() int64
	Reset()
}

type nodeCounter struct {
	nodes int64
}

func NewNodeCounter() NodeCounter {
	return &nodeCounter{}
}

func (c *nodeCounter) Visit() {
	c.nodes++
}

func (c *nodeCounter) Nodes() int64 {
	return c.nodes
}

func (c *nodeCounter) Reset() {
	c.nodes = 0
}

type noNodeCounter struct{}

func NewNoNodeCounter() NodeCounter {
	return noNodeCounter{}
}

func (noNodeCounter) Visit()       {}
func (noNodeCounter) Nodes() int64 { return 0 }
func (noNodeCounter) Reset()       {}
