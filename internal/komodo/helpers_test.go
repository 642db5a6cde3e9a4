package komodo_test

import (
	. "github.com/onsi/gomega"

	"nucore/internal/core"
	"nucore/internal/coremap"
	"nucore/internal/komodo"
)

func plusCore() *core.Core {
	c, err := core.New("plus", 3, []int{1, 3, 1})
	Expect(err).NotTo(HaveOccurred())
	return c
}

func geometry(c *core.Core, nz int) komodo.Geometry {
	return komodo.Geometry{Core: c, AxialNodes: nz, AssemblyRadialSize: 12, AssemblyNodeSize: 20}
}

func repeatMaps(m *coremap.Map[int], n int) []*coremap.Map[int] {
	out := make([]*coremap.Map[int], n)
	for i := range out {
		out[i] = m
	}
	return out
}
