package komodo

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"nucore/internal/core"
	"nucore/internal/domain"
)

const (
	// rowLabelWidth is the width of the label in front of every output row.
	rowLabelWidth = 8
	// dataOffset is the distance from a layer marker to its first data row.
	dataOffset = 2
)

var layerMarker = regexp.MustCompile(`^\s*z\s*=\s*(\d+)`)

// Parser reads the solver's 3D power output. Empty fills the cells outside
// the core footprint.
type Parser struct {
	Empty float64
}

var _ domain.PowerMapParser = Parser{}

// ParsePowerMap parses r with cells outside the footprint set to 0.
func ParsePowerMap(r io.Reader, geom Geometry) ([]*mat.Dense, error) {
	return Parser{}.ParsePowerMap(r, geom)
}

// ParsePowerMapFile parses the output file at path with cells outside the
// footprint set to 0.
func ParsePowerMapFile(path string, geom Geometry) ([]*mat.Dense, error) {
	return Parser{}.ParsePowerMapFile(path, geom)
}

func (p Parser) ParsePowerMapFile(path string, geom Geometry) ([]*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	layers, err := p.ParsePowerMap(f, geom)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return layers, nil
}

// ParsePowerMap returns one size x size grid per axial layer, bottom to top.
// The number of layer blocks must equal geom.AxialNodes, and every block must
// carry exactly one value per occupied cell.
func (p Parser) ParsePowerMap(r io.Reader, geom Geometry) ([]*mat.Dense, error) {
	if err := geom.Validate(); err != nil {
		return nil, err
	}
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	c := geom.Core
	sz := c.Size()
	var blocks [][]float64
	for idx, line := range lines {
		if !layerMarker.MatchString(line) {
			continue
		}
		lo := min(idx+dataOffset, len(lines))
		hi := min(idx+dataOffset+sz, len(lines))
		var vals []float64
		for n, row := range lines[lo:hi] {
			if len(row) <= rowLabelWidth {
				continue
			}
			for _, tok := range strings.Fields(row[rowLabelWidth:]) {
				v, err := strconv.ParseFloat(tok, 64)
				if err != nil {
					return nil, malformedOutput("line %d: %q is not a number", lo+n+1, tok)
				}
				vals = append(vals, v)
			}
		}
		blocks = append(blocks, vals)
	}

	if len(blocks) != geom.AxialNodes {
		return nil, fmt.Errorf("%w: found %d layer blocks, geometry has %d axial nodes",
			ErrLayerCount, len(blocks), geom.AxialNodes)
	}

	out := make([]*mat.Dense, len(blocks))
	for k, vals := range blocks {
		if len(vals) != c.AssemblyCount() {
			return nil, malformedOutput("layer %d has %d values, core has %d assemblies",
				k+1, len(vals), c.AssemblyCount())
		}
		grid, err := core.Expand(c, vals, p.Empty)
		if err != nil {
			return nil, err
		}
		d := mat.NewDense(sz, sz, nil)
		for i, row := range grid {
			d.SetRow(i, row)
		}
		out[k] = d
	}
	return out, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
