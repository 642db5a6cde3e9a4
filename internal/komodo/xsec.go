package komodo

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-logr/logr"

	"nucore/internal/domain"
	"nucore/internal/logging"
	"nucore/internal/util/numfmt"
)

// DefaultBurnupLimit is the exposure above which depletion steps are left
// out of the library, in MWd/kgU.
const DefaultBurnupLimit = 80.0

// LibraryOptions controls WriteLibrary.
type LibraryOptions struct {
	NGroups     int
	BurnupLimit float64
	Log         logr.Logger
}

// DefaultLibraryOptions writes two-group libraries up to DefaultBurnupLimit.
func DefaultLibraryOptions() LibraryOptions {
	return LibraryOptions{NGroups: 2, BurnupLimit: DefaultBurnupLimit, Log: logging.Log()}
}

// WriteLibrary writes the cross-section library for runs, one material per
// run and exposure step at or below the burnup limit, numbered from 1 in
// order. It returns the number of materials written.
func WriteLibrary(w io.Writer, runs []domain.DepletionRun, opts LibraryOptions) (int, error) {
	if opts.NGroups < 1 {
		return 0, fmt.Errorf("library needs at least one energy group")
	}
	log := opts.Log
	if log.GetSink() == nil {
		log = logging.Log()
	}

	var materials []string
	for _, run := range runs {
		if run.NGroups != opts.NGroups {
			return 0, fmt.Errorf("run %q has %d groups, library has %d", run.Name, run.NGroups, opts.NGroups)
		}
		exposures := run.Exposures()
		if len(run.Steps) != len(exposures) {
			return 0, fmt.Errorf("run %q has %d steps for %d exposures", run.Name, len(run.Steps), len(exposures))
		}
		for i, exposure := range exposures {
			if exposure > opts.BurnupLimit {
				log.V(logging.DEBUG).Info("Skipping exposure above burnup limit",
					"run", run.Name, "exposure", exposure, "limit", opts.BurnupLimit)
				continue
			}
			lines, err := materialLines(run.Steps[i], opts.NGroups)
			if err != nil {
				return 0, fmt.Errorf("run %q step %d: %w", run.Name, i, err)
			}
			lines[len(lines)-1] += fmt.Sprintf(" ! MAT %d: %s void, exposure: %s %s, power: %s W",
				len(materials)+1, numfmt.Float(run.VoidFraction), numfmt.Float(exposure), run.TimeUnit,
				numfmt.Float(run.Power))
			materials = append(materials, strings.Join(lines, "\n"))
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d  %d    ! Number of groups and number of materials\n", opts.NGroups, len(materials))
	bw.WriteString(columnComment(opts.NGroups) + "\n")
	bw.WriteString(strings.Join(materials, "\n"))
	if err := bw.Flush(); err != nil {
		return 0, err
	}
	return len(materials), nil
}

func columnComment(nGroups int) string {
	var sb strings.Builder
	sb.WriteString("! sigtr    siga    nu*sigf   sigf     chi    ")
	for g := 1; g <= nGroups; g++ {
		if g > 1 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, " sigs_g%d", g)
	}
	return sb.String()
}

func materialLines(set domain.CrossSectionSet, nGroups int) ([]string, error) {
	if len(set.Groups) != nGroups {
		return nil, fmt.Errorf("%d groups, want %d", len(set.Groups), nGroups)
	}
	lines := make([]string, nGroups)
	for g, gc := range set.Groups {
		if len(gc.Scatter) != nGroups {
			return nil, fmt.Errorf("group %d has %d scatter terms, want %d", g+1, len(gc.Scatter), nGroups)
		}
		parts := []string{
			strconv.FormatFloat(gc.Transport, 'f', 6, 64),
			strconv.FormatFloat(gc.Absorption, 'f', 6, 64),
			strconv.FormatFloat(gc.NuFission, 'f', 6, 64),
			strconv.FormatFloat(gc.Fission, 'f', 6, 64),
			strconv.FormatFloat(gc.Chi, 'f', 6, 64),
		}
		for _, s := range gc.Scatter {
			parts = append(parts, strconv.FormatFloat(s, 'f', 6, 64))
		}
		lines[g] = strings.Join(parts, " ")
	}
	return lines, nil
}

// Material is one entry of a cross-section library.
type Material struct {
	Index   int
	Groups  []domain.GroupConstants
	Comment string
}

// Library is a parsed cross-section library.
type Library struct {
	NGroups   int
	Materials []Material
}

// ReadLibrary parses a cross-section library. The comment on a material's
// last line is kept in Material.Comment.
func ReadLibrary(r io.Reader) (*Library, error) {
	sc := bufio.NewScanner(r)
	var lib *Library
	var declared int
	var cur []domain.GroupConstants
	line := 0
	for sc.Scan() {
		line++
		text, comment, _ := strings.Cut(sc.Text(), "!")
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if lib == nil {
			if len(fields) != 2 {
				return nil, malformedInput("line %d: library header needs group and material counts", line)
			}
			counts, err := parseInts(fields)
			if err != nil {
				return nil, err
			}
			if counts[0] < 1 {
				return nil, malformedInput("line %d: group count must be positive", line)
			}
			lib = &Library{NGroups: counts[0]}
			declared = counts[1]
			continue
		}
		if len(fields) != 5+lib.NGroups {
			return nil, malformedInput("line %d: want %d values, got %d", line, 5+lib.NGroups, len(fields))
		}
		v, err := parseFloats(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		cur = append(cur, domain.GroupConstants{
			Transport:  v[0],
			Absorption: v[1],
			NuFission:  v[2],
			Fission:    v[3],
			Chi:        v[4],
			Scatter:    v[5:],
		})
		if len(cur) == lib.NGroups {
			lib.Materials = append(lib.Materials, Material{
				Index:   len(lib.Materials) + 1,
				Groups:  cur,
				Comment: strings.TrimSpace(comment),
			})
			cur = nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if lib == nil {
		return nil, malformedInput("empty library")
	}
	if len(cur) != 0 {
		return nil, malformedInput("last material has %d of %d groups", len(cur), lib.NGroups)
	}
	if len(lib.Materials) != declared {
		return nil, malformedInput("header declares %d materials, found %d", declared, len(lib.Materials))
	}
	return lib, nil
}
