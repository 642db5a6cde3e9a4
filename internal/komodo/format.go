package komodo

import (
	"strconv"
	"strings"
)

// repeat writes n copies of v as "n*v".
func repeat(n int, v string) string { return strconv.Itoa(n) + "*" + v }

// runLength compresses vals into the card's "n*v" notation: 1 1 2 3 3 3
// becomes "2*1 2 3*3".
func runLength(vals []int) string {
	var parts []string
	for i := 0; i < len(vals); {
		j := i
		for j < len(vals) && vals[j] == vals[i] {
			j++
		}
		if n := j - i; n > 1 {
			parts = append(parts, repeat(n, strconv.Itoa(vals[i])))
		} else {
			parts = append(parts, strconv.Itoa(vals[i]))
		}
		i = j
	}
	return strings.Join(parts, " ")
}

// expandTokens reads "n*v" and plain tokens until want values are collected.
// It returns the values and the number of tokens consumed.
func expandTokens(tokens []string, want int) ([]string, int, error) {
	var out []string
	used := 0
	for len(out) < want {
		if used >= len(tokens) {
			return nil, used, malformedInput("expected %d values, found %d", want, len(out))
		}
		tok := tokens[used]
		used++
		if n, v, ok := strings.Cut(tok, "*"); ok {
			count, err := strconv.Atoi(n)
			if err != nil || count < 1 {
				return nil, used, malformedInput("bad repeat count in %q", tok)
			}
			for i := 0; i < count; i++ {
				out = append(out, v)
			}
			continue
		}
		out = append(out, tok)
	}
	if len(out) != want {
		return nil, used, malformedInput("expected %d values, found %d", want, len(out))
	}
	return out, used, nil
}

func parseFloats(vals []string) ([]float64, error) {
	out := make([]float64, len(vals))
	for i, v := range vals {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, malformedInput("%q is not a number", v)
		}
		out[i] = f
	}
	return out, nil
}

func parseInts(vals []string) ([]int, error) {
	out := make([]int, len(vals))
	for i, v := range vals {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, malformedInput("%q is not an integer", v)
		}
		out[i] = n
	}
	return out, nil
}
