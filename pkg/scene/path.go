package scene

import (
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-drift/vectorui/pkg/graphics"
)

// pathBounds returns the box enclosing every point visited by the move,
// line, horizontal, vertical and close commands in d. Curve commands are
// bounded by their control and end points. Malformed data yields an empty rect.
func pathBounds(d string) graphics.Rect {
	tokens := tokenizePath(d)
	var (
		cmd        byte
		cur, start graphics.Offset
		minX       = math.Inf(1)
		minY       = math.Inf(1)
		maxX       = math.Inf(-1)
		maxY       = math.Inf(-1)
	)
	visit := func(p graphics.Offset) {
		minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
		maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
	}
	nums := func(i, n int) ([]float64, bool) {
		if i+n > len(tokens) {
			return nil, false
		}
		out := make([]float64, n)
		for k := 0; k < n; k++ {
			v, err := strconv.ParseFloat(tokens[i+k], 64)
			if err != nil {
				return nil, false
			}
			out[k] = v
		}
		return out, true
	}

	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if len(tok) == 1 && unicode.IsLetter(rune(tok[0])) {
			cmd = tok[0]
			i++
			if cmd == 'Z' || cmd == 'z' {
				cur = start
			}
			continue
		}
		rel := cmd >= 'a' && cmd <= 'z'
		base := graphics.Offset{}
		if rel {
			base = cur
		}
		switch unicode.ToUpper(rune(cmd)) {
		case 'M', 'L', 'T':
			v, ok := nums(i, 2)
			if !ok {
				return graphics.Rect{}
			}
			cur = base.Add(graphics.Offset{X: v[0], Y: v[1]})
			if cmd == 'M' || cmd == 'm' {
				start = cur
			}
			visit(cur)
			i += 2
		case 'H':
			v, ok := nums(i, 1)
			if !ok {
				return graphics.Rect{}
			}
			cur.X = base.X + v[0]
			visit(cur)
			i++
		case 'V':
			v, ok := nums(i, 1)
			if !ok {
				return graphics.Rect{}
			}
			cur.Y = base.Y + v[0]
			visit(cur)
			i++
		case 'Q', 'S':
			v, ok := nums(i, 4)
			if !ok {
				return graphics.Rect{}
			}
			visit(base.Add(graphics.Offset{X: v[0], Y: v[1]}))
			cur = base.Add(graphics.Offset{X: v[2], Y: v[3]})
			visit(cur)
			i += 4
		case 'C':
			v, ok := nums(i, 6)
			if !ok {
				return graphics.Rect{}
			}
			visit(base.Add(graphics.Offset{X: v[0], Y: v[1]}))
			visit(base.Add(graphics.Offset{X: v[2], Y: v[3]}))
			cur = base.Add(graphics.Offset{X: v[4], Y: v[5]})
			visit(cur)
			i += 6
		default:
			return graphics.Rect{}
		}
	}
	if math.IsInf(minX, 0) {
		return graphics.Rect{}
	}
	return graphics.Rect{Left: minX, Top: minY, Right: maxX, Bottom: maxY}
}

// tokenizePath splits path data into single-letter commands and numbers.
func tokenizePath(d string) []string {
	var (
		tokens []string
		sb     strings.Builder
	)
	flush := func() {
		if sb.Len() > 0 {
			tokens = append(tokens, sb.String())
			sb.Reset()
		}
	}
	for _, r := range d {
		switch {
		case unicode.IsLetter(r) && r != 'e' && r != 'E':
			flush()
			tokens = append(tokens, string(r))
		case r == ',' || unicode.IsSpace(r):
			flush()
		case r == '-' && sb.Len() > 0 && !strings.HasSuffix(sb.String(), "e"):
			flush()
			sb.WriteRune(r)
		default:
			sb.WriteRune(r)
		}
	}
	flush()
	return tokens
}
