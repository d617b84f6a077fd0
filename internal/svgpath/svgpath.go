// Package svgpath adapts the merge core to SVG: it turns `<path d="...">`
// data into the polylines polyweld.Consolidate operates on, and serializes
// consolidated polylines back into `d` attribute data.
//
// Only straight-line path data is understood, matching the core's
// Non-goal of curve fitting: M and L (and their lowercase relative forms)
// build polyline vertices; any other command, or a non-contiguous M,
// terminates the current polyline and starts a new one. There is no
// ecosystem SVG-path-grammar library in reach here, so this package
// hand-rolls the small subset of the grammar the core actually needs,
// using stdlib encoding/xml to walk the document for <path> elements.
package svgpath

import (
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-polyweld/polyweld/pkg/polyweld"
)

// ParseDocument reads an SVG document and returns every polyline formed by
// its <path> elements' straight-line subcommands.
func ParseDocument(r io.Reader) ([]polyweld.Polyline, error) {
	decoder := xml.NewDecoder(r)

	var out []polyweld.Polyline
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("svgpath: reading document: %w", err)
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "path" {
			continue
		}

		d, ok := attr(start, "d")
		if !ok {
			continue
		}

		polylines, err := ParsePathData(d)
		if err != nil {
			return nil, fmt.Errorf("svgpath: parsing path data: %w", err)
		}
		out = append(out, polylines...)
	}
	return out, nil
}

func attr(start xml.StartElement, name string) (string, bool) {
	for _, a := range start.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// ParsePathData parses one `d` attribute's subcommands into polylines,
// splitting at every command that is not a straight-line continuation.
func ParsePathData(d string) ([]polyweld.Polyline, error) {
	tokens, err := tokenizePathData(d)
	if err != nil {
		return nil, err
	}

	var out []polyweld.Polyline
	var current polyweld.Polyline

	flush := func() {
		if len(current) > 0 {
			out = append(out, current)
		}
		current = nil
	}

	for _, tok := range tokens {
		switch tok.command {
		case 'M', 'm':
			if len(current) > 0 && current[len(current)-1] == tok.point {
				// A move to the current end point continues the polyline.
				continue
			}
			flush()
			current = polyweld.Polyline{tok.point}
		case 'L', 'l':
			if len(current) == 0 {
				current = polyweld.Polyline{tok.point}
			} else {
				current = append(current, tok.point)
			}
		case 'Z', 'z':
			if len(current) > 0 {
				current = append(current, current[0])
			}
			flush()
		default:
			// Any curve or arc command terminates the current polyline;
			// its vertices are not representable as straight segments.
			flush()
		}
	}
	flush()

	return out, nil
}

type pathToken struct {
	command byte
	point   polyweld.Point
}

var pathGrammar = regexp.MustCompile(`[MmLlZzCcSsQqTtAaHhVv]|[-+]?[0-9]*\.?[0-9]+(?:[eE][-+]?[0-9]+)?`)

// tokenizePathData splits d into commands and their coordinate arguments,
// tolerant of commas, whitespace, or no separator at all between numbers
// (all valid under the SVG path grammar). Relative commands (m, l) are
// resolved against the running cursor so the caller only ever sees
// absolute points.
func tokenizePathData(d string) ([]pathToken, error) {
	parts := pathGrammar.FindAllString(d, -1)

	var tokens []pathToken
	var cursor, subpathStart polyweld.Point

	i := 0
	for i < len(parts) {
		part := parts[i]
		cmd := part[0]
		if len(part) != 1 || (cmd < 'A' || (cmd > 'Z' && cmd < 'a') || cmd > 'z') {
			return nil, fmt.Errorf("expected command letter, got %q", part)
		}
		i++

		switch cmd {
		case 'M', 'm', 'L', 'l':
			first := true
			for i+1 < len(parts) && isNumber(parts[i]) && isNumber(parts[i+1]) {
				x, errX := strconv.ParseFloat(parts[i], 64)
				y, errY := strconv.ParseFloat(parts[i+1], 64)
				if errX != nil || errY != nil {
					return nil, fmt.Errorf("malformed coordinate near %q", parts[i])
				}
				i += 2

				p := polyweld.Point{X: x, Y: y}
				if cmd == 'm' || cmd == 'l' {
					p = polyweld.Point{X: cursor.X + x, Y: cursor.Y + y}
				}
				cursor = p

				if (cmd == 'M' || cmd == 'm') && first {
					subpathStart = p
					tokens = append(tokens, pathToken{command: 'M', point: p})
				} else {
					tokens = append(tokens, pathToken{command: 'L', point: p})
				}
				first = false
			}
		case 'Z', 'z':
			cursor = subpathStart
			tokens = append(tokens, pathToken{command: 'Z'})
		default:
			// Skip this command's numeric arguments; it terminates the
			// current polyline regardless of how many arguments it takes.
			for i < len(parts) && isNumber(parts[i]) {
				i++
			}
			tokens = append(tokens, pathToken{command: cmd})
		}
	}
	return tokens, nil
}

func isNumber(s string) bool {
	if s == "" {
		return false
	}
	c := s[0]
	return c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9')
}

// WritePathData serializes pl as `M x,y L x,y ...`.
func WritePathData(pl polyweld.Polyline) string {
	var b strings.Builder
	for i, p := range pl {
		if i == 0 {
			fmt.Fprintf(&b, "M%s,%s", trimFloat(p.X), trimFloat(p.Y))
		} else {
			fmt.Fprintf(&b, " L%s,%s", trimFloat(p.X), trimFloat(p.Y))
		}
	}
	return b.String()
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
