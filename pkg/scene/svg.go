package scene

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/go-drift/vectorui/pkg/graphics"
	"github.com/go-drift/vectorui/pkg/surface"
)

// WriteSVG serializes the scene as a standalone SVG document.
func (s *Scene) WriteSVG(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(s.size.Width), num(s.size.Height), num(s.size.Width), num(s.size.Height))
	for _, child := range s.root.children {
		writeNode(bw, child, 1)
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

// SVG returns the document produced by WriteSVG.
func (s *Scene) SVG() string {
	var sb strings.Builder
	_ = s.WriteSVG(&sb)
	return sb.String()
}

func writeNode(w *bufio.Writer, n surface.Node, depth int) {
	indent := strings.Repeat("  ", depth)
	switch v := n.(type) {
	case *Group:
		fmt.Fprintf(w, `%s<g id="%s"%s%s>`+"\n", indent, v.id, translate(v.pos), display(v.hidden))
		for _, child := range v.children {
			writeNode(w, child, depth+1)
		}
		fmt.Fprintf(w, "%s</g>\n", indent)
	case *Shape:
		writeShape(w, v, indent)
	case *Text:
		fmt.Fprintf(w, `%s<text id="%s" x="%s" y="%s" font-family="%s" font-size="%s" font-weight="%d"%s%s>%s</text>`+"\n",
			indent, v.id, num(v.pos.X), num(v.pos.Y+v.baseline()),
			escape(v.font.Family), num(v.font.Size), v.font.Weight,
			paint("fill", v.fill), display(v.hidden), escape(v.text))
	}
}

func writeShape(w *bufio.Writer, s *Shape, indent string) {
	var geom string
	switch s.kind {
	case kindRect:
		geom = fmt.Sprintf(`<rect id="%s" x="%s" y="%s" width="%s" height="%s"`,
			s.id, num(s.pos.X), num(s.pos.Y), num(s.size.Width), num(s.size.Height))
		if s.radius > 0 {
			geom += fmt.Sprintf(` rx="%s"`, num(s.radius))
		}
	case kindCircle:
		r := s.size.Width / 2
		geom = fmt.Sprintf(`<circle id="%s" cx="%s" cy="%s" r="%s"`,
			s.id, num(s.pos.X+r), num(s.pos.Y+r), num(r))
	case kindPath:
		geom = fmt.Sprintf(`<path id="%s" d="%s"%s`, s.id, escape(s.pathData), translate(s.pos))
	}
	var extra strings.Builder
	extra.WriteString(paint("fill", s.fill))
	if s.stroke.Width > 0 {
		extra.WriteString(paint("stroke", s.stroke.Color))
		fmt.Fprintf(&extra, ` stroke-width="%s"`, num(s.stroke.Width))
	}
	if s.opacity < 1 {
		fmt.Fprintf(&extra, ` opacity="%s"`, num(s.opacity))
	}
	if len(s.attrs) > 0 {
		names := make([]string, 0, len(s.attrs))
		for name := range s.attrs {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&extra, ` %s="%s"`, name, escape(s.attrs[name]))
		}
	}
	extra.WriteString(display(s.hidden))
	fmt.Fprintf(w, "%s%s%s/>\n", indent, geom, extra.String())
}

func paint(name string, c graphics.Color) string {
	if c.IsTransparent() {
		return fmt.Sprintf(` %s="none"`, name)
	}
	out := fmt.Sprintf(` %s="%s"`, name, c.Hex())
	if a := c.Alpha(); a < 1 {
		out += fmt.Sprintf(` %s-opacity="%s"`, name, num(a))
	}
	return out
}

func translate(p graphics.Offset) string {
	if p.X == 0 && p.Y == 0 {
		return ""
	}
	return fmt.Sprintf(` transform="translate(%s,%s)"`, num(p.X), num(p.Y))
}

func display(hidden bool) string {
	if hidden {
		return ` display="none"`
	}
	return ""
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(s string) string {
	var sb strings.Builder
	_ = xml.EscapeText(&sb, []byte(s))
	return sb.String()
}
