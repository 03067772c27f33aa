package dxf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadFile parses all supported entities from the drawing at path.
func ReadFile(path string) ([]Entity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dxf: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	entities, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("dxf: parse %s: %w", path, err)
	}
	return entities, nil
}

// tag is one DXF group code / value pair.
type tag struct {
	code  int
	value string
}

type scanner struct {
	sc   *bufio.Scanner
	line int
}

func newScanner(r io.Reader) *scanner {
	return &scanner{sc: bufio.NewScanner(r)}
}

// next reads one group code / value pair. io.EOF is returned at a clean end
// of input; a dangling group code is an error.
func (s *scanner) next() (tag, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return tag{}, err
		}
		return tag{}, io.EOF
	}
	s.line++
	codeStr := strings.TrimSpace(s.sc.Text())

	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return tag{}, err
		}
		return tag{}, fmt.Errorf("line %d: group code %q without value", s.line, codeStr)
	}
	s.line++

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		return tag{}, fmt.Errorf("line %d: bad group code %q", s.line-1, codeStr)
	}
	return tag{code: code, value: strings.TrimSpace(s.sc.Text())}, nil
}

// Parse reads supported entities from the ENTITIES section of a drawing.
// Unsupported entity kinds are skipped without error.
func Parse(r io.Reader) ([]Entity, error) {
	s := newScanner(r)
	if err := s.seekEntities(); err != nil {
		return nil, err
	}

	var entities []Entity

	cur, err := s.next()
	for {
		if err == io.EOF {
			return entities, nil
		}
		if err != nil {
			return nil, err
		}
		if cur.code != 0 {
			cur, err = s.next()
			continue
		}

		switch cur.value {
		case "ENDSEC", "EOF":
			return entities, nil
		case "POINT", "LINE", "LWPOLYLINE", "CIRCLE", "ARC":
			var e Entity
			e, cur, err = s.entity(cur.value)
			if err != nil && err != io.EOF {
				return nil, err
			}
			entities = append(entities, e)
		case "POLYLINE":
			var e Entity
			e, cur, err = s.polyline()
			if err != nil && err != io.EOF {
				return nil, err
			}
			entities = append(entities, e)
		default:
			cur, err = s.next()
		}
	}
}

// seekEntities advances past the header until the ENTITIES section begins.
func (s *scanner) seekEntities() error {
	inSection := false
	for {
		t, err := s.next()
		if err == io.EOF {
			return fmt.Errorf("no ENTITIES section")
		}
		if err != nil {
			return err
		}
		if t.code == 0 && t.value == "SECTION" {
			inSection = true
			continue
		}
		if inSection && t.code == 2 {
			if t.value == "ENTITIES" {
				return nil
			}
			inSection = false
		}
	}
}

var kindByName = map[string]Kind{
	"POINT":      KindPoint,
	"LINE":       KindLine,
	"LWPOLYLINE": KindLWPolyline,
	"POLYLINE":   KindPolyline,
	"CIRCLE":     KindCircle,
	"ARC":        KindArc,
}

// entity consumes the tags of one simple entity and returns it together with
// the tag that terminated it (the next code 0 tag, or an error/EOF).
func (s *scanner) entity(name string) (Entity, tag, error) {
	e := Entity{Kind: kindByName[name], Color: 256} // 256 = BYLAYER default
	for {
		t, err := s.next()
		if err != nil {
			return e, tag{}, err
		}
		if t.code == 0 {
			return e, t, nil
		}
		if aerr := e.apply(t); aerr != nil {
			return e, tag{}, fmt.Errorf("line %d: %s: %w", s.line, name, aerr)
		}
	}
}

// polyline consumes a POLYLINE entity with its VERTEX children up to SEQEND.
func (s *scanner) polyline() (Entity, tag, error) {
	e, cur, err := s.entity("POLYLINE")
	if err != nil {
		return e, tag{}, err
	}

	for {
		if cur.code != 0 {
			return e, tag{}, fmt.Errorf("line %d: POLYLINE: unexpected group %d", s.line, cur.code)
		}
		switch cur.value {
		case "VERTEX":
			var v Entity
			v, cur, err = s.entity("VERTEX")
			e.Vertices = append(e.Vertices, Vertex{X: v.X, Y: v.Y, Z: v.Z, HasZ: true})
			if err != nil {
				return e, tag{}, err
			}
		case "SEQEND":
			var next tag
			_, next, err = s.entity("SEQEND")
			return e, next, err
		default:
			// Unterminated vertex sequence; treat the entity as complete.
			return e, cur, nil
		}
	}
}

// apply folds one tag into the entity. Field meaning depends on the entity
// kind only where codes collide (group 30 is a Z for most kinds but the base
// elevation of a POLYLINE header).
func (e *Entity) apply(t tag) error {
	switch t.code {
	case 8:
		e.Layer = t.value
		return nil
	case 62:
		c, err := strconv.Atoi(t.value)
		if err != nil {
			return fmt.Errorf("bad color %q", t.value)
		}
		e.Color = c
		return nil
	case 70:
		flags, err := strconv.Atoi(t.value)
		if err != nil {
			return fmt.Errorf("bad flags %q", t.value)
		}
		e.Closed = flags&1 != 0
		return nil
	case 90: // LWPOLYLINE vertex count
		n, err := strconv.Atoi(t.value)
		if err != nil {
			return fmt.Errorf("bad vertex count %q", t.value)
		}
		if n > 0 && e.Vertices == nil {
			e.Vertices = make([]Vertex, 0, n)
		}
		return nil
	}

	v, err := strconv.ParseFloat(t.value, 64)
	if err != nil {
		return fmt.Errorf("bad value %q for group %d", t.value, t.code)
	}

	switch t.code {
	case 10:
		if e.Kind == KindLWPolyline {
			e.Vertices = append(e.Vertices, Vertex{X: v})
		} else if e.Kind == KindLine {
			e.StartX = v
		} else {
			e.X = v
		}
	case 20:
		if e.Kind == KindLWPolyline {
			if len(e.Vertices) > 0 {
				e.Vertices[len(e.Vertices)-1].Y = v
			}
		} else if e.Kind == KindLine {
			e.StartY = v
		} else {
			e.Y = v
		}
	case 30:
		switch e.Kind {
		case KindLine:
			e.StartZ = v
		case KindPolyline:
			e.Elevation = v
		default:
			e.Z = v
		}
	case 11:
		e.EndX = v
	case 21:
		e.EndY = v
	case 31:
		e.EndZ = v
	case 38: // LWPOLYLINE elevation
		e.Elevation = v
	case 42: // bulge, kept apart from Z on purpose
		if e.Kind == KindLWPolyline && len(e.Vertices) > 0 {
			e.Vertices[len(e.Vertices)-1].Bulge = v
		}
	case 40:
		e.Radius = v
	case 50:
		e.StartAngle = v
	case 51:
		e.EndAngle = v
	}
	return nil
}
