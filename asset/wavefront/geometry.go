package wavefront

import (
	"math"
	"strconv"
	"strings"

	"github.com/Roy-Fokker/simple-obj-parser/types"
)

// Group is a named run of faces sharing one material.
type Group struct {
	Name string

	// The name of the material selected by "usemtl"; empty if the group
	// never selects one.
	MaterialName string

	// Position/uv/normal indices for each face vertex. Indices are 0-based;
	// unspecified uv or normal slots hold types.AbsentIndex.
	Indices []types.Uint3
}

// Geometry holds the contents of a parsed wavefront obj file.
type Geometry struct {
	vertices []types.Vec3
	normals  []types.Vec3
	uvs      []types.Vec2
	groups   []*Group
	mtlFiles []string
}

// Vertex positions in file order.
func (g *Geometry) Vertices() []types.Vec3 {
	return cloneSlice(g.vertices)
}

// Vertex normals in file order. Normals are returned exactly as they appear
// in the file.
func (g *Geometry) Normals() []types.Vec3 {
	return cloneSlice(g.normals)
}

// Texture coordinates in file order.
func (g *Geometry) UV() []types.Vec2 {
	return cloneSlice(g.uvs)
}

// Groups in file order, including groups without any faces.
func (g *Geometry) SubMeshList() []Group {
	out := make([]Group, len(g.groups))
	for i, grp := range g.groups {
		out[i] = Group{
			Name:         grp.Name,
			MaterialName: grp.MaterialName,
			Indices:      cloneSlice(grp.Indices),
		}
	}
	return out
}

// Material library file names in the order they are referenced. Duplicate
// references are preserved.
func (g *Geometry) MtlFiles() []string {
	return cloneSlice(g.mtlFiles)
}

type geometryParser struct {
	doc Geometry

	// The most recently opened group; nil until the first "g" record.
	curGroup *Group
}

var geometryRules = ruleSet[geometryParser]{
	"mtllib": func(p *geometryParser, c *cursor) error {
		p.doc.mtlFiles = append(p.doc.mtlFiles, c.restOfLine())
		return nil
	},
	"g": func(p *geometryParser, c *cursor) error {
		p.curGroup = &Group{Name: c.restOfLine()}
		p.doc.groups = append(p.doc.groups, p.curGroup)
		return nil
	},
	"usemtl": func(p *geometryParser, c *cursor) error {
		if p.curGroup == nil {
			return c.errorf(ErrOutOfOrderRecord, "usemtl", "")
		}
		p.curGroup.MaterialName = c.restOfLine()
		return nil
	},
	"f": func(p *geometryParser, c *cursor) error {
		if p.curGroup == nil {
			return c.errorf(ErrOutOfOrderRecord, "f", "")
		}
		return p.parseFace(c.lineCursor())
	},
	"v": func(p *geometryParser, c *cursor) error {
		var v types.Vec3
		if err := c.floats("v", v[:]); err != nil {
			return err
		}
		p.doc.vertices = append(p.doc.vertices, v)
		return nil
	},
	"vn": func(p *geometryParser, c *cursor) error {
		var vn types.Vec3
		if err := c.floats("vn", vn[:]); err != nil {
			return err
		}
		p.doc.normals = append(p.doc.normals, vn)
		return nil
	},
	"vt": func(p *geometryParser, c *cursor) error {
		var vt types.Vec2
		if err := c.floats("vt", vt[:]); err != nil {
			return err
		}
		p.doc.uvs = append(p.doc.uvs, vt)
		return nil
	},
}

// ParseGeometry parses the contents of a wavefront obj file. Either the
// complete document is returned or a *ParseError describing the first
// problem encountered.
func ParseGeometry(data []byte) (*Geometry, error) {
	p := &geometryParser{}
	if err := geometryRules.run(p, newCursor(data)); err != nil {
		return nil, err
	}
	return &p.doc, nil
}

// Parse the face vertex tokens of an "f" record and append them to the
// current group.
func (p *geometryParser) parseFace(c *cursor) error {
	for {
		tok, ok := c.next()
		if !ok {
			return nil
		}

		idx, err := p.parseFaceVertex(tok)
		if err != nil {
			return c.errorf(ErrMalformedNumber, "f", tok)
		}
		p.curGroup.Indices = append(p.curGroup.Indices, idx)
	}
}

// Decode a face vertex token. The following formats are supported:
// - vertexIndex
// - vertexIndex/uvIndex
// - vertexIndex//normalIndex
// - vertexIndex/uvIndex/normalIndex
//
// Indices start from 1 and are stored 0-based. Negative indices count
// backwards from the end of the corresponding list parsed so far.
func (p *geometryParser) parseFaceVertex(tok string) (types.Uint3, error) {
	idx := types.Uint3{types.AbsentIndex, types.AbsentIndex, types.AbsentIndex}
	listLen := [3]int{len(p.doc.vertices), len(p.doc.uvs), len(p.doc.normals)}

	fields := strings.SplitN(tok, "/", 4)
	for slot := 0; slot < len(fields) && slot < 3; slot++ {
		// Only the vertex index is mandatory
		if fields[slot] == "" && slot > 0 {
			continue
		}

		v, err := selectFaceCoordIndex(fields[slot], listLen[slot])
		if err != nil {
			return idx, err
		}
		idx[slot] = v
	}
	return idx, nil
}

// Convert a 1-based (or negative, relative) face index into a 0-based index.
func selectFaceCoordIndex(indexToken string, coordListLen int) (uint32, error) {
	index, err := strconv.ParseInt(indexToken, 10, 64)
	if err != nil {
		return 0, err
	}

	var offset int64
	switch {
	case index > 0:
		offset = index - 1
	case index < 0:
		offset = int64(coordListLen) + index
	}
	if index == 0 || offset < 0 || offset >= math.MaxUint32 {
		return 0, strconv.ErrRange
	}
	return uint32(offset), nil
}

func cloneSlice[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}
