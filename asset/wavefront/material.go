package wavefront

import "github.com/Roy-Fokker/simple-obj-parser/types"

// Material holds the shading parameters of a single "newmtl" block.
type Material struct {
	Name string

	// Ambient, diffuse and specular colors.
	Ambient  types.Vec3
	Diffuse  types.Vec3
	Specular types.Vec3

	// Specular exponent.
	Shininess float32

	// Set by either "Tr" or "d"; the record appearing last wins.
	Transparency float32

	// Illumination model id. The value is not interpreted.
	Illumination uint32

	// Texture map paths. TransparencyTex is set by either "map_Tr" or "map_d".
	AmbientTex      string
	DiffuseTex      string
	SpecularTex     string
	ShininessTex    string
	TransparencyTex string
	BumpTex         string
}

// MaterialLib holds the materials parsed from a wavefront mtl file.
type MaterialLib struct {
	materials []*Material
}

// Materials in file order.
func (l *MaterialLib) Materials() []Material {
	out := make([]Material, len(l.materials))
	for i, mat := range l.materials {
		out[i] = *mat
	}
	return out
}

type materialParser struct {
	doc MaterialLib

	// The material opened by the last "newmtl" record.
	curMaterial *Material
}

// Ensure that a "newmtl" record has been processed before a property record.
func (p *materialParser) current(c *cursor) (*Material, error) {
	if p.curMaterial == nil {
		return nil, c.errorf(ErrOutOfOrderRecord, c.last(), "")
	}
	return p.curMaterial, nil
}

func colorRule(keyword string, field func(*Material) *types.Vec3) rule[materialParser] {
	return func(p *materialParser, c *cursor) error {
		mat, err := p.current(c)
		if err != nil {
			return err
		}
		target := field(mat)
		return c.floats(keyword, target[:])
	}
}

func scalarRule(keyword string, field func(*Material) *float32) rule[materialParser] {
	return func(p *materialParser, c *cursor) error {
		mat, err := p.current(c)
		if err != nil {
			return err
		}
		v, err := c.float(keyword)
		if err != nil {
			return err
		}
		*field(mat) = v
		return nil
	}
}

func textureRule(field func(*Material) *string) rule[materialParser] {
	return func(p *materialParser, c *cursor) error {
		mat, err := p.current(c)
		if err != nil {
			return err
		}
		*field(mat) = c.restOfLine()
		return nil
	}
}

var materialRules = ruleSet[materialParser]{
	"newmtl": func(p *materialParser, c *cursor) error {
		p.curMaterial = &Material{Name: c.restOfLine()}
		p.doc.materials = append(p.doc.materials, p.curMaterial)
		return nil
	},
	"Ka": colorRule("Ka", func(m *Material) *types.Vec3 { return &m.Ambient }),
	"Kd": colorRule("Kd", func(m *Material) *types.Vec3 { return &m.Diffuse }),
	"Ks": colorRule("Ks", func(m *Material) *types.Vec3 { return &m.Specular }),
	"Ns": scalarRule("Ns", func(m *Material) *float32 { return &m.Shininess }),
	"Tr": scalarRule("Tr", func(m *Material) *float32 { return &m.Transparency }),
	"d":  scalarRule("d", func(m *Material) *float32 { return &m.Transparency }),
	"illum": func(p *materialParser, c *cursor) error {
		mat, err := p.current(c)
		if err != nil {
			return err
		}
		mat.Illumination, err = c.uint("illum")
		return err
	},
	"map_Ka":   textureRule(func(m *Material) *string { return &m.AmbientTex }),
	"map_Kd":   textureRule(func(m *Material) *string { return &m.DiffuseTex }),
	"map_Ks":   textureRule(func(m *Material) *string { return &m.SpecularTex }),
	"map_Ns":   textureRule(func(m *Material) *string { return &m.ShininessTex }),
	"map_Tr":   textureRule(func(m *Material) *string { return &m.TransparencyTex }),
	"map_d":    textureRule(func(m *Material) *string { return &m.TransparencyTex }),
	"map_bump": textureRule(func(m *Material) *string { return &m.BumpTex }),
}

// ParseMaterials parses the contents of a wavefront mtl file. Either the
// complete library is returned or a *ParseError describing the first
// problem encountered.
func ParseMaterials(data []byte) (*MaterialLib, error) {
	p := &materialParser{}
	if err := materialRules.run(p, newCursor(data)); err != nil {
		return nil, err
	}
	return &p.doc, nil
}
