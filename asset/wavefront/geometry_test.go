package wavefront

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/Roy-Fokker/simple-obj-parser/types"
)

func mustParseGeometry(t *testing.T, payload string) *Geometry {
	t.Helper()
	geom, err := ParseGeometry([]byte(payload))
	if err != nil {
		t.Fatal(err)
	}
	return geom
}

func TestParseVertices(t *testing.T) {
	geom := mustParseGeometry(t, "v 1.0 2.0 3.0\nv 4.0 5.0 6.0\n")

	expVertices := []types.Vec3{{1, 2, 3}, {4, 5, 6}}
	if !reflect.DeepEqual(geom.Vertices(), expVertices) {
		t.Fatalf("expected vertices %v; got %v", expVertices, geom.Vertices())
	}
}

func TestParseGroupWithMaterial(t *testing.T) {
	geom := mustParseGeometry(t, "g Cube\nusemtl Wood\nf 1/1/1 2/2/1 3/3/1\n")

	expGroups := []Group{
		{
			Name:         "Cube",
			MaterialName: "Wood",
			Indices:      []types.Uint3{{0, 0, 0}, {1, 1, 0}, {2, 2, 0}},
		},
	}
	if !reflect.DeepEqual(geom.SubMeshList(), expGroups) {
		t.Fatalf("expected groups %v; got %v", expGroups, geom.SubMeshList())
	}
}

func TestParseMaterialLibraries(t *testing.T) {
	geom := mustParseGeometry(t, "mtllib a.mtl\nmtllib b.mtl\nmtllib a.mtl\n")

	expFiles := []string{"a.mtl", "b.mtl", "a.mtl"}
	if !reflect.DeepEqual(geom.MtlFiles(), expFiles) {
		t.Fatalf("expected mtl files %v; got %v", expFiles, geom.MtlFiles())
	}
}

func TestUnknownRecordsAreSkipped(t *testing.T) {
	payload := `
# exported by some tool
s 1
o Ignored 1 2 3
v 1 2 3
vp 0.1 0.2
l 1 2
`
	geom := mustParseGeometry(t, payload)

	if len(geom.Vertices()) != 1 || len(geom.Normals()) != 0 || len(geom.UV()) != 0 {
		t.Fatalf("expected only the single vertex to be parsed; got %d vertices, %d normals, %d uvs", len(geom.Vertices()), len(geom.Normals()), len(geom.UV()))
	}
	if len(geom.SubMeshList()) != 0 || len(geom.MtlFiles()) != 0 {
		t.Fatal("expected unknown records not to create groups or material references")
	}
}

func TestCardinality(t *testing.T) {
	payload := `
v 0 0 0
v 1 0 0
v 0 1 0
vn 1 0 0
vt 0 0
vn 0 1 0
vt 0 1
vn 0 1 0
vt 1 0
vn 0 0 1
`
	geom := mustParseGeometry(t, payload)

	if got := len(geom.Vertices()); got != 3 {
		t.Fatalf("expected 3 vertices; got %d", got)
	}
	if got := len(geom.Normals()); got != 4 {
		t.Fatalf("expected 4 normals; got %d", got)
	}
	if got := len(geom.UV()); got != 3 {
		t.Fatalf("expected 3 uvs; got %d", got)
	}

	expUV := []types.Vec2{{0, 0}, {0, 1}, {1, 0}}
	if !reflect.DeepEqual(geom.UV(), expUV) {
		t.Fatalf("expected uvs %v; got %v", expUV, geom.UV())
	}
}

func TestNormalsArePassedThrough(t *testing.T) {
	geom := mustParseGeometry(t, "vn 0 2 0\n")

	expNormals := []types.Vec3{{0, 2, 0}}
	if !reflect.DeepEqual(geom.Normals(), expNormals) {
		t.Fatalf("expected normals %v; got %v", expNormals, geom.Normals())
	}
}

func TestEmptyGroupsArePreserved(t *testing.T) {
	payload := `
g first
g second
usemtl Stone
f 1 2 3
g third
`
	groups := mustParseGeometry(t, payload).SubMeshList()

	expNames := []string{"first", "second", "third"}
	if len(groups) != len(expNames) {
		t.Fatalf("expected %d groups; got %d", len(expNames), len(groups))
	}
	for idx, grp := range groups {
		if grp.Name != expNames[idx] {
			t.Fatalf("[group %d] expected name %q; got %q", idx, expNames[idx], grp.Name)
		}
	}
	if len(groups[0].Indices) != 0 || len(groups[2].Indices) != 0 {
		t.Fatal("expected first and third groups to have no faces")
	}
	if groups[0].MaterialName != "" || groups[1].MaterialName != "Stone" {
		t.Fatalf("unexpected material names %q, %q", groups[0].MaterialName, groups[1].MaterialName)
	}
	if len(groups[1].Indices) != 3 {
		t.Fatalf("expected second group to have 3 face vertices; got %d", len(groups[1].Indices))
	}
}

func TestFaceVertexFormats(t *testing.T) {
	absent := types.AbsentIndex
	type spec struct {
		in     string
		expOut types.Uint3
	}
	specs := []spec{
		{"5/3/2", types.Uint3{4, 2, 1}},
		{"5//2", types.Uint3{4, absent, 1}},
		{"5/3", types.Uint3{4, 2, absent}},
		{"5", types.Uint3{4, absent, absent}},
		{"5/3/", types.Uint3{4, 2, absent}},
		{"5/3/2/9", types.Uint3{4, 2, 1}},
		// 6 vertices, 4 uvs and 2 normals have been parsed
		{"-1/-1/-1", types.Uint3{5, 3, 1}},
		{"-6/-4/-2", types.Uint3{0, 0, 0}},
	}

	prefix := strings.Repeat("v 0 0 0\n", 6) + strings.Repeat("vt 0 0\n", 4) + strings.Repeat("vn 0 0 1\n", 2) + "g test\n"
	for idx, s := range specs {
		groups := mustParseGeometry(t, prefix+"f "+s.in+"\n").SubMeshList()
		got := groups[0].Indices[0]
		if got != s.expOut {
			t.Fatalf("[spec %d] expected %q to decode to %v; got %v", idx, s.in, s.expOut, got)
		}
	}
}

func TestMalformedFaceVertices(t *testing.T) {
	specs := []string{"x/1/1", "/1/1", "0/1/1", "-4", "1/a/1", "99999999999"}

	for idx, in := range specs {
		_, err := ParseGeometry([]byte("v 0 0 0\nv 0 0 0\nv 0 0 0\ng test\nf 1 2 " + in + "\n"))
		if !errors.Is(err, ErrMalformedNumber) {
			t.Fatalf("[spec %d] expected malformed number error for %q; got %v", idx, in, err)
		}

		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Fatalf("[spec %d] expected a *ParseError; got %T", idx, err)
		}
		if perr.Keyword != "f" || perr.Token != in || perr.Line != 5 {
			t.Fatalf("[spec %d] unexpected error details: %+v", idx, perr)
		}
	}
}

func TestGeometryParseErrors(t *testing.T) {
	type spec struct {
		in         string
		expErr     error
		expKeyword string
		expLine    int
	}
	specs := []spec{
		{"f 1 2 3\n", ErrOutOfOrderRecord, "f", 1},
		{"v 0 0 0\nusemtl Wood\ng cube\n", ErrOutOfOrderRecord, "usemtl", 2},
		{"v 1 2\n", ErrUnexpectedEnd, "v", 1},
		{"v 1 2\n\n\n\n", ErrUnexpectedEnd, "v", 1},
		{"vt 0.5", ErrUnexpectedEnd, "vt", 1},
		{"\n\nvn 1 two 3\n", ErrMalformedNumber, "vn", 3},
		{"v 1 2\nvn 0 0 1\n", ErrMalformedNumber, "v", 2},
		{"v nan inf 1\n", ErrMalformedNumber, "v", 1},
		{"vt 0x1p3 1\n", ErrMalformedNumber, "vt", 1},
	}

	for idx, s := range specs {
		geom, err := ParseGeometry([]byte(s.in))
		if geom != nil {
			t.Fatalf("[spec %d] expected no document to be returned on error", idx)
		}

		var perr *ParseError
		if !errors.As(err, &perr) || !errors.Is(err, s.expErr) {
			t.Fatalf("[spec %d] expected a %v parse error; got %v", idx, s.expErr, err)
		}
		if perr.Keyword != s.expKeyword || perr.Line != s.expLine {
			t.Fatalf("[spec %d] expected error for %q at line %d; got %q at line %d", idx, s.expKeyword, s.expLine, perr.Keyword, perr.Line)
		}
	}
}

func TestGeometrySnapshotsAreIndependent(t *testing.T) {
	geom := mustParseGeometry(t, "mtllib a.mtl\nv 1 2 3\ng cube\nf 1\n")

	verts := geom.Vertices()
	verts[0] = types.Vec3{9, 9, 9}
	groups := geom.SubMeshList()
	groups[0].Name = "changed"
	groups[0].Indices[0] = types.Uint3{7, 7, 7}
	files := geom.MtlFiles()
	files[0] = "changed.mtl"

	if geom.Vertices()[0] != (types.Vec3{1, 2, 3}) {
		t.Fatal("expected vertex list to be unaffected by snapshot mutation")
	}
	grp := geom.SubMeshList()[0]
	if grp.Name != "cube" || grp.Indices[0] != (types.Uint3{0, types.AbsentIndex, types.AbsentIndex}) {
		t.Fatalf("expected group to be unaffected by snapshot mutation; got %+v", grp)
	}
	if geom.MtlFiles()[0] != "a.mtl" {
		t.Fatal("expected mtl file list to be unaffected by snapshot mutation")
	}
}

func TestTruncatedRecordPosition(t *testing.T) {
	_, err := ParseGeometry([]byte("v 0 0 0\n  v 1 2\n\n\n"))

	var perr *ParseError
	if !errors.As(err, &perr) || !errors.Is(err, ErrUnexpectedEnd) {
		t.Fatalf("expected an unexpected end error; got %v", err)
	}
	if perr.Line != 2 || perr.Offset != 10 {
		t.Fatalf("expected error at the truncated record (line 2, offset 10); got line %d, offset %d", perr.Line, perr.Offset)
	}
}

func TestRecordSpillsIntoNextLine(t *testing.T) {
	_, err := ParseGeometry([]byte("v 1 2\nvn 0 0 1\n"))

	var perr *ParseError
	if !errors.As(err, &perr) || !errors.Is(err, ErrMalformedNumber) {
		t.Fatalf("expected a malformed number error; got %v", err)
	}
	if perr.Keyword != "v" || perr.Token != "vn" || perr.Line != 2 || perr.Offset != 6 {
		t.Fatalf("unexpected error details: %+v", perr)
	}
}

func TestFaceWithoutTrailingNewline(t *testing.T) {
	groups := mustParseGeometry(t, "v 0 0 0\nv 1 0 0\nv 0 1 0\ng tri\nf 1 2 3").SubMeshList()

	expIndices := []types.Uint3{
		{0, types.AbsentIndex, types.AbsentIndex},
		{1, types.AbsentIndex, types.AbsentIndex},
		{2, types.AbsentIndex, types.AbsentIndex},
	}
	if len(groups) != 1 || !reflect.DeepEqual(groups[0].Indices, expIndices) {
		t.Fatalf("expected indices %v; got %+v", expIndices, groups)
	}
}
