package scene

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/Roy-Fokker/simple-obj-parser/asset/wavefront"
	"github.com/Roy-Fokker/simple-obj-parser/types"
	"github.com/olekukonko/tablewriter"
)

// A MaterialError records a material library that could not be loaded.
type MaterialError struct {
	// The library name as referenced by the obj file.
	File string
	Err  error
}

func (e *MaterialError) Error() string {
	return fmt.Sprintf("material library %q: %s", e.File, e.Err)
}

func (e *MaterialError) Unwrap() error {
	return e.Err
}

// Scene bundles a parsed obj file with the materials of every library it
// references.
type Scene struct {
	// The path or URL of the obj file.
	Path string

	Geometry *wavefront.Geometry

	// Materials from all referenced libraries, in reference order.
	Materials []wavefront.Material

	// Libraries that failed to load. Materials from other libraries are
	// unaffected.
	MaterialErrors []*MaterialError
}

// Lookup a material by name. If several libraries define the same name the
// first definition is returned.
func (sc *Scene) Material(name string) (wavefront.Material, bool) {
	for _, mat := range sc.Materials {
		if mat.Name == name {
			return mat, true
		}
	}
	return wavefront.Material{}, false
}

// Build a tabular representation of scene statistics.
func (sc *Scene) Stats() string {
	vertices := sc.Geometry.Vertices()
	normals := sc.Geometry.Normals()
	uvs := sc.Geometry.UV()
	groups := sc.Geometry.SubMeshList()

	indices := faceIndices(groups)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Asset Type", "Asset", "Count", "Size"})
	table.Append([]string{"Geometry", "---", "", fmtSize(vertices, normals, uvs)})
	table.Append([]string{"", "Vertices", fmt.Sprint(len(vertices)), fmtSize(vertices)})
	table.Append([]string{"", "Normals", fmt.Sprint(len(normals)), fmtSize(normals)})
	table.Append([]string{"", "UVs", fmt.Sprint(len(uvs)), fmtSize(uvs)})
	table.Append([]string{" ", " ", " ", " "})
	table.Append([]string{"Groups", "---", fmt.Sprint(len(groups)), ""})
	table.Append([]string{"", "Face vertices", fmt.Sprint(len(indices)), fmtSize(indices)})
	table.Append([]string{" ", " ", " ", " "})
	table.Append([]string{"Materials", "---", fmt.Sprint(len(sc.Materials)), ""})
	table.Append([]string{"", "Libraries", fmt.Sprint(len(sc.Geometry.MtlFiles())), ""})
	table.Append([]string{"", "Failed libraries", fmt.Sprint(len(sc.MaterialErrors)), ""})
	table.SetFooter([]string{"Total", " ", " ", strings.TrimLeft(fmtSize(vertices, normals, uvs, indices), " ")})

	table.Render()
	return buf.String()
}

// Flatten the face indices of all groups.
func faceIndices(groups []wavefront.Group) []types.Uint3 {
	out := make([]types.Uint3, 0)
	for _, grp := range groups {
		out = append(out, grp.Indices...)
	}
	return out
}

// Sum the total space used by a set of slices and return back a formatted
// value with the appropriate byte/kb/mb unit.
func fmtSize(items ...interface{}) string {
	var totalBytes float32 = 0.0
	for _, item := range items {
		t := reflect.TypeOf(item)
		v := reflect.ValueOf(item)
		if v.Len() == 0 {
			continue
		}

		totalBytes += float32(int(t.Elem().Size()) * v.Len())
	}

	if totalBytes < 1e3 {
		return fmt.Sprintf("%3d bytes", int(totalBytes))
	} else if totalBytes < 1e6 {
		return fmt.Sprintf("%3.1f kb", totalBytes/1e3)
	}
	return fmt.Sprintf("%5.1f mb", totalBytes/1e6)
}
