package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/Roy-Fokker/simple-obj-parser/asset/scene"
	"github.com/Roy-Fokker/simple-obj-parser/asset/scene/reader"
	"github.com/Roy-Fokker/simple-obj-parser/asset/wavefront"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Parse each obj file argument and display scene statistics.
func ShowStats(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() == 0 {
		return errors.New("missing scene file argument")
	}

	for idx := 0; idx < ctx.NArg(); idx++ {
		sc, err := readScene(ctx, ctx.Args().Get(idx))
		if err != nil {
			return err
		}

		logger.Noticef("scene information for %s:\n%s", sc.Path, sc.Stats())
	}

	return nil
}

// Display the materials loaded for an obj file.
func ListMaterials(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := readScene(ctx, ctx.Args().First())
	if err != nil {
		return err
	}

	logger.Noticef("materials:\n%s", materialTable(sc.Materials))
	return nil
}

// Display the groups defined by an obj file.
func ListGroups(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := readScene(ctx, ctx.Args().First())
	if err != nil {
		return err
	}

	logger.Noticef("groups:\n%s", groupTable(sc))
	return nil
}

func readScene(ctx *cli.Context, sceneFile string) (*scene.Scene, error) {
	if !strings.HasSuffix(strings.ToLower(sceneFile), ".obj") {
		return nil, fmt.Errorf("unsupported file %s; expected a .obj file", sceneFile)
	}

	logger.Infof("reading scene: %s", sceneFile)
	return reader.ReadScene(sceneFile, reader.Options{Strict: ctx.Bool("strict")})
}

func materialTable(materials []wavefront.Material) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Name", "Ambient", "Diffuse", "Specular", "Ns", "Tr", "Illum", "Textures"})
	for _, mat := range materials {
		table.Append([]string{
			mat.Name,
			fmt.Sprintf("%v", mat.Ambient),
			fmt.Sprintf("%v", mat.Diffuse),
			fmt.Sprintf("%v", mat.Specular),
			fmt.Sprintf("%.2f", mat.Shininess),
			fmt.Sprintf("%.2f", mat.Transparency),
			fmt.Sprintf("%d", mat.Illumination),
			strings.Join(textures(mat), ", "),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "", "TOTAL", fmt.Sprintf("%d", len(materials))})

	table.Render()
	return buf.String()
}

// List the non-empty texture maps of a material as kind=path pairs.
func textures(mat wavefront.Material) []string {
	var out []string
	for _, tex := range [][2]string{
		{"Ka", mat.AmbientTex},
		{"Kd", mat.DiffuseTex},
		{"Ks", mat.SpecularTex},
		{"Ns", mat.ShininessTex},
		{"d", mat.TransparencyTex},
		{"bump", mat.BumpTex},
	} {
		if tex[1] != "" {
			out = append(out, tex[0]+"="+tex[1])
		}
	}
	return out
}

func groupTable(sc *scene.Scene) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Group", "Material", "Resolved", "Face vertices"})
	for _, grp := range sc.Geometry.SubMeshList() {
		_, resolved := sc.Material(grp.MaterialName)
		table.Append([]string{
			grp.Name,
			grp.MaterialName,
			fmt.Sprintf("%t", resolved),
			fmt.Sprintf("%d", len(grp.Indices)),
		})
	}

	table.Render()
	return buf.String()
}
