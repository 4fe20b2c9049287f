package cmd

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Roy-Fokker/simple-obj-parser/asset/scene"
	"github.com/Roy-Fokker/simple-obj-parser/asset/wavefront"
)

func TestTextures(t *testing.T) {
	mat := wavefront.Material{DiffuseTex: "wood.png", BumpTex: "bump.png"}

	expOut := []string{"Kd=wood.png", "bump=bump.png"}
	if out := textures(mat); !reflect.DeepEqual(out, expOut) {
		t.Fatalf("expected %v; got %v", expOut, out)
	}
}

func TestMaterialTable(t *testing.T) {
	out := materialTable([]wavefront.Material{{Name: "Wood", Illumination: 2, DiffuseTex: "wood.png"}})

	for _, exp := range []string{"Wood", "Kd=wood.png", "TOTAL"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected material table to contain %q; got\n%s", exp, out)
		}
	}
}

func TestGroupTable(t *testing.T) {
	geom, err := wavefront.ParseGeometry([]byte("g Cube\nusemtl Wood\nf 1 2 3\ng Lid\nusemtl Glass\n"))
	if err != nil {
		t.Fatal(err)
	}
	sc := &scene.Scene{
		Geometry:  geom,
		Materials: []wavefront.Material{{Name: "Wood"}},
	}

	out := groupTable(sc)
	for _, exp := range []string{"Cube", "Wood", "true", "Lid", "Glass", "false"} {
		if !strings.Contains(out, exp) {
			t.Fatalf("expected group table to contain %q; got\n%s", exp, out)
		}
	}
}
