package main

import (
	"fmt"
	"os"

	"github.com/Roy-Fokker/simple-obj-parser/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	strictFlag := cli.BoolFlag{
		Name:  "strict",
		Usage: "fail if a referenced material library cannot be loaded",
	}

	app := cli.NewApp()
	app.Name = "objparse"
	app.Usage = "parse wavefront obj scenes and their mtl material libraries"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "stats",
			Usage: "display file statistics for one or more obj files",
			Description: `
Parse each obj file, resolve the material libraries it references relative to
the obj file location and display vertex, normal, uv, group and material counts.

Material libraries that cannot be loaded are reported and skipped unless the
--strict flag is specified.`,
			ArgsUsage: "scene_file1.obj scene_file2.obj ...",
			Flags:     []cli.Flag{strictFlag},
			Action:    cmd.ShowStats,
		},
		{
			Name:      "materials",
			Usage:     "list the materials loaded for an obj file",
			ArgsUsage: "scene_file.obj",
			Flags:     []cli.Flag{strictFlag},
			Action:    cmd.ListMaterials,
		},
		{
			Name:      "groups",
			Usage:     "list the groups defined by an obj file",
			ArgsUsage: "scene_file.obj",
			Flags:     []cli.Flag{strictFlag},
			Action:    cmd.ListGroups,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
