package cmd

import (
	"github.com/Roy-Fokker/simple-obj-parser/log"
	"github.com/urfave/cli"
)

var logger = log.New("objparse")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
