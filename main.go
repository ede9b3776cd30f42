package main

import (
	"os"

	"github.com/urfave/cli"

	"github.com/lumen-render/lumen/cmd"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "lumen"
	app.Usage = "render scenes using path tracing"
	app.Version = "0.1.0"
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
			Name:  "render",
			Usage: "render a built-in scene to a PNG file",
			Description: `
Render a single frame of one of the built-in scenes. Settings come from an
optional YAML configuration file; any flag given explicitly overrides the
matching configuration value.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "config, c",
					Usage: "path to a YAML configuration file",
				},
				cli.StringFlag{
					Name:  "scene, s",
					Usage: "name of the scene preset to render",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "bounces",
					Usage: "maximum path depth",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "number of render workers, 0 uses one per CPU",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "random seed, 0 derives one from the clock",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "image filename for the rendered frame",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scene presets",
			Action: cmd.ListScenes,
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}
