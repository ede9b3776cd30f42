package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/lumen-render/lumen/pkg/scene"
)

// ListScenes prints the built-in scene presets
func ListScenes(ctx *cli.Context) error {
	setupLogging(ctx)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Description"})
	for _, preset := range scene.Presets() {
		table.Append([]string{preset.Name, preset.Description})
	}
	table.Render()
	return nil
}
