package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-stage/stage/pkg/dump"
	"github.com/go-stage/stage/pkg/scenefile"
)

func init() {
	RegisterCommand(&Command{
		Name:  "dump",
		Short: "Print the tree a scene document constructs",
		Long: `Load a scene document and print the constructed tree.

Nodes are printed one per line in paint order, annotated with z-index,
layer membership and visibility.

Flags:
  --color   Colorize output
  --flags   Mark nodes with unconsumed changes`,
		Usage: "stage dump [--color] [--flags] <scene.yaml>",
		Run:   runDump,
	})
}

func runDump(args []string) error {
	dumper, path, err := parseDumpArgs(args)
	if err != nil {
		return err
	}

	scene, err := scenefile.LoadFile(path)
	if err != nil {
		return err
	}
	return dumper.Dump(os.Stdout, scene.Root)
}

func parseDumpArgs(args []string) (*dump.Dumper, string, error) {
	dumper := &dump.Dumper{}
	var paths []string
	for _, arg := range args {
		switch {
		case arg == "--color":
			dumper.Color = true
		case arg == "--flags":
			dumper.ShowFlags = true
		case strings.HasPrefix(arg, "-"):
			return nil, "", fmt.Errorf("unknown flag %q\n\nUsage: stage dump [--color] [--flags] <scene.yaml>", arg)
		default:
			paths = append(paths, arg)
		}
	}
	if len(paths) != 1 {
		return nil, "", fmt.Errorf("exactly one scene file is required\n\nUsage: stage dump [--color] [--flags] <scene.yaml>")
	}
	return dumper, paths[0], nil
}
