package cmd

import (
	"fmt"
	"os"

	"github.com/go-stage/stage/pkg/scenefile"
)

func init() {
	RegisterCommand(&Command{
		Name:  "validate",
		Short: "Check scene documents for errors",
		Long: `Load each given scene document and report whether it constructs a
valid tree. Exits non-zero when any document fails.`,
		Usage: "stage validate <scene.yaml...>",
		Run:   runValidate,
	})
}

func runValidate(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("at least one scene file is required\n\nUsage: stage validate <scene.yaml...>")
	}

	failed := 0
	for _, path := range args {
		scene, err := scenefile.LoadFile(path)
		if err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%v\n", err)
			continue
		}
		nodes := len(scene.Nodes)
		fmt.Printf("ok %s (%d nodes, %d layers)\n", path, nodes, len(scene.Layers))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, len(args))
	}
	return nil
}
