package infomax_test

import (
	"fmt"

	"github.com/katalvlaran/lvica/infomax"
)

// ExampleBlocks shows how a sweep cuts 305 samples into mini-batches.
func ExampleBlocks() {
	perm := make([]int, 305)
	for i := range perm {
		perm[i] = i
	}
	blocks := infomax.Blocks(perm, infomax.BlockSize(len(perm)))
	fmt.Printf("block size=%d blocks=%d last=%d\n", infomax.BlockSize(305), len(blocks), len(blocks[len(blocks)-1]))
	// Output: block size=10 blocks=31 last=5
}

// ExampleDecodeConfig overrides two constants from YAML.
func ExampleDecodeConfig() {
	cfg, err := infomax.DecodeConfig([]byte("max_steps: 1000\nanneal_angle: 45\n"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(cfg.MaxSteps, cfg.AnnealAngle, cfg.Anneal)
	// Output: 1000 45 0.9
}
