package registry_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvldpp/kernel"
	"github.com/katalvlaran/lvldpp/registry"
	"github.com/katalvlaran/lvldpp/sampler"
)

// Example runs a small campaign end to end: build a kernel, draw a batch,
// record it, then flush for the next experiment.
func Example() {
	// 1) A random rank-6 projection over 10 items (fixed default seed).
	k, err := kernel.RandomProjection(10, 6, nil)
	if err != nil {
		fmt.Println("kernel:", err)
		return
	}

	// 2) Bind an empty registry to the kernel.
	reg, err := registry.New(k, registry.WithCapacity(100))
	if err != nil {
		fmt.Println("registry:", err)
		return
	}

	// 3) Draw the campaign and record it.
	ss, err := sampler.Batch(context.Background(), k, 100,
		sampler.WithStrategyName("Chol"),
		sampler.WithSeed(7),
	)
	if err != nil {
		fmt.Println("batch:", err)
		return
	}
	if err = reg.RecordAll(ss); err != nil {
		fmt.Println("record:", err)
		return
	}
	fmt.Println("recorded:", reg.Len())

	// 4) Flush between independent experiments.
	reg.Reset()
	fmt.Println("after reset:", reg.Len())
	// Output:
	// recorded: 100
	// after reset: 0
}
