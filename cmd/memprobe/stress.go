package main

import (
	"fmt"
	"math/rand"

	"github.com/spf13/cobra"

	"github.com/RDFacendola/Syntropy-sub001/alloc"
	"github.com/RDFacendola/Syntropy-sub001/memfmt"
	"github.com/RDFacendola/Syntropy-sub001/memory"
)

var (
	stressIterations int
	stressCapacity   int64
	stressSeed       int64
)

func init() {
	cmd := newStressCmd()
	cmd.Flags().IntVar(&stressIterations, "iterations", 10_000, "Allocation rounds to run")
	cmd.Flags().Int64Var(&stressCapacity, "capacity-mib", 64, "Reserved address space in MiB")
	cmd.Flags().Int64Var(&stressSeed, "seed", 1, "PRNG seed for the workload")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stress",
		Short: "Drive the allocator stack under a synthetic workload",
		Long: `The stress command composes the full allocator stack - a virtual page
allocator backing a pool and a linear allocator behind a fallback - and
drives it with a randomized alloc/free workload, printing per-tier
statistics afterwards.

Example:
  memprobe stress --iterations 100000 --capacity-mib 128`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress()
		},
	}
}

func runStress() error {
	capacity := memory.Bytes(stressCapacity) * memory.MiByte

	pages, err := alloc.NewVirtual(capacity, 64*memory.KiByte)
	if err != nil {
		return fmt.Errorf("reserving %s: %w", memfmt.Size(capacity), err)
	}
	defer pages.Close()

	pool := alloc.NewPool(pages, 256, 16, 16*memory.KiByte)
	linear := alloc.NewStack(pages, 16*memory.KiByte)
	stack := alloc.NewFallback(pool, linear)
	defer pool.DeallocateAll()
	defer linear.DeallocateAll()

	log.Debug("stress workload starting",
		"iterations", stressIterations, "capacity", int64(capacity), "seed", stressSeed)

	rng := rand.New(rand.NewSource(stressSeed))
	live := make([]memory.MemoryBlock, 0, 1024)
	for i := 0; i < stressIterations; i++ {
		// Oscillate around a steady live-set size so both the recycle and
		// the carve paths stay busy.
		if len(live) > 0 && rng.Intn(2) == 0 {
			j := rng.Intn(len(live))
			stack.Deallocate(live[j], 16)
			live[j] = live[len(live)-1]
			live = live[:len(live)-1]
			continue
		}
		size := memory.Bytes(1 + rng.Intn(512))
		block := stack.Allocate(size, 16)
		if block.IsEmpty() {
			log.Debug("allocation failed", "iteration", i, "size", int64(size))
			break
		}
		live = append(live, block)
	}

	log.Debug("stress workload finished", "live", len(live))

	fmt.Print(memfmt.Report("pool (fixed 256 B blocks)", pool.Stats()))
	fmt.Print(memfmt.Report("stack (oversize spill)", linear.Stats()))
	fmt.Print(memfmt.Report("virtual pages", pages.Stats()))
	return nil
}
