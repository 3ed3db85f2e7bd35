package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/glint-dev/glint"
)

// Scenario is one synthetic workload. Run builds its graph inside a fresh
// root, performs the writes and tears everything down.
type Scenario struct {
	Name        string
	Description string
	Run         func(iterations, width int)
}

var scenarios = []Scenario{
	{
		Name:        "chain",
		Description: "one signal feeding a deep memo chain read by one effect",
		Run:         runChain,
	},
	{
		Name:        "diamond",
		Description: "one signal fanning into memos that reconverge in one effect",
		Run:         runDiamond,
	},
	{
		Name:        "fanout",
		Description: "one signal observed by many independent effects",
		Run:         runFanout,
	},
	{
		Name:        "batch",
		Description: "many writes per iteration coalesced by a batch",
		Run:         runBatch,
	},
}

func runCmd() *cobra.Command {
	var (
		configPath string
		iterations int
		width      int
	)

	cmd := &cobra.Command{
		Use:   "run [scenario...]",
		Short: "Run benchmark scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("iterations") {
				cfg.Iterations = iterations
			}
			if cmd.Flags().Changed("width") {
				cfg.Width = width
			}

			selected := args
			if len(selected) == 0 {
				selected = cfg.Scenarios
			}

			for _, s := range scenarios {
				if len(selected) > 0 && !slices.Contains(selected, s.Name) {
					continue
				}
				report(s, cfg)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	cmd.Flags().IntVarP(&iterations, "iterations", "n", 10000, "write rounds per scenario")
	cmd.Flags().IntVarP(&width, "width", "w", 100, "graph size (chain depth, fan-out, batch size)")

	return cmd
}

func report(s Scenario, cfg Config) {
	before := glint.ReadStats()
	start := time.Now()

	s.Run(cfg.Iterations, cfg.Width)

	elapsed := time.Since(start)
	after := glint.ReadStats()

	fmt.Printf("%-10s %12s  %8.0f writes/s  %d effect runs, %d memo recomputes\n",
		s.Name,
		elapsed.Round(time.Microsecond),
		float64(after.Writes-before.Writes)/elapsed.Seconds(),
		after.EffectRuns-before.EffectRuns,
		after.MemoRecomputes-before.MemoRecomputes,
	)
}

func runChain(iterations, width int) {
	glint.NewRoot(func(dispose func()) any {
		defer dispose()

		source := glint.NewSignal(0)

		prev := glint.NewMemo(func() int { return source.Read() + 1 })
		for n := 0; n < width-1; n++ {
			dep := prev
			prev = glint.NewMemo(func() int { return dep.Read() + 1 })
		}

		last := prev
		glint.NewEffect(func() { last.Read() })

		for i := 0; i < iterations; i++ {
			source.Write(i + 1)
		}
		return nil
	})
}

func runDiamond(iterations, width int) {
	glint.NewRoot(func(dispose func()) any {
		defer dispose()

		source := glint.NewSignal(0)

		branches := make([]*glint.Memo[int], width)
		for i := range branches {
			scale := i + 1
			branches[i] = glint.NewMemo(func() int { return source.Read() * scale })
		}

		glint.NewEffect(func() {
			total := 0
			for _, b := range branches {
				total += b.Read()
			}
		})

		for i := 0; i < iterations; i++ {
			source.Write(i + 1)
		}
		return nil
	})
}

func runFanout(iterations, width int) {
	glint.NewRoot(func(dispose func()) any {
		defer dispose()

		source := glint.NewSignal(0)

		for n := 0; n < width; n++ {
			glint.NewEffect(func() { source.Read() })
		}

		for i := 0; i < iterations; i++ {
			source.Write(i + 1)
		}
		return nil
	})
}

func runBatch(iterations, width int) {
	glint.NewRoot(func(dispose func()) any {
		defer dispose()

		signals := make([]*glint.Signal[int], width)
		for i := range signals {
			signals[i] = glint.NewSignal(0)
		}

		glint.NewEffect(func() {
			for _, s := range signals {
				s.Read()
			}
		})

		for i := 0; i < iterations; i++ {
			glint.NewBatch(func() {
				for _, s := range signals {
					s.Write(i + 1)
				}
			})
		}
		return nil
	})
}
