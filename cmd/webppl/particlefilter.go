package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	webppl "github.com/NATHANIELCROSBY1/webppl"
)

var particleCount int

var particleFilterCmd = &cobra.Command{
	Use:   "particlefilter",
	Short: "Run the particle filter on two factor-conditioned coin flips",
	RunE: func(cmd *cobra.Command, args []string) error {
		program := func() webppl.Step {
			return webppl.Sample(webppl.BernoulliERP, []float64{0.5}, func(a any) webppl.Step {
				return webppl.Sample(webppl.BernoulliERP, []float64{0.5}, func(b any) webppl.Step {
					logW := 0.0
					if a.(bool) != b.(bool) {
						logW = math.Inf(-1)
					}
					return webppl.Factor(logW, func() webppl.Step {
						return webppl.Exit(a.(bool) && b.(bool))
					})
				})
			})
		}

		erp, err := webppl.ParticleFilter(program, particleCount)
		if err != nil {
			return err
		}

		fmt.Printf("P(true) = %.4f\n", math.Exp(erp.Score(nil, true)))
		fmt.Printf("P(false) = %.4f\n", math.Exp(erp.Score(nil, false)))
		return nil
	},
}

func init() {
	particleFilterCmd.Flags().IntVarP(&particleCount, "particles", "n", 1000, "number of particles")
}
