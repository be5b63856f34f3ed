package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	webppl "github.com/NATHANIELCROSBY1/webppl"
)

var forwardCmd = &cobra.Command{
	Use:   "forward",
	Short: "Forward-sample Bernoulli(0.7) 10000 times and print the empirical mean/variance",
	RunE: func(cmd *cobra.Command, args []string) error {
		const trials = 10000
		draws := make([]float64, trials)
		for i := range draws {
			erp, err := webppl.Forward(func() webppl.Step {
				return webppl.Sample(webppl.BernoulliERP, []float64{0.7}, func(v any) webppl.Step {
					return webppl.Exit(v)
				})
			})
			if err != nil {
				return err
			}
			if erp.Score(nil, true) == 0 {
				draws[i] = 1
			}
		}
		mean := stat.Mean(draws, nil)
		variance := stat.Variance(draws, mean, nil)
		fmt.Printf("empirical mean over %d trials: %.4f (variance %.4f)\n", trials, mean, variance)
		return nil
	},
}
