package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	webppl "github.com/NATHANIELCROSBY1/webppl"
)

var enumerateCmd = &cobra.Command{
	Use:   "enumerate",
	Short: "Enumerate sample(i<-RandomInteger[3]).factor(i) and print the marginal",
	RunE: func(cmd *cobra.Command, args []string) error {
		program := func() webppl.Step {
			return webppl.Sample(webppl.RandomIntegerERP, []float64{3}, func(i any) webppl.Step {
				idx := i.(int)
				return webppl.Factor(float64(idx), func() webppl.Step {
					return webppl.Exit(idx)
				})
			})
		}

		erp, err := webppl.Enumerate(program)
		if err != nil {
			return err
		}

		values, _ := erp.Support(nil)
		for _, v := range values {
			fmt.Printf("P(%v) = %.6f\n", v, math.Exp(erp.Score(nil, v)))
		}
		return nil
	},
}
