package main

import (
	"fmt"

	"github.com/spf13/cobra"

	webppl "github.com/NATHANIELCROSBY1/webppl"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Demonstrate memoization: 5 calls with [1,2], 3 calls with [3,4]",
	RunE: func(cmd *cobra.Command, args []string) error {
		calls := 0
		cf := webppl.Cache(func(k webppl.Cont, args ...any) webppl.Step {
			calls++
			return k(args[0].(int) + args[1].(int))
		})

		call := func(a, b int) int {
			var sum int
			cf(func(v any) webppl.Step {
				sum = v.(int)
				return webppl.Exit(sum)
			}, a, b)
			return sum
		}

		for i := 0; i < 5; i++ {
			call(1, 2)
		}
		for i := 0; i < 3; i++ {
			call(3, 4)
		}

		fmt.Printf("underlying function invoked %d times (expected 2)\n", calls)
		return nil
	},
}
