package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/rpgo/tco-parity/internal/calculation"
	"github.com/rpgo/tco-parity/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_break_even <scenario-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	engine := calc.NewCalculationEngine()
	res, err := engine.RunScenarios(context.Background(), cfg)
	if err != nil {
		panic(err)
	}

	fmt.Println("Scenario,Year,Diesel,Electric,Diff,DieselNoWorse")
	for i := range res.Comparisons {
		c := &res.Comparisons[i]
		for _, d := range c.Diesel.Points {
			e, _ := c.Electric.At(d.Year)
			fmt.Printf("%s,%d,%s,%s,%s,%t\n", c.Name, d.Year, d.CumulativeCost.StringFixed(2), e.StringFixed(2),
				c.Difference(d.Year).StringFixed(2), d.CumulativeCost.LessThanOrEqual(e))
		}
	}

	for i := range res.Comparisons {
		c := &res.Comparisons[i]
		fmt.Printf("\n%s: annual diesel=%s electric=%s\n", c.Name, c.Diesel.AnnualOperatingCost.StringFixed(2), c.Electric.AnnualOperatingCost.StringFixed(2))
		fmt.Printf("BreakEven: %s\n", c.BreakEven)
		if c.Parity != nil {
			fmt.Printf("Parity: %+v\n", *c.Parity)
		} else {
			fmt.Println("Parity: none within horizon")
		}
	}
}
