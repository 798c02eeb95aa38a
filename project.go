package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"hecs-calculator/domain"
	"hecs-calculator/service"
)

func projectCmd() *cobra.Command {
	var (
		input  domain.RepaymentInput
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Print the repayment schedule for a debt, income and growth rate",
		Example: `  hecs project --debt 25000 --income 85000 --growth 3
  hecs project --debt 1000 --income 60000 --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := service.ValidateRepaymentInput(input); err != nil {
				return err
			}
			result := service.Project(input.Debt, input.Income, input.Growth)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}
			return renderSchedule(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().Float64Var(&input.Debt, "debt", 0, "outstanding debt")
	cmd.Flags().Float64Var(&input.Income, "income", 0, "current annual income")
	cmd.Flags().Float64Var(&input.Growth, "growth", 0, "expected annual income growth, in percent")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")
	_ = cmd.MarkFlagRequired("debt")
	_ = cmd.MarkFlagRequired("income")

	return cmd
}

func renderSchedule(w io.Writer, result domain.RepaymentResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Year\tIncome\tRepayment\tTotal repaid\tRemaining\t")
	for _, e := range result.RepaymentSchedule {
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
			e.Year, e.Income, e.Repayment, e.TotalRepayment, e.RemainingDebt)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	last := result.RepaymentSchedule[len(result.RepaymentSchedule)-1]
	if last.RemainingDebt > 0 {
		_, err := fmt.Fprintf(w, "\nNot repaid after %d years, %.2f remaining.\n", result.YearsToRepay, last.RemainingDebt)
		return err
	}
	_, err := fmt.Fprintf(w, "\nRepaid in %d years.\n", result.YearsToRepay)
	return err
}

func bracketsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "brackets",
		Short: "Print the repayment rate table",
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, "From\tTo\tRate\t")
			for _, b := range service.DefaultRateTable.Brackets() {
				upper := fmt.Sprintf("%.0f", b.Max)
				if math.IsInf(b.Max, 1) {
					upper = "-"
				}
				fmt.Fprintf(tw, "%.0f\t%s\t%.1f%%\t\n", b.Min, upper, b.Rate*100)
			}
			return tw.Flush()
		},
	}
}
