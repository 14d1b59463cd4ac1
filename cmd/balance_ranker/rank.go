package main

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"balance_ranker/internal/domain/entity"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const unpricedCell = "n/a"

func newRankCommand(rt *runtimeContext) *cobra.Command {
	var asJSON bool

	rankCmd := &cobra.Command{
		Use:   "rank",
		Short: "Print the ranked, valued balances once",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := newApplication(rt.cfg, rt.zapLogger)
			if err != nil {
				return err
			}
			defer app.Close()

			view, err := app.rankingService.RankedView(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return renderJSON(cmd.OutOrStdout(), view)
			}
			return renderTable(cmd.OutOrStdout(), view)
		},
	}

	rankCmd.Flags().BoolVar(&asJSON, "json", false, "print the ranked view as JSON")
	return rankCmd
}

func renderJSON(w io.Writer, view entity.RankedView) error {
	out, err := json.MarshalIndent(view, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode ranked view: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

func renderTable(w io.Writer, view entity.RankedView) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "CHAIN\tPRIORITY\tCURRENCY\tAMOUNT\tUSD VALUE\t")
	for _, row := range view.Balances {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t\n",
			row.Chain, strconv.Itoa(row.Priority), row.Currency, row.FormattedAmount, usdCell(row.USDValue))
	}
	total := decimal.NewFromFloat(view.Summary.TotalUSD).StringFixed(2)
	if view.Summary.TotalUSDOverflow {
		total = unpricedCell
	}
	fmt.Fprintf(tw, "TOTAL\t\t\t\t%s\t\n", total)
	if err := tw.Flush(); err != nil {
		return err
	}

	if view.Summary.Unpriced > 0 {
		_, err := fmt.Fprintf(w, "%d of %d rows have no known price\n", view.Summary.Unpriced, view.Summary.Rows)
		return err
	}
	return nil
}

func usdCell(v *float64) string {
	if v == nil || math.IsInf(*v, 0) || math.IsNaN(*v) {
		return unpricedCell
	}
	return decimal.NewFromFloat(*v).StringFixed(2)
}
