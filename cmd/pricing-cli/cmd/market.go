package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/nurpe/freelance-pricing/internal/model"
	"github.com/nurpe/freelance-pricing/internal/repository"
	"github.com/nurpe/freelance-pricing/internal/service"
)

var marketFilter model.MarketRateFilter

var marketCmd = &cobra.Command{
	Use:   "market",
	Short: "List market reference rates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := service.NewMarketService(repository.NewStaticMarketRepository())
		rows, err := svc.List(cmd.Context(), marketFilter)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ROL\tSENIORITY\tPAÍS\tMONEDA\tMÍN\tMÁX\tPROMEDIO")
		for _, r := range rows {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%v\t%v\t%v\n", r.Role, r.Seniority, r.Country, r.Currency, r.MinRate, r.MaxRate, r.AvgRate)
		}
		return w.Flush()
	},
}

func init() {
	marketCmd.Flags().StringVar(&marketFilter.Role, "role", "", "filter by role")
	marketCmd.Flags().StringVar(&marketFilter.Seniority, "seniority", "", "filter by seniority")
	marketCmd.Flags().StringVar(&marketFilter.Country, "country", "", "filter by country")
}
