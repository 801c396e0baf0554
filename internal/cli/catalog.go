package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/polkiloo/foodfront/internal/usecase"
)

func newRestaurantsCommand(rt *runtime) *cobra.Command {
	var query string
	cmd := &cobra.Command{
		Use:   "restaurants",
		Short: "List restaurants, optionally filtered by a search query",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			restaurants, err := usecase.NewCatalogUseCase(rt.client).Browse(cmd.Context(), query)
			if err != nil {
				return err
			}
			if len(restaurants) == 0 {
				fmt.Fprintln(rt.out, "No restaurants found")
				return nil
			}

			tw := tabwriter.NewWriter(rt.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tCUISINE\tRATING\tETA")
			for _, r := range restaurants {
				name := r.Name
				if !r.Active {
					name += " (closed)"
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\t%.1f\t%d min\n", r.ID, name, r.CuisineType, r.AvgRating, r.DeliveryTime)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "Search by name or cuisine")
	return cmd
}

func newMenuCommand(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "menu <restaurant-id>",
		Short: "Show a restaurant and its menu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("restaurant", args[0])
			if err != nil {
				return err
			}
			details, err := usecase.NewCatalogUseCase(rt.client).Details(cmd.Context(), id)
			if err != nil {
				return err
			}

			r := details.Restaurant
			fmt.Fprintf(rt.out, "%s  %s  %.1f★  %d min\n%s\n\n", r.Name, r.CuisineType, r.AvgRating, r.DeliveryTime, r.Address)
			tw := tabwriter.NewWriter(rt.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tITEM\tPRICE\tVEG\tAVAILABLE")
			for _, item := range details.Menu {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", item.ID, item.Name, item.Price.StringFixed(2), yesNo(item.Veg), yesNo(item.Available))
			}
			return tw.Flush()
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
