package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	domainErrors "github.com/polkiloo/foodfront/internal/domain/errors"
	"github.com/polkiloo/foodfront/internal/domain/lifecycle"
	"github.com/polkiloo/foodfront/internal/store"
)

const trackerWidth = 30

func newOrdersCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List, track and update orders visible to the logged in role",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			board, err := rt.board(cmd.Context())
			if err != nil {
				return err
			}
			return printOrders(rt.out, board.Views())
		},
	}

	track := &cobra.Command{
		Use:   "track <order-id>",
		Short: "Show the progress of an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := parseID("order", args[0])
			if err != nil {
				return err
			}
			board, err := rt.board(cmd.Context())
			if err != nil {
				return err
			}
			view, ok := board.View(orderID)
			if !ok {
				return fmt.Errorf("order %d: %w", orderID, domainErrors.ErrNotFound)
			}
			fmt.Fprintf(rt.out, "Order #%d from %s\n", view.Order.ID, view.Order.Restaurant.Name)
			return renderTracker(rt.out, view.Tracker)
		},
	}

	transition := func(use, short string, apply func(*store.OrderBoard, context.Context, int64) error) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <order-id>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				orderID, err := parseID("order", args[0])
				if err != nil {
					return err
				}
				board, err := rt.board(cmd.Context())
				if err != nil {
					return err
				}
				if err := apply(board, cmd.Context(), orderID); err != nil {
					return err
				}
				if view, ok := board.View(orderID); ok {
					fmt.Fprintf(rt.out, "Order #%d is now %s\n", orderID, view.Tracker.Label)
				}
				return nil
			},
		}
	}

	advance := transition("advance", "Move an order to its next status", (*store.OrderBoard).Advance)
	cancel := transition("cancel", "Cancel an order", (*store.OrderBoard).Cancel)

	cmd.AddCommand(list, track, advance, cancel)
	return cmd
}

func printOrders(w io.Writer, views []store.OrderView) error {
	if len(views) == 0 {
		_, err := fmt.Fprintln(w, "No orders yet")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tRESTAURANT\tSTATUS\tTOTAL\tACTIONS")
	for _, v := range views {
		labels := make([]string, 0, len(v.Actions))
		for _, a := range v.Actions {
			labels = append(labels, a.Label)
		}
		actions := "-"
		if len(labels) > 0 {
			actions = strings.Join(labels, ", ")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", v.Order.ID, v.Order.Restaurant.Name, v.Tracker.Label, v.Order.TotalAmount.StringFixed(2), actions)
	}
	return tw.Flush()
}

// renderTracker draws completed steps as a progress bar followed by the step list.
// Cancelled orders get a single terminal line instead.
func renderTracker(w io.Writer, t lifecycle.Tracker) error {
	if t.Cancelled {
		_, err := fmt.Fprintf(w, "[x] %s\n", t.Label)
		return err
	}

	bar := progressbar.NewOptions(len(t.Steps),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(t.Label),
		progressbar.OptionSetWidth(trackerWidth),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetRenderBlankState(true),
	)
	if err := bar.Set(lifecycle.CompletedCount(t.Status)); err != nil {
		return fmt.Errorf("render tracker: %w", err)
	}
	fmt.Fprintln(w)

	for _, step := range t.Steps {
		mark := "[ ]"
		if step.Completed {
			mark = "[✓]"
		}
		line := fmt.Sprintf("%s %s", mark, step.Label)
		if step.Active {
			line += "  <- current"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
