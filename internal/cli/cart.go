package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	domainErrors "github.com/polkiloo/foodfront/internal/domain/errors"
	"github.com/polkiloo/foodfront/internal/store"
)

func newCartCommand(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show and edit the cart",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cart, err := rt.cart(cmd.Context())
			if err != nil {
				return err
			}
			return printCart(rt.out, cart.Snapshot())
		},
	}

	var quantity int
	add := &cobra.Command{
		Use:   "add <menu-item-id>",
		Short: "Add a menu item to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseID("menu item", args[0])
			if err != nil {
				return err
			}
			cart, err := rt.cart(cmd.Context())
			if err != nil {
				return err
			}
			if err := cart.Add(cmd.Context(), itemID, quantity); err != nil {
				return err
			}
			return printCart(rt.out, cart.Snapshot())
		},
	}
	add.Flags().IntVarP(&quantity, "qty", "q", 1, "Quantity to add")

	set := &cobra.Command{
		Use:   "set <line-id> <quantity>",
		Short: "Change a line quantity, zero removes it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			lineID, err := parseID("cart line", args[0])
			if err != nil {
				return err
			}
			qty, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("quantity %q: %w", args[1], domainErrors.ErrInvalidQuantity)
			}
			cart, err := rt.cart(cmd.Context())
			if err != nil {
				return err
			}
			if err := cart.UpdateQuantity(cmd.Context(), lineID, qty); err != nil {
				return err
			}
			return printCart(rt.out, cart.Snapshot())
		},
	}

	rm := &cobra.Command{
		Use:   "rm <line-id>",
		Short: "Remove a line from the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lineID, err := parseID("cart line", args[0])
			if err != nil {
				return err
			}
			cart, err := rt.cart(cmd.Context())
			if err != nil {
				return err
			}
			if err := cart.Remove(cmd.Context(), lineID); err != nil {
				return err
			}
			return printCart(rt.out, cart.Snapshot())
		},
	}

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cart, err := rt.cart(cmd.Context())
			if err != nil {
				return err
			}
			if err := cart.Clear(cmd.Context()); err != nil {
				return err
			}
			return printCart(rt.out, cart.Snapshot())
		},
	}

	cmd.AddCommand(show, add, set, rm, clearCmd)
	return cmd
}

func parseID(what, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s id %q: %w", what, raw, domainErrors.ErrValidation)
	}
	return id, nil
}

func printCart(w io.Writer, snap store.CartSnapshot) error {
	if snap.Cart == nil || len(snap.Cart.Items) == 0 {
		_, err := fmt.Fprintln(w, "Your cart is empty")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LINE\tITEM\tQTY\tPRICE")
	for _, line := range snap.Cart.Items {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", line.ID, line.MenuItem.Name, line.Quantity, line.Price.StringFixed(2))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Items: %d  Total: %s\n", snap.ItemCount, snap.Cart.TotalAmount.StringFixed(2))
	return err
}
