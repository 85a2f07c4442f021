package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"sankalp/internal/domain"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create every collection file, seeding the reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, kind := range domain.Kinds {
				records, err := a.registry.ListAll(cmd.Context(), kind)
				if err != nil {
					return fmt.Errorf("init %s: %w", kind, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %d records\n", kind, len(records))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "data directory %s ready\n", a.store.Dir())
			return nil
		},
	}
}

func newListCmd(a *app) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "list <kind>",
		Short: "Print the records of a collection as JSON",
		Long: `List prints the records of one collection as a JSON array.

By default only the public view is printed: approved reviews newest first,
active newsletter subscriptions. Use --all for the raw stored order.

Kinds: contact, admission, event_registration, newsletter, review`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}

			list := a.registry.List
			if all {
				list = a.registry.ListAll
			}
			records, err := list(cmd.Context(), kind)
			if err != nil {
				return fmt.Errorf("list %s: %w", kind, err)
			}

			out, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal records: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "include hidden records in stored order")
	return cmd
}

func newApproveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "approve <review-id>",
		Short: "Approve a pending review so it is listed publicly",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.registry.ApproveReview(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "review %s approved\n", args[0])
			return nil
		},
	}
}

func newUnsubscribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "unsubscribe <email>",
		Short: "Deactivate every active newsletter subscription for an email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := a.registry.Unsubscribe(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d subscription(s) deactivated\n", n)
			return nil
		},
	}
}

func newSetStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <kind> <id> <status>",
		Short: "Move a contact submission or admission inquiry to a new status",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseKind(args[0])
			if err != nil {
				return err
			}
			if err := a.registry.SetStatus(cmd.Context(), kind, args[1], args[2]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now %s\n", kind, args[1], args[2])
			return nil
		},
	}
}
