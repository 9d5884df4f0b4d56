package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "List savings goals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			goals, err := a.client.ListSavingsGoals(cmd.Context())
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				fmt.Println("No savings goals yet.")
				return nil
			}

			for _, goal := range goals {
				progress := 0.0
				if goal.TargetAmount > 0 {
					progress = goal.CurrentAmount / goal.TargetAmount * 100
				}
				fmt.Printf("  %-12s %-20s %10.2f of %.2f (%.0f%%)\n",
					goal.ID, goal.Name, goal.CurrentAmount, goal.TargetAmount, progress)
			}
			return nil
		},
	}

	cmd.AddCommand(contributeCmd(), withdrawCmd())
	return cmd
}

func contributeCmd() *cobra.Command {
	var accountID string
	var amount float64

	cmd := &cobra.Command{
		Use:   "contribute <goal-id>",
		Short: "Move money from an account into a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			contribution, err := a.client.ContributeToGoal(cmd.Context(), args[0], accountID, amount)
			if err != nil {
				return err
			}
			fmt.Printf("Contributed %.2f to goal %s (record %s)\n", contribution.Amount, contribution.GoalID, contribution.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "Account to draw from")
	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount to contribute")
	_ = cmd.MarkFlagRequired("account")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func withdrawCmd() *cobra.Command {
	var amount float64

	cmd := &cobra.Command{
		Use:   "withdraw <goal-id>",
		Short: "Take money back out of a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.client.WithdrawFromGoal(cmd.Context(), args[0], amount); err != nil {
				return err
			}
			fmt.Printf("Withdrew %.2f from goal %s\n", amount, args[0])
			return nil
		},
	}

	cmd.Flags().Float64Var(&amount, "amount", 0, "Amount to withdraw")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func notificationsCmd() *cobra.Command {
	var markRead bool

	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			notifications, err := a.client.ListNotifications(cmd.Context())
			if err != nil {
				return err
			}
			if len(notifications) == 0 {
				fmt.Println("No notifications.")
				return nil
			}

			for _, n := range notifications {
				marker := " "
				if !n.Read {
					marker = "*"
				}
				fmt.Printf("%s %-10s %s — %s\n", marker, n.Type, n.Title, n.Message)
				if markRead && !n.Read {
					if err := a.client.MarkNotificationRead(cmd.Context(), n.ID); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&markRead, "mark-read", false, "Mark listed notifications as read")
	return cmd
}
