package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/moneywise/client-go/internal/api"
)

func accountsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "accounts",
		Short: "Show accounts, cards and recent transfers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			dashboard, err := a.tracker.Dashboard(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Println("Accounts:")
			for _, account := range dashboard.Accounts {
				fmt.Printf("  %-20s %-12s %12.2f %s\n", account.Name, account.Type, account.Balance, account.Currency)
			}
			fmt.Printf("  %-33s %12.2f\n", "total", dashboard.TotalBalance())

			if len(dashboard.CreditCards) > 0 {
				fmt.Println("\nCredit cards:")
				for _, card := range dashboard.CreditCards {
					fmt.Printf("  %-20s ···%-6s %10.2f of %.2f\n", card.Name, card.LastFour, card.Balance, card.CreditLimit)
				}
			}
			if len(dashboard.RecentTransfers) > 0 {
				fmt.Println("\nRecent transfers:")
				for _, transfer := range dashboard.RecentTransfers {
					fmt.Printf("  %s  %10.2f  %s\n", transfer.Date, transfer.Amount, transfer.Description)
				}
			}
			return nil
		},
	}
}

func transferCmd() *cobra.Command {
	var params api.TransferParams

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Move funds between two of your accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			if params.Date == "" {
				params.Date = time.Now().Format("2006-01-02")
			}

			transfer, err := a.client.Transfer(cmd.Context(), params)
			if err != nil {
				return err
			}

			fmt.Printf("Transferred %.2f from %s to %s on %s\n",
				transfer.Amount, transfer.FromAccountID, transfer.ToAccountID, transfer.Date)
			return nil
		},
	}

	cmd.Flags().StringVar(&params.FromAccountID, "from", "", "Source account id")
	cmd.Flags().StringVar(&params.ToAccountID, "to", "", "Destination account id")
	cmd.Flags().Float64Var(&params.Amount, "amount", 0, "Amount to move")
	cmd.Flags().StringVar(&params.Date, "date", "", "Transfer date (defaults to today)")
	cmd.Flags().StringVar(&params.Description, "description", "", "Optional description")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	_ = cmd.MarkFlagRequired("amount")
	return cmd
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show the current month's report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.tracker.MonthlyReport(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Report for %s\n\n", report.Period)
			fmt.Printf("  Income:       %12.2f\n", report.Current.TotalIncome)
			fmt.Printf("  Expenses:     %12.2f\n", report.Current.TotalExpenses)
			fmt.Printf("  Balance:      %12.2f\n", report.Balance())
			fmt.Printf("  Savings rate: %11.0f%% (previous month: %.0f%%)\n",
				report.SavingsRate*100, report.PrevSavingsRate*100)

			if len(report.Current.ByCategory) > 0 {
				fmt.Println("\n  By category:")
				for name, amount := range report.Current.ByCategory {
					fmt.Printf("    %-20s %12.2f\n", name, amount)
				}
			}
			return nil
		},
	}
}

func exportCmd() *cobra.Command {
	var kind, format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download an income or expense report file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.Close()

			var (
				data     []byte
				filename string
			)
			switch kind {
			case "income":
				data, filename, err = a.client.ExportIncomeReport(cmd.Context(), format)
			case "expenses":
				data, filename, err = a.client.ExportExpenseReport(cmd.Context(), format)
			default:
				return fmt.Errorf("unknown report type %q (want income or expenses)", kind)
			}
			if err != nil {
				return err
			}

			if err := os.WriteFile(filename, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", filename, err)
			}
			fmt.Printf("Saved %s (%d bytes)\n", filename, len(data))
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "type", "expenses", "Report type: income or expenses")
	cmd.Flags().StringVar(&format, "format", api.FormatCSV, "File format: csv or xlsx")
	return cmd
}
