package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/telebot.v3"

	"hr-bot/config"
	"hr-bot/internal/delivery/telegram"
	"hr-bot/internal/domain"
	"hr-bot/internal/payroll"
	"hr-bot/internal/report"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "hr-bot",
		Short:        "Employee registry and department routing bot",
		Long:         "hr-bot keeps an in-memory employee registry, computes net pay and shortest distances between departments.\nRun without a subcommand to start the Telegram bot.",
		SilenceUsage: true,
		RunE:         runBot,
	}
	cmd.AddCommand(
		newEmployeesCmd(),
		newPayslipCmd(),
		newNetCmd(),
		newRouteCmd(),
		newRoutesCmd(),
	)
	return cmd
}

// withApp loads config, builds the app and closes it after fn returns.
func withApp(fn func(cmd *cobra.Command, a *app, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(cmd, a, args)
	}
}

func runBot(cmd *cobra.Command, args []string) error {
	return withApp(func(_ *cobra.Command, a *app, _ []string) error {
		token, err := a.cfg.BotToken()
		if err != nil {
			return err
		}
		bot, err := telebot.NewBot(telebot.Settings{
			Token:  token,
			Poller: &telebot.LongPoller{Timeout: 10},
			OnError: func(err error, c telebot.Context) {
				a.log.WithError(err).Error("handler failed")
			},
		})
		if err != nil {
			return fmt.Errorf("start bot: %w", err)
		}

		handler := &telegram.Handler{
			Bot:       bot,
			Employees: a.employees,
			Routes:    a.routes,
			Log:       a.log,
		}
		handler.Register()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a.log.Info("bot started")
		runUntilDone(ctx, bot.Start, bot.Stop)
		a.log.Info("bot stopped")
		return nil
	})(cmd, args)
}

// runUntilDone calls start, which blocks, and calls stop once ctx is done.
// It returns after start has returned.
func runUntilDone(ctx context.Context, start, stop func()) {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			stop()
		case <-done:
		}
	}()
	start()
	close(done)
}

func newEmployeesCmd() *cobra.Command {
	var sortBy string
	var desc bool
	cmd := &cobra.Command{
		Use:   "employees",
		Short: "List employees sorted by id or salary",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			key := domain.ByID
			switch sortBy {
			case "id":
			case "salary":
				key = domain.BySalary
			default:
				return fmt.Errorf("--sort must be id or salary, got %q", sortBy)
			}
			dir := domain.Ascending
			if desc {
				dir = domain.Descending
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Employees(a.employees.List(key, dir)))
			return nil
		}),
	}
	cmd.Flags().StringVar(&sortBy, "sort", "id", "sort key: id or salary")
	cmd.Flags().BoolVar(&desc, "desc", false, "sort in descending order")
	return cmd
}

func newPayslipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "payslip <id>",
		Short: "Show an employee with deductions and net salary",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id < 1 {
				return fmt.Errorf("employee ID must be a positive number, got %q", args[0])
			}
			slip, err := a.employees.Lookup(id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Payslip(slip.Employee, slip.Deductions))
			return nil
		}),
	}
}

func newNetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "net <salary>",
		Short: "Compute deductions and net pay for a salary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			salary, err := strconv.Atoi(args[0])
			if err != nil || salary < 0 {
				return fmt.Errorf("salary must be a non-negative whole number, got %q", args[0])
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Deductions(payroll.ComputeNet(salary)))
			return nil
		},
	}
}

func newRouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route <department>",
		Short: "Shortest distances from a department to every other",
		Args:  cobra.ExactArgs(1),
		RunE: withApp(func(cmd *cobra.Command, a *app, args []string) error {
			departments := a.routes.Departments()
			dist, err := a.routes.ShortestDistances(args[0])
			if err != nil {
				return fmt.Errorf("%w\n%s", err, report.DepartmentsHint(departments))
			}
			fmt.Fprint(cmd.OutOrStdout(), report.Distances(args[0], departments, dist))
			return nil
		}),
	}
}

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Distance table between all departments",
		Args:  cobra.NoArgs,
		RunE: withApp(func(cmd *cobra.Command, a *app, _ []string) error {
			rows, err := a.routes.DistanceTable(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report.DistanceTable(a.routes.Departments(), rows))
			return nil
		}),
	}
}
