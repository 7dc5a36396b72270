package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Rorical/ChairFinder/internal/app"
	"github.com/Rorical/ChairFinder/internal/core"
	"github.com/Rorical/ChairFinder/internal/logger"
	"github.com/Rorical/ChairFinder/internal/models"
)

var queryCmd = &cobra.Command{
	Use:     "query [description...]",
	Short:   "Get recommendations for a description and print them",
	Example: `  chairfinder query "3-year-old, 15kg, narrow seat"`,
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		return runOnce(cmd, func(ctx context.Context, c *core.Controller) error {
			return c.SubmitFreeTextQuery(ctx, text)
		})
	},
}

var quickCmd = &cobra.Command{
	Use:   "quick [type]",
	Short: "Get recommendations for a predefined category",
	Long:  "Get recommendations for a predefined category: " + quickTypeList(),
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		qt, ok := models.ParseQuickType(args[0])
		if !ok {
			return fmt.Errorf("unknown quick type %q (want one of %s)", args[0], quickTypeList())
		}
		return runOnce(cmd, func(ctx context.Context, c *core.Controller) error {
			return c.SubmitQuickQuery(ctx, qt)
		})
	},
}

func quickTypeList() string {
	labels := make([]string, len(models.QuickTypes))
	for i, q := range models.QuickTypes {
		labels[i] = fmt.Sprintf("%s (%s)", strings.ToLower(q.Label()), string(q))
	}
	return strings.Join(labels, ", ")
}

// runOnce drives one controller submission. The controller has already told
// the user what went wrong, so errors only set the exit code.
func runOnce(cmd *cobra.Command, submit func(context.Context, *core.Controller) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	c, err := app.NewConsoleController(cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer logger.Sync()

	if err := submit(ctx, c); err != nil {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return reportedError{err}
	}
	return nil
}

// reportedError has already been shown to the user
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }

func (e reportedError) Unwrap() error { return e.err }

func init() {
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(quickCmd)
}
