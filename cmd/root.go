package cmd

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/Rorical/ChairFinder/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "chairfinder",
	Short: "Wheelchair recommendations in your terminal",
	Long: `ChairFinder sends a description of the user (age, weight, seat needs)
to a recommendation server and shows the matching wheelchairs as cards.`,
	Run: func(cmd *cobra.Command, args []string) {
		runApplication()
	},
}

func runApplication() {
	application, err := app.NewApplication()
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}
	defer application.Stop()

	if err := application.Start(); err != nil {
		log.Printf("Application error: %v", err)
	}
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			log.Printf("Command execution error: %v", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(profileCmd)
}
