package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "Show usage examples",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printExamples()
	},
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(examplesCmd)
}

// printExamples displays usage examples for the program
func printExamples() {
	fmt.Println("\n📋 salarydash Usage Examples 📋")
	fmt.Println("\n1. Print the full dashboard for 2023 senior and executive roles:")
	fmt.Println("   salarydash report --year 2023 --seniority SE,EX")

	fmt.Println("\n2. Compare two titles by country and over the years, silencing the banner:")
	fmt.Println("   salarydash report --contract \"Data Engineer\" --contract \"Data Scientist\" --silence")

	fmt.Println("\n3. Serve the web dashboard on port 9090 with a protected refresh endpoint:")
	fmt.Println("   WEB_USERNAME=admin WEB_PASSWORD=secret salarydash serve --port 9090")

	fmt.Println("\n4. Explore the filters interactively:")
	fmt.Println("   salarydash tui")

	fmt.Println("\n5. Export the salary evolution chart as SVG:")
	fmt.Println("   salarydash export --format svg --chart salary_evolution -o evolution.svg")

	fmt.Println("\n6. Use a local copy of the dataset:")
	fmt.Println("   salarydash report --source ./salaries.csv")

	fmt.Println("\nFor more information, visit: https://github.com/fr4nk3nst1ner/salarydash")
}
