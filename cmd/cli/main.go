package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fairvalue/cmd"
	"fairvalue/internal/app"
	"fairvalue/internal/domain"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	apiPort     int
	requestFile string
)

var rootCmd = &cobra.Command{
	Use:          "fairvalue",
	Short:        "Private-company valuation engine",
	SilenceUsage: true,
}

var apiCmd = &cobra.Command{
	Use:   "api",
	Short: "Serve the HTTP API",
	RunE: func(c *cobra.Command, args []string) error {
		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(apiHandler)
		return apiHandler.StartApi(apiPort)
	},
}

var valuateCmd = &cobra.Command{
	Use:   "valuate",
	Short: "Run one valuation from a request file and print the report",
	RunE: func(c *cobra.Command, args []string) error {
		content, err := os.ReadFile(requestFile)
		if err != nil {
			return fmt.Errorf("failed to read request file: %w", err)
		}

		var request domain.ValuationRequest
		if err := json.Unmarshal(content, &request); err != nil {
			return fmt.Errorf("failed to parse request file: %w", err)
		}

		// same binding tags the HTTP layer enforces
		v := validator.New()
		v.SetTagName("binding")
		if err := v.Struct(request); err != nil {
			return fmt.Errorf("invalid valuation request: %w", err)
		}

		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(apiHandler)

		report, runErr := apiHandler.ValuationPipelineHandler.Run(context.Background(), app.RunValuationInput{
			Request: request,
		})

		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to format report: %w", err)
		}
		fmt.Println(string(out))

		return runErr
	},
}

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Inspect stored valuation reports",
}

var reportsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored reports",
	RunE: func(c *cobra.Command, args []string) error {
		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(apiHandler)

		rows, err := apiHandler.ValuationReportRepository.List(apiHandler.Db)
		if err != nil {
			return err
		}

		for _, row := range rows {
			fairValue := "-"
			if row.FairValue != nil {
				fairValue = fmt.Sprintf("$%.0f", *row.FairValue)
			}
			fmt.Printf("%s  %-10s %-14s %s  %s\n",
				row.ValuationReportID.String(),
				row.Status,
				fairValue,
				row.CreatedAt.Format("2006-01-02 15:04"),
				row.CompanyName,
			)
		}

		return nil
	},
}

var reportsGetCmd = &cobra.Command{
	Use:   "get <report-id>",
	Short: "Print one stored report",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		reportID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid report id: %w", err)
		}

		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(apiHandler)

		row, err := apiHandler.ValuationReportRepository.Get(apiHandler.Db, reportID)
		if err != nil {
			return err
		}

		var pretty bytes.Buffer
		if err := json.Indent(&pretty, []byte(row.ReportBody), "", "  "); err != nil {
			fmt.Println(row.ReportBody)
			return nil
		}
		fmt.Println(pretty.String())

		return nil
	},
}

var reportsDeleteCmd = &cobra.Command{
	Use:   "delete <report-id>",
	Short: "Delete one stored report",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		reportID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid report id: %w", err)
		}

		apiHandler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(apiHandler)

		if err := apiHandler.ValuationReportRepository.Delete(apiHandler.Db, reportID); err != nil {
			return err
		}
		fmt.Printf("deleted %s\n", reportID.String())

		return nil
	},
}

func init() {
	apiCmd.Flags().IntVar(&apiPort, "port", 8000, "port to serve on")

	valuateCmd.Flags().StringVar(&requestFile, "file", "", "path to a valuation request JSON file")
	_ = valuateCmd.MarkFlagRequired("file")

	reportsCmd.AddCommand(reportsListCmd, reportsGetCmd, reportsDeleteCmd)
	rootCmd.AddCommand(apiCmd, valuateCmd, reportsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
