package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"food-analyzer-api/internal/client"
	"food-analyzer-api/internal/config"
	"food-analyzer-api/internal/models"
	"food-analyzer-api/internal/service"

	"github.com/spf13/cobra"
)

var (
	configPath string

	foodName   string
	foodWeight string
	origin     string
	dest       string
)

var rootCmd = &cobra.Command{
	Use:          "foodctl",
	Short:        "Command line access to the food analyzer",
	Long:         `Runs food photo analysis and delivery route estimation without starting the HTTP server.`,
	SilenceUsage: true,
}

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models that support content generation",
	Args:  cobra.NoArgs,
	RunE:  runModels,
}

var routeCmd = &cobra.Command{
	Use:   "route <origin> <destination>",
	Short: "Estimate the traffic-adjusted driving route between two addresses",
	Args:  cobra.ExactArgs(2),
	RunE:  runRoute,
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>",
	Short: "Analyze a food photo",
	Long:  `Estimates shelf life, nutrition and allergens for a local image, and optionally the delivery route.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs", "Directory holding app.env")

	analyzeCmd.Flags().StringVarP(&foodName, "name", "n", "Nama Makanan Tidak Diketahui", "Declared food name")
	analyzeCmd.Flags().StringVarP(&foodWeight, "weight", "w", "Berat Tidak Diketahui", "Declared weight or amount")
	analyzeCmd.Flags().StringVar(&origin, "origin", "", "Route origin address")
	analyzeCmd.Flags().StringVar(&dest, "dest", "", "Route destination address")

	rootCmd.AddCommand(modelsCmd, routeCmd, analyzeCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runModels(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	gemini, err := client.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		return err
	}
	defer gemini.Close()

	names, err := gemini.GenerateContentModels(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func runRoute(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	route, err := newRouteService(cfg).ShortestRoute(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), route)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	var analyzer service.Analyzer
	if cfg.HasGeminiKey() {
		gemini, err := client.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return err
		}
		defer gemini.Close()
		analyzer = service.NewAnalyzerService(gemini, cfg.InferenceTimeout)
	}

	svc := service.NewAnalysisService(analyzer, newRouteService(cfg), nil)
	report := svc.Analyze(ctx, models.AnalyzeInput{
		ImagePath:          args[0],
		Filename:           filepath.Base(args[0]),
		FoodName:           foodName,
		FoodWeight:         foodWeight,
		OriginAddress:      origin,
		DestinationAddress: dest,
	})

	if err := printJSON(cmd.OutOrStdout(), report); err != nil {
		return err
	}
	if report.Failed() {
		return fmt.Errorf("analysis failed: %s", report.Error)
	}
	return nil
}

func newRouteService(cfg config.Config) *service.RouteService {
	nominatim := client.NewNominatimClient(cfg.NominatimURL, cfg.UserAgent, cfg.GeocodeTimeout)
	osrm := client.NewOSRMClient(cfg.OSRMURL, cfg.UserAgent, cfg.RouteTimeout)
	return service.NewRouteService(service.NewGeoCodeService(nominatim, nil), osrm)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
