package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/statekit/storegen/internal/codegen"
	"github.com/statekit/storegen/internal/config"
	"github.com/statekit/storegen/internal/loader"
	"github.com/statekit/storegen/internal/output"
)

func GenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate data-layer modules from an OpenAPI document",
	}

	config.BindCommonFlags(cmd)

	cmd.AddCommand(
		newReactQueryCmd(),
		newSWRCmd(),
		newZustandCmd(),
		newReduxCmd(),
	)

	return cmd
}

func newReactQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "react-query",
		Short: "Generate TanStack Query hooks",
		RunE:  runGenerate("react-query"),
	}
}

func newSWRCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "swr",
		Short: "Generate SWR hooks",
		RunE:  runGenerate("swr"),
	}
}

func newZustandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "zustand",
		Short: "Generate Zustand stores",
		RunE:  runGenerate("zustand"),
	}
}

func newReduxCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "redux",
		Short: "Generate Redux Toolkit slices",
		RunE:  runGenerate("redux"),
	}
}

func runGenerate(library string) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd, library)
		if err != nil {
			return err
		}

		result, err := loader.LoadFile(cfg.Spec, loader.Options{Strict: cfg.Strict})
		if err != nil {
			return fmt.Errorf("loading spec: %w", err)
		}

		for _, w := range result.Warnings {
			cmd.PrintErrf("Warning: %s\n", w)
		}

		doc := result.Document
		cmd.PrintErrf("Loaded %s: %s v%s\n", result.Version, doc.Info.Title, doc.Info.Version)

		gen, err := codegen.New(cfg)
		if err != nil {
			return fmt.Errorf("creating generator: %w", err)
		}

		res, err := gen.Generate(doc)
		if err != nil {
			return fmt.Errorf("generating modules: %w", err)
		}

		if res.EmptySelection {
			cmd.PrintErrf("No endpoints matched tags [%s]; nothing to generate\n", strings.Join(cfg.Tags, ", "))
			return nil
		}

		cmd.PrintErrf("  Modules: %d\n", res.Stats.Modules)
		cmd.PrintErrf("  Endpoints: %d\n", res.Stats.Endpoints)

		dryRun, _ := cmd.Flags().GetBool("dry-run")
		if dryRun {
			for _, out := range res.Outputs {
				cmd.Printf("// %s\n%s\n", out.Path(), out.Content)
			}
			return nil
		}

		if err := output.Write(cfg.OutputDir, res.Outputs); err != nil {
			return err
		}

		for _, out := range res.Outputs {
			cmd.PrintErrf("Written: %s\n", filepath.Join(cfg.OutputDir, out.Path()))
		}
		cmd.PrintErrf("Generated %d files in %s\n", len(res.Outputs), cfg.OutputDir)

		return nil
	}
}
