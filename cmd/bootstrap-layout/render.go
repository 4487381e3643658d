package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-bootstrap-layout/pkg/layout"
	"github.com/goliatone/go-bootstrap-layout/pkg/orchestrator"
	"github.com/goliatone/go-bootstrap-layout/pkg/render"
	"github.com/goliatone/go-bootstrap-layout/pkg/renderers/html"
)

func (a *app) renderCmd() *cobra.Command {
	var (
		layoutPath  string
		output      string
		sanitize    bool
		assetPrefix string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a layout file as Bootstrap markup",
		RunE: func(cmd *cobra.Command, args []string) error {
			file, def, err := layout.LoadFile(layoutPath)
			if err != nil {
				return err
			}

			if asJSON {
				options := []layout.Option{layout.WithLogger(a.logger)}
				if a.catalog != nil {
					options = append(options, layout.WithMediaResolver(a.catalog))
				}
				plugin := layout.New(def, file.Configuration, options...)
				return printJSON(cmd.OutOrStdout(), plugin.Build(cmd.Context(), file.Regions))
			}

			htmlOptions := []html.Option{html.WithLogger(a.logger)}
			if sanitize {
				htmlOptions = append(htmlOptions, html.WithSanitizedContent())
			}
			if assetPrefix != "" {
				htmlOptions = append(htmlOptions, html.WithAssetPrefix(assetPrefix))
			}
			renderer, err := html.New(htmlOptions...)
			if err != nil {
				return err
			}
			registry := render.NewRegistry()
			registry.MustRegister(renderer)

			orch, err := a.orchestrator(orchestrator.WithRegistry(registry))
			if err != nil {
				return err
			}
			out, err := orch.Generate(cmd.Context(), orchestrator.Request{
				Definition:    def,
				Configuration: file.Configuration,
				Regions:       file.Regions,
			})
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, out, 0o644); err != nil {
					return err
				}
				a.logger.Info("markup written", "path", output)
				return nil
			}
			return writeOutput(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVarP(&layoutPath, "layout", "l", "", "layout YAML file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&sanitize, "sanitize", false, "strip unsafe markup from region content")
	cmd.Flags().StringVar(&assetPrefix, "asset-prefix", "", "URL prefix for library assets when no theme is set")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the decorated build as JSON instead of markup")
	_ = cmd.MarkFlagRequired("layout")
	return cmd
}
