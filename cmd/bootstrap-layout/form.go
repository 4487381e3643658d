package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-bootstrap-layout/pkg/layout"
	"github.com/goliatone/go-bootstrap-layout/pkg/model"
	"github.com/goliatone/go-bootstrap-layout/pkg/orchestrator"
	"github.com/goliatone/go-bootstrap-layout/pkg/schema"
)

func (a *app) formCmd() *cobra.Command {
	var (
		layoutPath  string
		visibleOnly bool
		asYAML      bool
	)

	cmd := &cobra.Command{
		Use:   "form",
		Short: "Print the configuration form of a layout file",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, form, err := a.configurationForm(cmd, layoutPath, visibleOnly)
			if err != nil {
				return err
			}
			if asYAML {
				return printYAML(cmd.OutOrStdout(), form)
			}
			return printJSON(cmd.OutOrStdout(), form)
		},
	}

	cmd.Flags().StringVarP(&layoutPath, "layout", "l", "", "layout YAML file")
	cmd.Flags().BoolVar(&visibleOnly, "visible-only", false, "drop fields hidden under the current values")
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print YAML instead of JSON")
	_ = cmd.MarkFlagRequired("layout")
	return cmd
}

func (a *app) schemaCmd() *cobra.Command {
	var (
		layoutPath string
		version    string
	)

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI document describing a layout's configuration form",
		RunE: func(cmd *cobra.Command, args []string) error {
			def, form, err := a.configurationForm(cmd, layoutPath, false)
			if err != nil {
				return err
			}
			payload, err := schema.MarshalDocument(form, def.Label+" layout settings", version)
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), payload)
		},
	}

	cmd.Flags().StringVarP(&layoutPath, "layout", "l", "", "layout YAML file")
	cmd.Flags().StringVar(&version, "version", "1.0.0", "document version")
	_ = cmd.MarkFlagRequired("layout")
	return cmd
}

func (a *app) configurationForm(cmd *cobra.Command, layoutPath string, visibleOnly bool) (layout.Definition, model.FormModel, error) {
	file, def, err := layout.LoadFile(layoutPath)
	if err != nil {
		return layout.Definition{}, model.FormModel{}, err
	}
	orch, err := a.orchestrator()
	if err != nil {
		return layout.Definition{}, model.FormModel{}, err
	}
	form, err := orch.ConfigurationForm(cmd.Context(), orchestrator.FormRequest{
		Definition:    def,
		Configuration: file.Configuration,
		VisibleOnly:   visibleOnly,
	})
	if err != nil {
		return layout.Definition{}, model.FormModel{}, err
	}
	return def, form, nil
}
