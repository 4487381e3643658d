package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-bootstrap-layout/pkg/layout"
	"github.com/goliatone/go-bootstrap-layout/pkg/model"
	"github.com/goliatone/go-bootstrap-layout/pkg/renderers/tui"
)

func (a *app) configureCmd() *cobra.Command {
	var (
		layoutPath  string
		interactive bool
		sets        []string
		dryRun      bool
	)

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Submit the configuration form of a layout file and save the result",
		Example: `  bootstrap-layout configure -l hero.yaml --set has_container=1 --set container_type=container-fluid
  bootstrap-layout configure -l hero.yaml --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !interactive && len(sets) == 0 {
				return errors.New("nothing to submit: pass --interactive or --set")
			}

			file, def, err := layout.LoadFile(layoutPath)
			if err != nil {
				return err
			}
			_, form, err := a.configurationForm(cmd, layoutPath, false)
			if err != nil {
				return err
			}
			if len(form.Fields) == 0 {
				a.logger.Warn("advanced settings are hidden, nothing to configure", "layout", def.ID)
				return nil
			}

			values := model.Defaults(form)
			if interactive {
				options := []tui.Option{}
				if a.catalog != nil {
					options = append(options, tui.WithMediaLister(a.catalog))
				}
				values, err = tui.New(options...).Collect(cmd.Context(), form, nil)
				if err != nil {
					return err
				}
			}
			if err := applySets(values, form, sets); err != nil {
				return err
			}

			orch, err := a.orchestrator()
			if err != nil {
				return err
			}
			next, err := orch.Submit(cmd.Context(), def, file.Configuration, values)
			if err != nil {
				return err
			}
			file.Configuration = next

			if dryRun {
				return printYAML(cmd.OutOrStdout(), file)
			}
			if err := layout.SaveFile(layoutPath, file); err != nil {
				return err
			}
			a.logger.Info("layout configuration saved", "path", layoutPath, "layout", def.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&layoutPath, "layout", "l", "", "layout YAML file")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for every visible field")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "field value as path=value, repeatable")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the updated layout file instead of saving it")
	_ = cmd.MarkFlagRequired("layout")
	return cmd
}

// applySets overlays path=value pairs onto values. Paths must name form
// fields.
func applySets(values model.Values, form model.FormModel, sets []string) error {
	for _, raw := range sets {
		key, value, ok := strings.Cut(raw, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("invalid --set %q: want path=value", raw)
		}
		field, found := form.Field(key)
		if !found || field.Type.IsGroup() {
			return fmt.Errorf("invalid --set %q: unknown field %q", raw, key)
		}
		if field.Type == model.FieldTypeCheckbox {
			values.Set(key, model.CoerceBool(value))
			continue
		}
		values.Set(key, value)
	}
	return nil
}
