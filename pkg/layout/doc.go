// Package layout decorates layout-builder sections with Bootstrap grid
// presentation options.
//
// A Plugin pairs a layout Definition (its named regions) with one instance's
// Configuration. Build annotates host-rendered regions with section, container
// and region classes plus an optional background; BuildConfigurationForm and
// SubmitConfigurationForm expose the same Configuration as a declarative
// model.FormModel gated by the site-wide settings.
package layout
