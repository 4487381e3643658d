// Package model defines the declarative form descriptors produced by the
// layout and settings forms. A FormModel never renders HTML: it lists fields
// (type, label, description, default value, options) plus visibility rules
// keyed on sibling field values, and UI layers such as the terminal renderer
// or an external admin frontend interpret it. Groups nest fields and their
// children are addressed with dotted paths (e.g. "background.container_wrapper_bg_media").
// Submitted data travels back as Values keyed by the same dotted paths.
package model
