package layout

import (
	"context"
	"sort"
	"strings"
)

// Build decorates the host-rendered regions with the configured classes and
// background. Host content is never dropped: regions the definition does not
// declare are appended, sorted by name, without attributes. Background media
// problems are logged and leave the wrapper unstyled.
func (p *Plugin) Build(ctx context.Context, regions map[string]string) Build {
	cfg := p.configuration
	build := Build{
		LayoutID: p.definition.ID,
		Regions:  p.regions(regions),
	}

	if cfg.Container != ContainerNone {
		build.Container.Classes = splitClasses(string(cfg.Container))
		build.ContainerWrapper = p.containerWrapper(ctx, cfg)
	}

	if classes := splitClasses(cfg.SectionClasses); classes != nil {
		build.Attributes.Classes = classes
	}

	for i, region := range build.Regions {
		if !p.definition.HasRegion(region.Name) {
			continue
		}
		if classes := splitClasses(cfg.RegionClasses(region.Name)); classes != nil {
			build.Regions[i].Attributes.Classes = classes
		}
	}

	return build
}

func (p *Plugin) regions(content map[string]string) []RegionBuild {
	out := make([]RegionBuild, 0, len(content))
	for _, region := range p.definition.Regions {
		out = append(out, RegionBuild{
			Name:    region.Name,
			Label:   p.definition.RegionLabel(region.Name),
			Content: content[region.Name],
		})
	}

	var extra []string
	for name := range content {
		if !p.definition.HasRegion(name) {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		out = append(out, RegionBuild{Name: name, Content: content[name]})
	}
	return out
}

func (p *Plugin) containerWrapper(ctx context.Context, cfg Configuration) ContainerWrapper {
	var wrapper ContainerWrapper

	if !cfg.ContainerWrapperBgMedia.IsZero() {
		p.applyBackground(ctx, cfg, &wrapper)
	}

	var classes []string
	if color := strings.TrimSpace(cfg.ContainerWrapperBgColorClass); color != "" && !wrapper.HasLocalVideo {
		classes = append(classes, strings.Fields(color)...)
	}
	classes = append(classes, strings.Fields(cfg.ContainerWrapperClasses)...)
	if len(classes) > 0 {
		wrapper.Attributes.Classes = classes
	}
	return wrapper
}
