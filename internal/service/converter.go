// Package service provides the Cacti to Zabbix mapping logic of the template generator.
package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"zabbix-template/internal/config"
	"zabbix-template/internal/model"
)

// exportDateFormat is the layout of the export <date> element (UTC).
const exportDateFormat = "2006-01-02T15:04:05Z"

// runningSlaveKey is the unprefixed key of the replication state check.
const runningSlaveKey = "running-slave"

// Converter turns one Cacti definition into Zabbix output. Graphs are
// mapped once by NewConverter; each Build method assembles a fresh export.
type Converter struct {
	cfg         *config.Config
	def         *model.Definition
	mapper      *Mapper
	categorizer *Categorizer
	now         func() time.Time
	logger      zerolog.Logger

	items    []*model.Item
	graphs   []*model.Graph
	screen   *model.Screen
	itemKeys []string // Cacti data source names, unique
}

// ConverterOption is a functional option for configuring a Converter.
type ConverterOption func(*Converter)

// WithClock sets the time source for the export date.
func WithClock(now func() time.Time) ConverterOption {
	return func(c *Converter) {
		c.now = now
	}
}

// NewConverter maps every graph of def. It fails on the first graph that
// uses an unsupported Cacti feature.
func NewConverter(cfg *config.Config, def *model.Definition, logger zerolog.Logger, opts ...ConverterOption) (*Converter, error) {
	mapper := NewMapper(cfg, def, logger)
	c := &Converter{
		cfg:         cfg,
		def:         def,
		mapper:      mapper,
		categorizer: NewCategorizer(mapper),
		now:         time.Now,
		logger:      logger.With().Str("component", "converter").Logger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.mapGraphs(); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("template", mapper.TemplateName()).
		Int("graphs", len(c.graphs)).
		Int("items", len(c.items)).
		Msg("definition mapped")

	return c, nil
}

// mapGraphs maps all graphs and lays them out on a two column screen.
func (c *Converter) mapGraphs() error {
	c.screen = &model.Screen{
		Name:  fmt.Sprintf("%s Graphs", c.mapper.AppName()),
		HSize: 2,
		VSize: int(math.Round(float64(len(c.def.Graphs)) / 2)),
	}

	seen := make(map[string]bool)
	x, y := 0, 0
	for _, g := range c.def.Graphs {
		graph, items, err := c.mapper.MapGraph(g)
		if err != nil {
			return err
		}
		c.graphs = append(c.graphs, graph)
		c.items = append(c.items, items...)

		for _, ds := range g.DataSources {
			if !seen[ds.Name] {
				seen[ds.Name] = true
				c.itemKeys = append(c.itemKeys, ds.Name)
			}
		}

		c.screen.ScreenItems.ScreenItem = append(c.screen.ScreenItems.ScreenItem, &model.ScreenItem{
			ResourceType: 0, // graph
			Width:        500,
			Height:       120,
			VAlign:       1,
			HAlign:       0,
			Colspan:      1,
			Rowspan:      1,
			X:            x,
			Y:            y,
			Dynamic:      1,
			Elements:     25,
			MaxColumns:   3,
			Resource: model.ResourceRef{
				Name: g.Name,
				Host: c.mapper.TemplateName(),
			},
		})
		if x == 0 {
			x = 1
		} else {
			x = 0
			y++
		}
	}

	return nil
}

// ItemKeys returns the Cacti data source names collected from all graphs.
func (c *Converter) ItemKeys() []string {
	return append([]string(nil), c.itemKeys...)
}

// newExport returns the export skeleton shared by every mode.
func (c *Converter) newExport() (*model.Export, *model.Template) {
	groups := model.GroupList{Group: []model.Group{{Name: c.cfg.Template.Group}}}
	name := c.mapper.TemplateName()

	tmpl := &model.Template{
		Template:     name,
		Name:         name,
		Description:  name,
		Groups:       groups,
		Applications: c.mapper.applications(),
	}

	export := &model.Export{
		Version:   c.cfg.Zabbix.Version,
		Date:      c.now().UTC().Format(exportDateFormat),
		Groups:    groups,
		Templates: model.TemplateList{Template: []*model.Template{tmpl}},
	}
	return export, tmpl
}

// cloneItems copies the mapped items so builds do not share state.
func (c *Converter) cloneItems() []*model.Item {
	items := make([]*model.Item, 0, len(c.items))
	for _, item := range c.items {
		items = append(items, item.Clone())
	}
	return items
}

// BuildTemplate assembles the full template: items, graphs, screen and
// triggers. Two items referenced by the shipped triggers are added.
func (c *Converter) BuildTemplate(triggers []*model.TriggerDefinition) (*model.Result, error) {
	export, tmpl := c.newExport()

	items := c.cloneItems()
	process := c.cfg.Template.Process
	items = append(items,
		c.mapper.CreateItem(ItemSpec{
			Key:      fmt.Sprintf("proc.num[%s]", process),
			Name:     fmt.Sprintf("Total number of %s processes", process),
			Interval: c.cfg.Intervals.ExtraItem,
		}),
		c.mapper.CreateItem(ItemSpec{
			Key:      c.mapper.FormatKey(runningSlaveKey),
			Name:     fmt.Sprintf("%s running slave", c.mapper.AppName()),
			Interval: c.cfg.Intervals.ExtraItem,
		}),
	)
	tmpl.Items.Item = items
	tmpl.Screens.Screen = []*model.Screen{c.screen}
	export.Graphs.Graph = c.graphs

	refs := c.mapper.TriggerRefs(triggers)
	for _, def := range triggers {
		trigger, err := c.mapper.MapTrigger(def, refs)
		if err != nil {
			return nil, err
		}
		export.Triggers.Trigger = append(export.Triggers.Trigger, trigger)
	}

	c.logger.Debug().
		Int("items", len(items)).
		Int("graphs", len(c.graphs)).
		Int("triggers", len(export.Triggers.Trigger)).
		Msg("template built")

	return &model.Result{Mode: model.OutputModeXML, Export: export}, nil
}

// BuildDiscoveryTemplate assembles a low-level discovery template. Mapped
// and extra items become prototypes, grouped into discovery rules by
// category. Graphs, triggers and screens are left out.
func (c *Converter) BuildDiscoveryTemplate(extra []*model.ExtraItemDefinition) (*model.Result, error) {
	export, tmpl := c.newExport()

	items := c.cloneItems()
	for _, def := range extra {
		item, err := c.mapper.ExtraItem(def)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	macros := NewInstanceMacros(c.mapper.AppName())
	prototypes := make([]*model.Item, 0, len(items))
	for _, item := range items {
		prototypes = append(prototypes, ToPrototype(item, macros))
	}
	prototypes = RemoveDuplicateKeys(prototypes)
	prototypes = c.categorizer.Categorize(prototypes)

	rules := c.mapper.BuildDiscoveryRules(prototypes)
	tmpl.DiscoveryRules = &model.DiscoveryRuleList{DiscoveryRule: rules}

	c.logger.Debug().
		Int("prototypes", len(prototypes)).
		Int("rules", len(rules)).
		Msg("discovery template built")

	return &model.Result{Mode: model.OutputModeXMLLLD, Export: export}, nil
}

// BuildAgentConfig creates one UserParameter per collected item key,
// sorted by key, followed by the replication state check.
func (c *Converter) BuildAgentConfig(table model.KeyTable) (*model.Result, error) {
	keys := c.ItemKeys()
	sort.Slice(keys, func(i, j int) bool {
		return c.mapper.FormatKey(keys[i]) < c.mapper.FormatKey(keys[j])
	})

	params := make([]*model.UserParameter, 0, len(keys)+1)
	for _, key := range keys {
		arg, ok := table[key]
		if !ok {
			return nil, fmt.Errorf("%w for item %s", ErrMissingScriptArgument, key)
		}
		params = append(params, c.userParameter(c.mapper.FormatKey(key), arg))
	}
	params = append(params, c.userParameter(c.mapper.FormatKey(runningSlaveKey), runningSlaveKey))

	c.logger.Debug().Int("parameters", len(params)).Msg("agent config built")

	return &model.Result{Mode: model.OutputModeConfig, UserParameters: params}, nil
}

func (c *Converter) userParameter(key, arg string) *model.UserParameter {
	return &model.UserParameter{
		Key:     key,
		Command: fmt.Sprintf("%s/%s %s", c.cfg.Agent.ScriptPath, c.cfg.Agent.Wrapper, arg),
	}
}
