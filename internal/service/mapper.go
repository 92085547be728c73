// Package service provides the Cacti to Zabbix mapping logic of the template generator.
package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"zabbix-template/internal/config"
	"zabbix-template/internal/model"
)

// Errors returned by the mapper. Messages wrap them with the offending value.
var (
	ErrUnsupported            = errors.New("not supported")
	ErrUnresolvedDependency   = errors.New("dependency trigger is not defined")
	ErrMissingScriptArgument  = errors.New("no script argument defined")
	errInvalidTriggerSeverity = errors.New("invalid trigger severity")
)

// templatePlaceholder is replaced by the template name in trigger expressions.
const templatePlaceholder = "TEMPLATE"

// namePrefix matches a leading all-caps word that Cacti uses as a
// namespace in data source names (e.g. "MYSQL_threads" -> "threads").
var namePrefix = regexp.MustCompile(`^[A-Z]{4,} `)

// ItemSpec describes an item to create. Zero values take the defaults of
// CreateItem: Zabbix agent, decimal, as is, the configured item interval.
type ItemSpec struct {
	Key        string
	Name       string
	Type       model.ItemType
	ValueType  model.ValueType
	DataType   model.DataType
	Storage    model.StorageType
	Unit       string
	Multiplier *int // custom multiplier, nil for none
	Interval   int  // seconds, 0 for the configured default
}

// Mapper translates Cacti graph templates and trigger definitions into
// Zabbix items, graphs and triggers for one template.
type Mapper struct {
	appName      string
	templateName string
	intervals    config.IntervalsConfig
	retention    config.RetentionConfig
	titler       cases.Caser
	logger       zerolog.Logger
}

// NewMapper creates a Mapper for the template generated from def.
func NewMapper(cfg *config.Config, def *model.Definition, logger zerolog.Logger) *Mapper {
	return &Mapper{
		appName:      def.AppName(),
		templateName: def.TemplateName(cfg.Template.Vendor),
		intervals:    cfg.Intervals,
		retention:    cfg.Retention,
		titler:       cases.Title(language.Und),
		logger:       logger.With().Str("component", "mapper").Logger(),
	}
}

// AppName returns the application name, which prefixes every item key.
func (m *Mapper) AppName() string {
	return m.appName
}

// TemplateName returns the name of the generated template.
func (m *Mapper) TemplateName() string {
	return m.templateName
}

// FormatKey namespaces name with the application prefix. Underscores are
// replaced with dashes because the agent rejects keys containing them.
func (m *Mapper) FormatKey(name string) string {
	return fmt.Sprintf("%s.%s", m.appName, strings.ReplaceAll(name, "_", "-"))
}

// DisplayName derives an item name from a Cacti data source name:
// "MYSQL_innodb_log_writes" -> "Innodb Log Writes".
func (m *Mapper) DisplayName(name string) string {
	name = strings.ReplaceAll(name, "_", " ")
	// Stripped before title casing. The Percona generator applied the
	// pattern after .title(), so it never matched and kept "Mysql Threads".
	name = namePrefix.ReplaceAllString(name, "")
	return m.titler.String(name)
}

// CreateItem builds a Zabbix item from spec.
func (m *Mapper) CreateItem(spec ItemSpec) *model.Item {
	interval := spec.Interval
	if interval == 0 {
		interval = m.intervals.Item
	}

	item := &model.Item{
		Name:         spec.Name,
		Type:         spec.Type,
		Key:          spec.Key,
		ValueType:    spec.ValueType,
		DataType:     spec.DataType,
		Units:        spec.Unit,
		Delay:        interval,
		History:      m.retention.HistoryDays,
		Trends:       m.retention.TrendsDays,
		Delta:        spec.Storage,
		Applications: m.applications(),
		Description:  fmt.Sprintf("%s %s", m.appName, spec.Name),
		Formula:      1,
	}

	if spec.Multiplier != nil {
		item.Multiplier = 1
		item.Formula = *spec.Multiplier
	}

	return item
}

// applications returns the application list every item belongs to.
func (m *Mapper) applications() model.ApplicationList {
	return model.ApplicationList{Application: []model.Application{{Name: m.appName}}}
}

// MapGraph converts a Cacti graph template into a Zabbix graph and the
// items backing its data sources. Unsupported draw styles, CDEFs, data
// source types and base values are rejected with ErrUnsupported.
func (m *Mapper) MapGraph(g *model.GraphTemplate) (*model.Graph, []*model.Item, error) {
	graph := newGraph(g.Name)
	multipliers := make(map[string]*int)

	for i, s := range g.Series {
		drawType, ok := drawTypeOf(s.Type)
		if !ok {
			return nil, nil, fmt.Errorf("%w: Cacti graph item type %s for item %s of graph %q",
				ErrUnsupported, s.Type, s.Item, g.Name)
		}

		factor, ok := multiplierOf(s.CDEF)
		if !ok {
			return nil, nil, fmt.Errorf("%w: CDEF %s for item %s of graph %q",
				ErrUnsupported, s.CDEF, s.Item, g.Name)
		}
		multipliers[s.Item] = factor

		graph.GraphItems.GraphItem = append(graph.GraphItems.GraphItem, &model.GraphItem{
			SortOrder: i,
			DrawType:  drawType,
			Color:     s.Color,
			YAxisSide: model.YAxisSideLeft,
			CalcFnc:   model.CalcFunctionAvg,
			Item: model.ItemRef{
				Host: m.templateName,
				Key:  m.FormatKey(s.Item),
			},
		})
	}

	items := make([]*model.Item, 0, len(g.DataSources))
	for _, ds := range g.DataSources {
		storage, ok := storageOfDataSource(ds.TypeID.Int())
		if !ok {
			return nil, nil, fmt.Errorf("%w: Cacti DS type ABSOLUTE for item %s", ErrUnsupported, ds.Name)
		}

		unit, ok := unitOfBase(g.BaseValue.Int())
		if !ok {
			return nil, nil, fmt.Errorf("%w: base_value %d for item %s", ErrUnsupported, g.BaseValue.Int(), ds.Name)
		}

		items = append(items, m.CreateItem(ItemSpec{
			Key:        m.FormatKey(ds.Name),
			Name:       m.DisplayName(ds.Name),
			Type:       model.ItemTypeZabbixAgent,
			ValueType:  model.ValueTypeFloat,
			DataType:   model.DataTypeDecimal,
			Storage:    storage,
			Unit:       unit,
			Multiplier: multipliers[ds.Name],
		}))
	}

	m.logger.Debug().
		Str("graph", g.Name).
		Int("series", len(graph.GraphItems.GraphItem)).
		Int("items", len(items)).
		Msg("graph mapped")

	return graph, items, nil
}

// newGraph returns a graph with the layout used for every generated graph.
func newGraph(name string) *model.Graph {
	return &model.Graph{
		Name:           name,
		Width:          900,
		Height:         200,
		Type:           model.GraphTypeNormal,
		ShowLegend:     1,
		ShowWorkPeriod: 1,
		ShowTriggers:   1,
		PercentLeft:    "0.00",
		PercentRight:   "0.00",
	}
}

// ExtraItem builds an item from an extra item definition.
// Keys without a dot are namespaced with FormatKey.
func (m *Mapper) ExtraItem(def *model.ExtraItemDefinition) (*model.Item, error) {
	storage, ok := storageOfName(def.ValueStorageType)
	if !ok {
		return nil, fmt.Errorf("%w: value_storage_type %q for extra item %s", ErrUnsupported, def.ValueStorageType, def.Key)
	}

	key := def.Key
	if !strings.Contains(key, ".") {
		key = m.FormatKey(key)
	}
	key += def.PrototypeSuffix

	valueType := model.ValueTypeFloat
	switch {
	case def.IsText:
		valueType = model.ValueTypeText
	case def.IsUnsigned, def.IsBool:
		valueType = model.ValueTypeUnsigned
	}

	dataType := model.DataTypeDecimal
	if def.IsBool {
		dataType = model.DataTypeBoolean
	}

	item := m.CreateItem(ItemSpec{
		Key:       key,
		Name:      def.Name,
		ValueType: valueType,
		DataType:  dataType,
		Storage:   storage,
		Unit:      def.Unit,
		Interval:  m.intervals.ExtraItem,
	})
	if def.UpdateInterval != nil {
		item.Delay = *def.UpdateInterval
	}
	item.DoNotConvertToTrapper = def.DoNotConvertToTrapper
	item.Category = def.Category

	return item, nil
}

// TriggerRefs indexes trigger expressions by name with the template
// placeholder substituted. Later definitions win on duplicate names.
func (m *Mapper) TriggerRefs(defs []*model.TriggerDefinition) map[string]string {
	refs := make(map[string]string, len(defs))
	for _, t := range defs {
		refs[t.Name] = m.expandExpression(t.Expression)
	}
	return refs
}

// MapTrigger converts a trigger definition. Dependencies are looked up in
// known (see TriggerRefs); an unknown dependency is an error.
func (m *Mapper) MapTrigger(def *model.TriggerDefinition, known map[string]string) (*model.Trigger, error) {
	priority, ok := severityOf(def.Severity)
	if !ok {
		return nil, fmt.Errorf("%w %q for trigger '%s'", errInvalidTriggerSeverity, def.Severity, def.Name)
	}

	trigger := &model.Trigger{
		Name:       def.Name,
		Expression: m.expandExpression(def.Expression),
		Priority:   priority,
		Type:       int(model.ItemTypeZabbixAgent),
	}

	for _, dep := range def.Dependencies {
		expression := known[dep]
		if expression == "" {
			return nil, fmt.Errorf("%w: '%s' for trigger '%s'", ErrUnresolvedDependency, dep, def.Name)
		}
		trigger.Dependencies.Dependency = append(trigger.Dependencies.Dependency, model.Dependency{
			Name:       dep,
			Expression: expression,
		})
	}

	return trigger, nil
}

func (m *Mapper) expandExpression(expression string) string {
	return strings.ReplaceAll(expression, templatePlaceholder, m.templateName)
}
