// Package model provides data models for the template generator.
package model

import "encoding/xml"

// =============================================================================
// Export Root
// =============================================================================

// Export is the root of a Zabbix configuration export document.
type Export struct {
	XMLName   xml.Name     `xml:"zabbix_export"`
	Version   string       `xml:"version"`
	Date      string       `xml:"date"` // 2006-01-02T15:04:05Z, UTC
	Groups    GroupList    `xml:"groups"`
	Templates TemplateList `xml:"templates"`
	Graphs    GraphList    `xml:"graphs"`
	Triggers  TriggerList  `xml:"triggers"`
}

// Empty renders as an empty element.
type Empty struct{}

// Group is a host group.
type Group struct {
	Name string `xml:"name"`
}

// GroupList wraps <group> elements.
type GroupList struct {
	Group []Group `xml:"group"`
}

// Application is a Zabbix application (item grouping).
type Application struct {
	Name string `xml:"name"`
}

// ApplicationList wraps <application> elements.
type ApplicationList struct {
	Application []Application `xml:"application"`
}

// TemplateList wraps <template> elements.
type TemplateList struct {
	Template []*Template `xml:"template"`
}

// Template is a Zabbix template.
type Template struct {
	Template       string             `xml:"template"`
	Name           string             `xml:"name"`
	Description    string             `xml:"description"`
	Groups         GroupList          `xml:"groups"`
	Applications   ApplicationList    `xml:"applications"`
	Items          ItemList           `xml:"items"`
	DiscoveryRules *DiscoveryRuleList `xml:"discovery_rules,omitempty"`
	Macros         string             `xml:"macros"`
	Screens        ScreenList         `xml:"screens"`
}

// =============================================================================
// Items
// =============================================================================

// ItemList wraps <item> elements.
type ItemList struct {
	Item []*Item `xml:"item"`
}

// Item is a Zabbix item or, inside a discovery rule, an item prototype.
type Item struct {
	Name                  string          `xml:"name"`
	Type                  ItemType        `xml:"type"`
	SNMPCommunity         string          `xml:"snmp_community"`
	Multiplier            int             `xml:"multiplier"` // 1 when Formula is applied
	SNMPOID               string          `xml:"snmp_oid"`
	Key                   string          `xml:"key"`
	Delay                 int             `xml:"delay"` // update interval, seconds
	History               int             `xml:"history"`
	Trends                int             `xml:"trends"`
	Status                int             `xml:"status"`
	ValueType             ValueType       `xml:"value_type"`
	AllowedHosts          string          `xml:"allowed_hosts"`
	Units                 string          `xml:"units"`
	Delta                 StorageType     `xml:"delta"`
	SNMPv3ContextName     string          `xml:"snmpv3_contextname"`
	SNMPv3SecurityName    string          `xml:"snmpv3_securityname"`
	SNMPv3SecurityLevel   int             `xml:"snmpv3_securitylevel"`
	SNMPv3AuthProtocol    int             `xml:"snmpv3_authprotocol"`
	SNMPv3AuthPassphrase  string          `xml:"snmpv3_authpassphrase"`
	SNMPv3PrivProtocol    int             `xml:"snmpv3_privprotocol"`
	SNMPv3PrivPassphrase  string          `xml:"snmpv3_privpassphrase"`
	Formula               int             `xml:"formula"` // custom multiplier
	DelayFlex             string          `xml:"delay_flex"`
	Params                string          `xml:"params"`
	IPMISensor            string          `xml:"ipmi_sensor"`
	DataType              DataType        `xml:"data_type"`
	AuthType              int             `xml:"authtype"`
	Username              string          `xml:"username"`
	Password              string          `xml:"password"`
	PublicKey             string          `xml:"publickey"`
	PrivateKey            string          `xml:"privatekey"`
	Port                  string          `xml:"port"`
	Description           string          `xml:"description"`
	InventoryLink         int             `xml:"inventory_link"`
	Applications          ApplicationList `xml:"applications"`
	ValueMap              string          `xml:"valuemap"`
	LogTimeFmt            string          `xml:"logtimefmt"`
	ApplicationPrototypes *Empty          `xml:"application_prototypes,omitempty"` // prototypes only

	// Generator-only fields, never exported.
	Category              Category `xml:"-"`
	DoNotConvertToTrapper bool     `xml:"-"`
}

// Clone returns a shallow copy of the item with its own application list.
func (i *Item) Clone() *Item {
	c := *i
	c.Applications.Application = append([]Application(nil), i.Applications.Application...)
	return &c
}

// =============================================================================
// Graphs
// =============================================================================

// GraphList wraps <graph> elements.
type GraphList struct {
	Graph []*Graph `xml:"graph"`
}

// Graph is a Zabbix graph.
type Graph struct {
	Name           string        `xml:"name"`
	Width          int           `xml:"width"`
	Height         int           `xml:"height"`
	YAxisMin       int           `xml:"yaxismin"`
	YAxisMax       int           `xml:"yaxismax"`
	ShowWorkPeriod int           `xml:"show_work_period"`
	ShowTriggers   int           `xml:"show_triggers"`
	Type           GraphType     `xml:"type"`
	ShowLegend     int           `xml:"show_legend"`
	Show3D         int           `xml:"show_3d"`
	PercentLeft    string        `xml:"percent_left"`
	PercentRight   string        `xml:"percent_right"`
	YMinType1      int           `xml:"ymin_type_1"`
	YMaxType1      int           `xml:"ymax_type_1"`
	YMinItem1      int           `xml:"ymin_item_1"`
	YMaxItem1      int           `xml:"ymax_item_1"`
	GraphItems     GraphItemList `xml:"graph_items"`
}

// GraphItemList wraps <graph_item> elements.
type GraphItemList struct {
	GraphItem []*GraphItem `xml:"graph_item"`
}

// GraphItem is a series of a Zabbix graph.
type GraphItem struct {
	SortOrder int          `xml:"sortorder"`
	DrawType  DrawType     `xml:"drawtype"`
	Color     string       `xml:"color"`
	YAxisSide YAxisSide    `xml:"yaxisside"`
	CalcFnc   CalcFunction `xml:"calc_fnc"`
	Type      int          `xml:"type"`
	Item      ItemRef      `xml:"item"`
}

// ItemRef references an item of a host or template.
type ItemRef struct {
	Host string `xml:"host"`
	Key  string `xml:"key"`
}

// =============================================================================
// Triggers
// =============================================================================

// TriggerList wraps <trigger> elements.
type TriggerList struct {
	Trigger []*Trigger `xml:"trigger"`
}

// Trigger is a Zabbix trigger.
type Trigger struct {
	Expression   string         `xml:"expression"`
	Name         string         `xml:"name"`
	URL          string         `xml:"url"`
	Status       int            `xml:"status"` // 0 enabled
	Priority     Severity       `xml:"priority"`
	Description  string         `xml:"description"`
	Type         int            `xml:"type"`
	Dependencies DependencyList `xml:"dependencies"`
}

// DependencyList wraps <dependency> elements.
type DependencyList struct {
	Dependency []Dependency `xml:"dependency"`
}

// Dependency references another trigger by name and expression.
type Dependency struct {
	Name       string `xml:"name"`
	Expression string `xml:"expression"`
}

// =============================================================================
// Screens
// =============================================================================

// ScreenList wraps <screen> elements.
type ScreenList struct {
	Screen []*Screen `xml:"screen"`
}

// Screen is a grid of graphs.
type Screen struct {
	Name        string         `xml:"name"`
	HSize       int            `xml:"hsize"`
	VSize       int            `xml:"vsize"`
	ScreenItems ScreenItemList `xml:"screen_items"`
}

// ScreenItemList wraps <screen_item> elements.
type ScreenItemList struct {
	ScreenItem []*ScreenItem `xml:"screen_item"`
}

// ScreenItem is one cell of a screen.
type ScreenItem struct {
	ResourceType int         `xml:"resourcetype"` // 0 graph
	Width        int         `xml:"width"`
	Height       int         `xml:"height"`
	X            int         `xml:"x"`
	Y            int         `xml:"y"`
	Colspan      int         `xml:"colspan"`
	Rowspan      int         `xml:"rowspan"`
	Elements     int         `xml:"elements"`
	VAlign       int         `xml:"valign"`
	HAlign       int         `xml:"halign"`
	Style        int         `xml:"style"`
	URL          string      `xml:"url"`
	Dynamic      int         `xml:"dynamic"`
	SortTriggers int         `xml:"sort_triggers"`
	Resource     ResourceRef `xml:"resource"`
	MaxColumns   int         `xml:"max_columns"`
	Application  string      `xml:"application"`
}

// ResourceRef references a graph of a host or template.
type ResourceRef struct {
	Name string `xml:"name"`
	Host string `xml:"host"`
}

// =============================================================================
// Low-Level Discovery
// =============================================================================

// DiscoveryRuleList wraps <discovery_rule> elements.
type DiscoveryRuleList struct {
	DiscoveryRule []*DiscoveryRule `xml:"discovery_rule"`
}

// DiscoveryRule is a low-level discovery rule with its prototypes.
type DiscoveryRule struct {
	Name                 string            `xml:"name"`
	Type                 ItemType          `xml:"type"`
	SNMPCommunity        string            `xml:"snmp_community"`
	SNMPOID              string            `xml:"snmp_oid"`
	Key                  string            `xml:"key"`
	Delay                int               `xml:"delay"`
	Status               int               `xml:"status"`
	AllowedHosts         string            `xml:"allowed_hosts"`
	SNMPv3ContextName    string            `xml:"snmpv3_contextname"`
	SNMPv3SecurityName   string            `xml:"snmpv3_securityname"`
	SNMPv3SecurityLevel  int               `xml:"snmpv3_securitylevel"`
	SNMPv3AuthProtocol   int               `xml:"snmpv3_authprotocol"`
	SNMPv3AuthPassphrase string            `xml:"snmpv3_authpassphrase"`
	SNMPv3PrivProtocol   int               `xml:"snmpv3_privprotocol"`
	SNMPv3PrivPassphrase string            `xml:"snmpv3_privpassphrase"`
	DelayFlex            string            `xml:"delay_flex"`
	Params               string            `xml:"params"`
	IPMISensor           string            `xml:"ipmi_sensor"`
	AuthType             int               `xml:"authtype"`
	Username             string            `xml:"username"`
	Password             string            `xml:"password"`
	PublicKey            string            `xml:"publickey"`
	PrivateKey           string            `xml:"privatekey"`
	Port                 string            `xml:"port"`
	Filter               DiscoveryFilter   `xml:"filter"`
	Lifetime             int               `xml:"lifetime"` // days
	Description          string            `xml:"description"`
	ItemPrototypes       ItemPrototypeList `xml:"item_prototypes"`
	TriggerPrototypes    Empty             `xml:"trigger_prototypes"`
	GraphPrototypes      Empty             `xml:"graph_prototypes"`
	HostPrototypes       Empty             `xml:"host_prototypes"`
}

// DiscoveryFilter is the (unused) filter block of a discovery rule.
type DiscoveryFilter struct {
	EvalType   int    `xml:"evaltype"`
	Formula    string `xml:"formula"`
	Conditions Empty  `xml:"conditions"`
}

// ItemPrototypeList wraps <item_prototype> elements.
type ItemPrototypeList struct {
	ItemPrototype []*Item `xml:"item_prototype"`
}
