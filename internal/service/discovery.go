// Package service provides the Cacti to Zabbix mapping logic of the template generator.
package service

import (
	"fmt"
	"regexp"
	"strings"

	"zabbix-template/internal/model"
)

// categoryKeywords selects the discovery category of an item by the
// keyword following the application prefix of its key. Keywords are
// tried in this order; the first match wins.
var categoryKeywords = []struct {
	category model.Category
	keyword  string
}{
	{model.CategorySlave, "slave"},
	{model.CategoryQueryCounter, "query-time"},
	{model.CategoryWsrep, "wsrep"},
}

// Categorizer assigns discovery categories to items.
type Categorizer struct {
	patterns map[model.Category]*regexp.Regexp
}

// NewCategorizer compiles the keyword patterns for the keys produced by m.
// A pattern matches "<app>.<keyword>-" at the start of a key, ignoring case.
func NewCategorizer(m *Mapper) *Categorizer {
	patterns := make(map[model.Category]*regexp.Regexp, len(categoryKeywords))
	for _, ck := range categoryKeywords {
		prefix := regexp.QuoteMeta(m.FormatKey(ck.keyword) + "-")
		patterns[ck.category] = regexp.MustCompile("(?i)^" + prefix)
	}
	return &Categorizer{patterns: patterns}
}

// Categorize tags every item that has no category yet. Items already
// tagged are left alone, so categorizing twice changes nothing.
func (c *Categorizer) Categorize(items []*model.Item) []*model.Item {
	for _, item := range items {
		if item.Category != "" {
			continue
		}
		item.Category = c.categoryOf(item.Key)
	}
	return items
}

func (c *Categorizer) categoryOf(key string) model.Category {
	for _, ck := range categoryKeywords {
		if c.patterns[ck.category].MatchString(key) {
			return ck.category
		}
	}
	return model.CategoryCommon
}

// InstanceMacros are the discovery macros of one monitored instance.
type InstanceMacros struct {
	Instance     string // e.g. {#MYSQL_INSTANCE}
	InstanceName string // e.g. {#MYSQL_INSTANCE_NAME}
}

// NewInstanceMacros returns the discovery macros for appName.
func NewInstanceMacros(appName string) InstanceMacros {
	prefix := strings.ToUpper(appName)
	return InstanceMacros{
		Instance:     fmt.Sprintf("{#%s_INSTANCE}", prefix),
		InstanceName: fmt.Sprintf("{#%s_INSTANCE_NAME}", prefix),
	}
}

// ToPrototype returns a prototype copy of item for discovered instances.
// Unless the item opts out, the prototype is a trapper item: per-instance
// values are pushed by the agent side script instead of being polled.
func ToPrototype(item *model.Item, macros InstanceMacros) *model.Item {
	p := item.Clone()
	p.Name += " " + macros.InstanceName
	if !strings.Contains(p.Key, macros.Instance) {
		p.Key += "[" + macros.Instance + "]"
	}
	p.ApplicationPrototypes = &model.Empty{}

	if !p.DoNotConvertToTrapper {
		p.Type = model.ItemTypeTrapper
		p.Delay = 0
	}
	return p
}

// RemoveDuplicateKeys keeps one item per key. The last item with a given
// key wins and takes the position of the first one.
func RemoveDuplicateKeys(items []*model.Item) []*model.Item {
	index := make(map[string]int, len(items))
	result := make([]*model.Item, 0, len(items))
	for _, item := range items {
		if i, ok := index[item.Key]; ok {
			result[i] = item
			continue
		}
		index[item.Key] = len(result)
		result = append(result, item)
	}
	return result
}

// discoveryRuleDef describes one generated discovery rule.
type discoveryRuleDef struct {
	key      string // unprefixed key
	name     string // format with the application name
	category model.Category
}

// discoveryRuleDefs are the generated rules, in output order.
var discoveryRuleDefs = []discoveryRuleDef{
	{key: "instances[]", name: "%s Instances", category: model.CategoryCommon},
	{key: "instances[slaves]", name: "%s Slave instances", category: model.CategorySlave},
	{key: "instances[with_query_counter]", name: "%s Instances with query counter", category: model.CategoryQueryCounter},
	{key: "instances[wsrep]", name: "%s Galera instances", category: model.CategoryWsrep},
}

// IndexByCategory groups items by category. Untagged items are common.
func IndexByCategory(items []*model.Item) map[model.Category][]*model.Item {
	result := make(map[model.Category][]*model.Item)
	for _, item := range items {
		category := item.Category
		if category == "" {
			category = model.CategoryCommon
		}
		result[category] = append(result[category], item)
	}
	return result
}

// BuildDiscoveryRules creates one discovery rule per category that has
// at least one item prototype. Rules without prototypes are omitted.
func (m *Mapper) BuildDiscoveryRules(prototypes []*model.Item) []*model.DiscoveryRule {
	byCategory := IndexByCategory(prototypes)

	rules := make([]*model.DiscoveryRule, 0, len(discoveryRuleDefs))
	for _, def := range discoveryRuleDefs {
		members := byCategory[def.category]
		if len(members) == 0 {
			continue
		}
		rule := m.CreateDiscoveryRule(fmt.Sprintf(def.name, m.appName), def.key)
		rule.ItemPrototypes.ItemPrototype = members
		rules = append(rules, rule)

		m.logger.Debug().
			Str("rule", rule.Key).
			Int("prototypes", len(members)).
			Msg("discovery rule built")
	}
	return rules
}

// CreateDiscoveryRule returns an agent discovery rule with no prototypes.
func (m *Mapper) CreateDiscoveryRule(name, key string) *model.DiscoveryRule {
	return &model.DiscoveryRule{
		Name:     name,
		Type:     model.ItemTypeZabbixAgent,
		Key:      m.FormatKey(key),
		Delay:    m.intervals.DiscoveryRule,
		Lifetime: 1,
	}
}
