package model

// Rule is a single pattern/replacement pair. Rules are applied in the order
// they appear in a RuleSet and the replacement is inserted literally.
type Rule struct {
	Name        string `yaml:"name"`
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// RuleSet is a named, ordered list of rules.
type RuleSet struct {
	Name  string `yaml:"name"`
	Rules []Rule `yaml:"rules"`
}
