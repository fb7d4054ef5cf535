// Package rules holds the lint rules linelint applies to file content and
// the ordered rule set that runs them.
package rules

import (
	"fmt"

	"github.com/wizzomafizzo/linelint/internal/lineending"
)

// Rule names as they appear in reports.
const (
	LineEndRuleName            = "LineEnd"
	TrailingWhitespaceRuleName = "TrailingWhitespace"
)

// maxFormatPasses bounds how often RuleSet.Format re-runs the rules while
// the content keeps changing.
const maxFormatPasses = 8

// Issue is a single rule violation found in a file.
type Issue struct {
	Rule        string `json:"rule"`
	Filename    string `json:"filename"`
	Description string `json:"description"`
	Line        int    `json:"line"`
}

// String renders the issue the way the CLI prints it.
func (i Issue) String() string {
	return fmt.Sprintf("%s: %s in file %s at line %d", i.Rule, i.Description, i.Filename, i.Line)
}

// Rule inspects or rewrites whole-file content. Implementations must be
// pure: the same inputs always give the same outputs.
type Rule interface {
	// Name identifies the rule in issues.
	Name() string

	// Check returns the violations found in content, in line order.
	Check(policy lineending.Policy, filename, content string) []Issue

	// Format returns content rewritten to satisfy the rule.
	Format(policy lineending.Policy, content string) string
}

// RuleSet is an ordered, read-only list of rules sharing one line ending
// policy.
type RuleSet struct {
	rules  []Rule
	policy lineending.Policy
}

// NewRuleSet builds a rule set. Rules run in the order given.
func NewRuleSet(policy lineending.Policy, rules ...Rule) *RuleSet {
	return &RuleSet{
		rules:  append([]Rule(nil), rules...),
		policy: policy,
	}
}

// Default returns the standard rule set: line ending first, then trailing
// whitespace.
func Default(policy lineending.Policy) *RuleSet {
	return NewRuleSet(policy, &LineEndRule{}, &TrailingWhitespaceRule{})
}

// Policy returns the line ending policy of the set.
func (s *RuleSet) Policy() lineending.Policy {
	return s.policy
}

// Rules returns a copy of the rules in execution order.
func (s *RuleSet) Rules() []Rule {
	return append([]Rule(nil), s.rules...)
}

// Check runs every rule against content and concatenates their issues,
// rule by rule.
func (s *RuleSet) Check(filename, content string) []Issue {
	var issues []Issue
	for _, rule := range s.rules {
		issues = append(issues, rule.Check(s.policy, filename, content)...)
	}
	return issues
}

// Format pipes content through every rule in order. A rule can undo what
// an earlier one fixed (trimming a whitespace-only last line leaves a blank
// line behind), so the pass repeats until the content is stable.
func (s *RuleSet) Format(content string) string {
	current := content
	for range maxFormatPasses {
		next := current
		for _, rule := range s.rules {
			next = rule.Format(s.policy, next)
		}
		if next == current {
			break
		}
		current = next
	}
	return current
}
