// Package responder picks the support bot's canned reply for a message.
package responder

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// TopicFallback is reported when no rule matched.
const TopicFallback = "fallback"

//go:embed rules.yaml
var defaultRules []byte

var ErrInvalidRules = errors.New("invalid responder rules")

// Rule answers Reply when the message contains any of Keywords.
type Rule struct {
	Topic    string   `yaml:"topic" json:"topic"`
	Keywords []string `yaml:"keywords" json:"keywords"`
	Reply    string   `yaml:"reply" json:"reply"`
}

type ruleFile struct {
	Greeting string `yaml:"greeting"`
	Fallback string `yaml:"fallback"`
	Rules    []Rule `yaml:"rules"`
}

type Responder struct {
	greeting string
	fallback string
	rules    []Rule
}

// Default returns the responder built from the embedded rule table.
func Default() *Responder {
	r, err := Parse(defaultRules)
	if err != nil {
		panic(fmt.Sprintf("responder: embedded rules: %v", err))
	}
	return r
}

// Parse reads a YAML rule table. Keywords are folded the same way as
// incoming messages so matching is case-insensitive on both sides.
func Parse(data []byte) (*Responder, error) {
	var f ruleFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}
	if f.Greeting == "" || f.Fallback == "" {
		return nil, fmt.Errorf("%w: greeting and fallback are required", ErrInvalidRules)
	}
	for i, rule := range f.Rules {
		if rule.Topic == "" || rule.Reply == "" || len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("%w: rule %d is incomplete", ErrInvalidRules, i)
		}
		for j, kw := range rule.Keywords {
			f.Rules[i].Keywords[j] = fold(kw)
		}
	}
	return &Responder{greeting: f.Greeting, fallback: f.Fallback, rules: f.Rules}, nil
}

func (r *Responder) Greeting() string { return r.greeting }

// Rules returns the table in evaluation order.
func (r *Responder) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	for i, rule := range r.rules {
		rule.Keywords = slices.Clone(rule.Keywords)
		out[i] = rule
	}
	return out
}

// Reply returns the topic and text of the first rule whose keyword occurs
// in text, or the fallback.
func (r *Responder) Reply(text string) (topic, reply string) {
	folded := fold(text)
	for _, rule := range r.rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(folded, kw) {
				return rule.Topic, rule.Reply
			}
		}
	}
	return TopicFallback, r.fallback
}

// fold composes combining accents and lowercases with French rules.
// Casers hold state, so one is made per call.
func fold(s string) string {
	return cases.Lower(language.French).String(norm.NFC.String(s))
}
