package responder

import (
	"errors"
	"strings"
	"testing"
)

func TestReply(t *testing.T) {
	t.Parallel()
	r := Default()

	tests := []struct {
		name  string
		text  string
		topic string
	}{
		{"delivery keyword", "Quelle est la livraison ?", "delivery"},
		{"uppercase", "LIVRAISON", "delivery"},
		{"accented", "Quel DÉLAI pour Oran ?", "delivery"},
		{"decomposed accent", "quel de\u0301lai ?", "delivery"},
		{"delivery wins over payment", "livraison et prix", "delivery"},
		{"delivery wins regardless of position", "prix du compte pour la livraison", "delivery"},
		{"payment", "Comment se passe le paiement", "payment"},
		{"price", "Quel est le Prix ?", "payment"},
		{"payment before account", "prix du compte", "payment"},
		{"account", "créer un compte", "account"},
		{"registration", "Inscription", "account"},
		{"substring match", "comptes multiples", "account"},
		{"nothing", "Bonjour", TopicFallback},
		{"empty", "", TopicFallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			topic, reply := r.Reply(tt.text)
			if topic != tt.topic {
				t.Fatalf("expected topic %q, got %q", tt.topic, topic)
			}
			if reply == "" {
				t.Fatal("empty reply")
			}
		})
	}
}

func TestReply_Texts(t *testing.T) {
	t.Parallel()
	r := Default()

	if _, reply := r.Reply("xyz"); !strings.HasPrefix(reply, "Je n'ai pas de réponse à cette question") {
		t.Errorf("unexpected fallback %q", reply)
	}
	if _, reply := r.Reply("livraison"); !strings.Contains(reply, "entre 48h et 72h") {
		t.Errorf("unexpected delivery reply %q", reply)
	}
	if got := r.Greeting(); got != "Bonjour ! Je suis Dropi, votre assistant DropiGo. Comment puis-je vous aider ?" {
		t.Errorf("unexpected greeting %q", got)
	}
}

func TestRulesOrder(t *testing.T) {
	t.Parallel()
	rules := Default().Rules()
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(rules))
	}
	for i, want := range []string{"delivery", "payment", "account"} {
		if rules[i].Topic != want {
			t.Errorf("rule %d: expected %q, got %q", i, want, rules[i].Topic)
		}
	}
}

func TestRules_CopyDoesNotAlterMatching(t *testing.T) {
	t.Parallel()
	r := Default()

	rules := r.Rules()
	for i := range rules {
		for j := range rules[i].Keywords {
			rules[i].Keywords[j] = "zzz"
		}
	}

	topic, _ := r.Reply("Quel est le délai de livraison ?")
	if topic != "delivery" {
		t.Fatalf("expected delivery after editing the copy, got %q", topic)
	}
	if got := r.Rules()[0].Keywords[0]; got == "zzz" {
		t.Fatalf("live keyword table was modified through Rules()")
	}
}

func TestParse_Custom(t *testing.T) {
	t.Parallel()
	r, err := Parse([]byte(`
greeting: salut
fallback: rien
rules:
  - topic: urgent
    keywords: [URGENT]
    reply: on s'en occupe
`))
	if err != nil {
		t.Fatal(err)
	}
	if topic, _ := r.Reply("c'est urgent"); topic != "urgent" {
		t.Fatalf("keyword folding failed, got %q", topic)
	}
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()
	for _, doc := range []string{
		"rules: [",
		"greeting: a\nrules: []",
		"greeting: a\nfallback: b\nrules:\n  - topic: x\n    reply: y",
	} {
		if _, err := Parse([]byte(doc)); !errors.Is(err, ErrInvalidRules) {
			t.Errorf("doc %q: expected ErrInvalidRules, got %v", doc, err)
		}
	}
}
