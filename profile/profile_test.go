package profile

import (
	"strings"
	"testing"
)

func TestByName(t *testing.T) {
	if ByName("gcp").Name != "gcp" {
		t.Fatal("expected gcp profile")
	}
	if ByName("azure").Name != "azure" {
		t.Fatal("expected azure profile")
	}
	if ByName("aws").Name != "aws" {
		t.Fatal("expected aws profile")
	}
	// Unknown selectors fall back to AWS rather than failing.
	if ByName("oracle").Name != "aws" {
		t.Fatal("expected aws fallback for unknown selector")
	}
}

func TestProfiles_Complete(t *testing.T) {
	for _, p := range []*Profile{AWS(), GCP(), Azure()} {
		if p.Platform == "" || p.Greeting == "" || p.Help == "" || p.Timezone == "" {
			t.Fatalf("profile %s has empty template fields", p.Name)
		}
		if !strings.Contains(p.Fallback, "%s") {
			t.Fatalf("profile %s fallback lacks message verb: %q", p.Name, p.Fallback)
		}
		if len(p.Knowledge) < 5 || len(p.Knowledge) > 7 {
			t.Fatalf("profile %s has %d knowledge entries, want 5-7", p.Name, len(p.Knowledge))
		}
		if p.Weather["location"] == nil || p.Weather["temperature"] == nil || p.Weather["condition"] == nil {
			t.Fatalf("profile %s weather payload incomplete: %#v", p.Name, p.Weather)
		}
		seen := map[string]bool{}
		for _, e := range p.Knowledge {
			if seen[e.Keyword] {
				t.Fatalf("profile %s has duplicate keyword %q", p.Name, e.Keyword)
			}
			seen[e.Keyword] = true
		}
	}
}

func TestFallbackReply(t *testing.T) {
	got := AWS().FallbackReply("테스트 메시지")
	if !strings.Contains(got, "'테스트 메시지'") {
		t.Fatalf("fallback does not restate the message: %q", got)
	}
}
