package catalog

import "testing"

func TestServices(t *testing.T) {
	got := Services()
	if len(got) != 4 {
		t.Fatalf("expected 4 cards, got %d", len(got))
	}
	if got[1].Title != "Livraison express" {
		t.Errorf("unexpected second card %q", got[1].Title)
	}

	// callers get a copy
	got[0].Title = "changed"
	if Services()[0].Title != "Transport régional et national" {
		t.Fatal("catalog mutated through returned slice")
	}
}

func TestService(t *testing.T) {
	if c, ok := Service("tracking"); !ok || c.Title != "Suivi des expéditions" {
		t.Fatalf("unexpected lookup result %+v %v", c, ok)
	}
	if _, ok := Service("nope"); ok {
		t.Fatal("expected unknown slug to miss")
	}
}
