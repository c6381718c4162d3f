package cli

import (
	"testing"

	"github.com/healthmate/healthmate/internal/rest"
	"github.com/healthmate/healthmate/internal/state"
)

func TestDomainViewDispatchesOnDomainName(t *testing.T) {
	store, err := state.NewStore(rest.NewClient("http://localhost:0"), state.Options{})
	if err != nil {
		t.Fatalf("expected store construction to succeed, got %v", err)
	}

	for _, name := range []string{"health", "activity", "mood", "medication", "nutrition"} {
		view, err := domainView(store, name)
		if err != nil {
			t.Fatalf("expected %s to resolve, got %v", name, err)
		}
		if view.monthCount() != 0 {
			t.Fatalf("expected empty month cache for %s, got %d", name, view.monthCount())
		}
	}

	if _, err := domainView(store, "sleep"); err == nil {
		t.Fatal("expected an error for an unknown domain")
	}
}
