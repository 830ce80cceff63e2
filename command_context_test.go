package main

import (
	"testing"
)

func TestRegistryDuplicateRegistrationPanics(t *testing.T) {
	reg := NewCommandRegistry()
	reg.Register("probe", &probeCmd{})

	defer func() {
		if recover() == nil {
			t.Fatal("duplicate registration should panic")
		}
	}()
	reg.Register("probe", &probeCmd{})
}

func TestRegistryResolveCallback(t *testing.T) {
	reg := NewCommandRegistry()
	reg.Register("probe", &probeCmd{})

	token, cmd, found := reg.ResolveCallback("cmd_probe")
	if !found || token != "probe" || cmd == nil {
		t.Fatalf("cmd_probe should resolve, got found=%v token=%q", found, token)
	}

	if _, _, found := reg.ResolveCallback("cmd_missing"); found {
		t.Error("unknown command resolved")
	}
	if _, _, found := reg.ResolveCallback("menu_main"); found {
		t.Error("menu ids must not resolve as command callbacks")
	}
}

func TestRegistryTokensSorted(t *testing.T) {
	reg := NewCommandRegistry()
	reg.Register("zeta", &probeCmd{})
	reg.Register("alpha", &probeCmd{})
	reg.Register("mid", &probeCmd{})

	tokens := reg.Tokens()
	want := []string{"alpha", "mid", "zeta"}
	for i := range want {
		if tokens[i] != want[i] {
			t.Fatalf("want %v, got %v", want, tokens)
		}
	}
}
