package game

import (
	"reflect"
	"testing"
)

func TestDefaultRegistryConsistency(t *testing.T) {
	r := MustRegistry(DefaultRules())

	for _, name := range r.AllThrows() {
		if r.Defeats(name, name) {
			t.Fatalf("throw %s defeats itself", name)
		}
	}

	// strict tournament on the standard subset: exactly one direction wins
	std := r.StandardThrows()
	for _, a := range std {
		for _, b := range std {
			if a == b {
				continue
			}
			ab := r.Defeats(a, b)
			ba := r.Defeats(b, a)
			if ab == ba {
				t.Fatalf("defeats(%s,%s)=%v and defeats(%s,%s)=%v; want exactly one true", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestRegistryValidation(t *testing.T) {
	cases := []struct {
		name  string
		rules []ThrowRule
	}{
		{"self defeat", []ThrowRule{
			{Name: "rock", Defeats: []string{"rock"}, Standard: true},
		}},
		{"mutual defeat", []ThrowRule{
			{Name: "rock", Defeats: []string{"paper"}, Standard: true},
			{Name: "paper", Defeats: []string{"rock"}, Standard: true},
		}},
		{"unknown victim", []ThrowRule{
			{Name: "rock", Defeats: []string{"lizard"}, Standard: true},
		}},
		{"duplicate throw", []ThrowRule{
			{Name: "rock", Defeats: nil, Standard: true},
			{Name: "ROCK", Defeats: nil},
		}},
		{"no standard throws", []ThrowRule{
			{Name: "rock", Defeats: nil},
		}},
	}

	for _, tc := range cases {
		if _, err := NewRegistry(tc.rules); err == nil {
			t.Fatalf("%s: expected error, got nil", tc.name)
		}
	}
}

func TestWhatDefeatsDeclarationOrder(t *testing.T) {
	r := MustRegistry(DefaultRules())

	got := r.WhatDefeats("paper")
	want := []string{"rock", "hammer"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WhatDefeats(paper) = %v; want %v", got, want)
	}

	if got := r.WhatDefeats("lizard"); len(got) != 0 {
		t.Fatalf("WhatDefeats(lizard) = %v; want empty", got)
	}
}

func TestDefeatsNormalizesInput(t *testing.T) {
	r := MustRegistry(DefaultRules())

	if !r.Defeats("ROCK", " scissors ") {
		t.Fatalf("expected ROCK to defeat scissors regardless of case")
	}
	if !r.IsValid("  Hammer ") {
		t.Fatalf("expected Hammer to be a valid throw")
	}
	if r.IsValid("lizard") {
		t.Fatalf("lizard should not be a valid throw")
	}
}

func TestRandomThrowStaysStandard(t *testing.T) {
	r := MustRegistry(DefaultRules())

	std := make(map[string]bool)
	for _, name := range r.StandardThrows() {
		std[name] = true
	}
	if std["hammer"] {
		t.Fatalf("hammer must not be in the standard subset")
	}

	for i := 0; i < 200; i++ {
		if name := r.RandomThrow(); !std[name] {
			t.Fatalf("RandomThrow returned non-standard throw %s", name)
		}
	}
}
