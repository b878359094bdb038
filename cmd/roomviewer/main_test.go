package main

import "testing"

func TestToggleActionAddsAndRemoves(t *testing.T) {
	got := toggleAction(nil, "wave")
	if len(got) != 1 || got[0] != "wave" {
		t.Fatalf("add: got %v", got)
	}
	got = toggleAction(got, "wave")
	if len(got) != 0 {
		t.Fatalf("remove: got %v", got)
	}
}

func TestToggleActionLeavesInputIntact(t *testing.T) {
	in := []string{"wave", "sit", "carry"}
	out := toggleAction(in, "sit")

	if len(in) != 3 || in[0] != "wave" || in[1] != "sit" || in[2] != "carry" {
		t.Errorf("input mutated: %v", in)
	}
	if len(out) != 2 || out[0] != "wave" || out[1] != "carry" {
		t.Errorf("toggle result: %v", out)
	}

	out = toggleAction(in, "dance")
	if len(out) != 4 || out[3] != "dance" {
		t.Errorf("append result: %v", out)
	}
	if len(in) != 3 {
		t.Errorf("input length changed: %v", in)
	}
}
