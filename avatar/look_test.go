package avatar

import "testing"

func TestLookEqualityIgnoresActionOrder(t *testing.T) {
	a := LookDescription{Look: "hd-180-1", Actions: []string{"sit", "wave"}, Direction: 2}
	b := LookDescription{Look: "hd-180-1", Actions: []string{"wave", "sit"}, Direction: 2}

	if !a.Equal(b) {
		t.Error("action order must not matter")
	}
}

func TestLookEqualityDetectsChanges(t *testing.T) {
	base := LookDescription{Look: "hd-180-1", Actions: []string{"sit"}, Item: "mug", Effect: 3, Direction: 2}

	cases := []struct {
		name string
		mod  func(LookDescription) LookDescription
	}{
		{"look id", func(l LookDescription) LookDescription { l.Look = "hd-190-2"; return l }},
		{"item", func(l LookDescription) LookDescription { l.Item = ""; return l }},
		{"effect", func(l LookDescription) LookDescription { l.Effect = 0; return l }},
		{"direction", func(l LookDescription) LookDescription { l.Direction = 6; return l }},
		{"action added", func(l LookDescription) LookDescription {
			l.Actions = []string{"sit", "wave"}
			return l
		}},
		{"action swapped", func(l LookDescription) LookDescription {
			l.Actions = []string{"wave"}
			return l
		}},
		{"actions cleared", func(l LookDescription) LookDescription {
			l.Actions = nil
			return l
		}},
	}
	for _, c := range cases {
		if base.Equal(c.mod(base)) {
			t.Errorf("%s: change not detected", c.name)
		}
	}
}

func TestLookEqualityWithDuplicateActions(t *testing.T) {
	a := LookDescription{Actions: []string{"wave", "wave", "sit"}}
	b := LookDescription{Actions: []string{"wave", "sit", "sit"}}
	if a.Equal(b) {
		t.Error("multisets with different counts must not be equal")
	}
}

func TestFieldForFieldIdenticalLooksAreEqual(t *testing.T) {
	a := LookDescription{Look: "hd-180-1", Actions: []string{}, Direction: 2}
	b := LookDescription{Look: "hd-180-1", Actions: []string{}, Direction: 2}
	if !a.Equal(b) {
		t.Error("identical looks must compare equal")
	}
}
