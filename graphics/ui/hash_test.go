package ui

import "testing"

func TestFnv1_DeterministicForSameInputs(t *testing.T) {
	a := fnv1(Hash(7), []byte("button"))
	b := fnv1(Hash(7), []byte("button"))
	if a != b {
		t.Errorf("fnv1(7, \"button\") is not deterministic: %x != %x", a, b)
	}
}

func TestFnv1_DifferentParentsDiffer(t *testing.T) {
	a := fnv1(Hash(1), []byte("button"))
	b := fnv1(Hash(2), []byte("button"))
	if a == b {
		t.Errorf("fnv1 collided across different parents: both = %x", a)
	}
}

func TestFnv1_DifferentKeysDiffer(t *testing.T) {
	a := fnv1(Hash(1), []byte("button"))
	b := fnv1(Hash(1), []byte("buttons"))
	if a == b {
		t.Errorf("fnv1 collided across different keys: both = %x", a)
	}
}

func TestFnv1_EmptyKeyStillSeedsFromParent(t *testing.T) {
	a := fnv1(Hash(1), nil)
	b := fnv1(Hash(2), nil)
	if a == b {
		t.Errorf("fnv1 with empty key ignored the parent: both = %x", a)
	}
}
