package models

import "testing"

func TestDefaultStatus(t *testing.T) {
	if got := DefaultStatus(TypeFound); got != StatusAvailable {
		t.Errorf("DefaultStatus(found) = %q, want %q", got, StatusAvailable)
	}
	if got := DefaultStatus(TypeLost); got != StatusSearching {
		t.Errorf("DefaultStatus(lost) = %q, want %q", got, StatusSearching)
	}
}

func TestItemTypeValid(t *testing.T) {
	for _, valid := range []ItemType{TypeLost, TypeFound} {
		if !valid.Valid() {
			t.Errorf("expected %q to be valid", valid)
		}
	}
	for _, invalid := range []ItemType{"", "stolen", "LOST"} {
		if invalid.Valid() {
			t.Errorf("expected %q to be invalid", invalid)
		}
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories() {
		if !c.Valid() {
			t.Errorf("expected %q to be valid", c)
		}
	}
	for _, invalid := range []Category{"", "electronics", "Pets"} {
		if invalid.Valid() {
			t.Errorf("expected %q to be invalid", invalid)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, valid := range []Status{StatusSearching, StatusAvailable, StatusClaimed} {
		if !valid.Valid() {
			t.Errorf("expected %q to be valid", valid)
		}
	}
	for _, invalid := range []Status{"", "open", "Claimed"} {
		if invalid.Valid() {
			t.Errorf("expected %q to be invalid", invalid)
		}
	}
}
