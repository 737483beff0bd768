package models

import "testing"

func TestContract_IsExpiredFor(t *testing.T) {
	c := &Contract{EndYear: 2027}

	if c.IsExpiredFor(2026) {
		t.Errorf("IsExpiredFor(2026) = true for contract ending 2027, want false")
	}
	if c.IsExpiredFor(2027) {
		t.Errorf("IsExpiredFor(2027) = true, want false (end year itself is not yet expired)")
	}
	if !c.IsExpiredFor(2028) {
		t.Errorf("IsExpiredFor(2028) = false, want true")
	}
}
