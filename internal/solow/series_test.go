package solow

import (
	"testing"
)

func TestGenerateZero(t *testing.T) {
	m := New()
	seq := Generate(m, 0)

	if len(seq) != 0 {
		t.Errorf("expected empty series, got %d elements", len(seq))
	}
	if m.Capital != 1.0 {
		t.Errorf("capital changed: %v", m.Capital)
	}
}

func TestGenerateNegative(t *testing.T) {
	m := New()
	seq := Generate(m, -5)

	if seq == nil || len(seq) != 0 {
		t.Errorf("expected empty non-nil series, got %v", seq)
	}
	if m.Capital != 1.0 {
		t.Errorf("capital changed: %v", m.Capital)
	}
}

func TestGenerateOne(t *testing.T) {
	m := New(WithCapital(2.5))
	before := m.Capital
	next := m.NextCapital()

	seq := Generate(m, 1)

	if len(seq) != 1 || seq[0] != before {
		t.Fatalf("expected [%v], got %v", before, seq)
	}
	if m.Capital != next {
		t.Errorf("expected capital %v after one step, got %v", next, m.Capital)
	}
}

func TestGenerateRecordsPreUpdateValues(t *testing.T) {
	m := New(WithCapital(8.0))
	ref := m.Clone()

	seq := Generate(m, 50)

	if len(seq) != 50 {
		t.Fatalf("expected 50 elements, got %d", len(seq))
	}
	if seq[0] != 8.0 {
		t.Errorf("expected first element 8.0, got %v", seq[0])
	}
	for i, v := range seq {
		if v != ref.Capital {
			t.Fatalf("step %d: expected %v, got %v", i, ref.Capital, v)
		}
		ref.Advance()
	}
	if m.Capital != ref.Capital {
		t.Errorf("final capital %v, want %v", m.Capital, ref.Capital)
	}
}

func TestGenerateContinues(t *testing.T) {
	a := New()
	first := Generate(a, 10)
	second := Generate(a, 10)

	b := New()
	all := Generate(b, 20)

	for i := range first {
		if first[i] != all[i] || second[i] != all[i+10] {
			t.Fatalf("step %d: continuation mismatch", i)
		}
	}
}
