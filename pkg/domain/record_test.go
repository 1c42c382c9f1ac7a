package domain_test

import (
	"testing"

	"github.com/mirageproc/mirage/pkg/domain"
)

func TestRecord_Order(t *testing.T) {
	r := domain.NewRecord(
		domain.Field{Name: "b", Value: 2},
		domain.Field{Name: "a", Value: 1},
		domain.Field{Name: "c", Value: 3},
	)

	names := r.Names()
	want := []string{"b", "a", "c"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names out of order: got %v, want %v", names, want)
		}
	}
	if r.Len() != 3 {
		t.Errorf("Unexpected length: %d", r.Len())
	}
}

func TestRecord_Accessors(t *testing.T) {
	r := domain.NewRecord(
		domain.Field{Name: "sigma", Value: 0.5},
		domain.Field{Name: "count", Value: 3},
	)

	if v, ok := r.Get("sigma"); !ok || v != 0.5 {
		t.Errorf("Get(sigma) = %v, %v", v, ok)
	}
	if _, ok := r.Get("missing"); ok {
		t.Errorf("Get(missing) should report false")
	}

	if f, ok := r.Float64("count"); !ok || f != 3.0 {
		t.Errorf("Float64(count) = %v, %v", f, ok)
	}
	if n, ok := r.Int("sigma"); !ok || n != 0 {
		t.Errorf("Int(sigma) = %v, %v", n, ok)
	}
	if _, ok := r.Float64("missing"); ok {
		t.Errorf("Float64(missing) should report false")
	}
}
