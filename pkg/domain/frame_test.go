package domain_test

import (
	"errors"
	"testing"

	"github.com/mirageproc/mirage/pkg/domain"
)

func TestFrame_Combine(t *testing.T) {
	t.Run("Element Wise Addition", func(t *testing.T) {
		a := domain.NewFrame(2, 1)
		a.Pixels[0], a.Pixels[1] = 1, 2
		b := domain.NewFrame(2, 1)
		b.Pixels[0], b.Pixels[1] = 10, 20

		out, err := a.Combine(b)
		if err != nil {
			t.Fatalf("Combine failed: %v", err)
		}
		if out.Pixels[0] != 11 || out.Pixels[1] != 22 {
			t.Errorf("Unexpected pixels: %v", out.Pixels)
		}
	})

	t.Run("Shape Mismatch", func(t *testing.T) {
		a := domain.NewFrame(2, 2)
		b := domain.NewFrame(3, 1)

		_, err := a.Combine(b)
		if !errors.Is(err, domain.ErrShapeMismatch) {
			t.Errorf("Expected ErrShapeMismatch, got %v", err)
		}
	})

	t.Run("Empty Receiver Adopts Shape", func(t *testing.T) {
		empty := domain.NewFrame(0, 0)
		b := domain.Scalar(7)

		out, err := empty.Combine(b)
		if err != nil {
			t.Fatalf("Combine failed: %v", err)
		}
		if out.Width != 1 || out.Height != 1 || out.Pixels[0] != 7 {
			t.Errorf("Unexpected frame: %+v", out)
		}
	})

	t.Run("Drawn Frame Trail Is Discarded", func(t *testing.T) {
		a := domain.Scalar(1)
		a.AppendRecord("keep", domain.NewRecord())
		b := domain.Scalar(2)
		b.AppendRecord("drop", domain.NewRecord())

		out, err := a.Combine(b)
		if err != nil {
			t.Fatalf("Combine failed: %v", err)
		}
		if len(out.Trail) != 1 || out.Trail[0].Stage != "keep" {
			t.Errorf("Unexpected trail: %+v", out.Trail)
		}
	})
}

func TestFrame_Clone(t *testing.T) {
	a := domain.Scalar(3)
	a.AppendRecord("origin", domain.NewRecord(domain.Field{Name: "x", Value: 1}))

	b := a.Clone()
	b.Pixels[0] = 99
	b.Trail[0] = domain.TrailEntry{Stage: "changed"}

	if a.Pixels[0] != 3 {
		t.Errorf("Clone aliases pixels")
	}
	if a.Trail[0].Stage != "origin" {
		t.Errorf("Clone aliases trail")
	}
}

func TestScalar(t *testing.T) {
	f := domain.Scalar(1.5)
	if f.Width != 1 || f.Height != 1 || f.At(0, 0) != 1.5 {
		t.Errorf("Unexpected scalar frame: %+v", f)
	}
}
