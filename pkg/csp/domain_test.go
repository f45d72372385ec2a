package csp

import "testing"

func TestNewDomain(t *testing.T) {
	tests := []struct {
		name     string
		options  []Value
		wantSize int
	}{
		{"three ints", []Value{1, 2, 3}, 3},
		{"single value", []Value{"only"}, 1},
		{"duplicates kept", []Value{1, 1, 2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDomain(tt.options)
			if d.Size() != tt.wantSize {
				t.Errorf("Size() = %d, want %d", d.Size(), tt.wantSize)
			}
			for i, v := range tt.options {
				if d.At(i) != v {
					t.Errorf("At(%d) = %v, want %v", i, d.At(i), v)
				}
			}
		})
	}
}

func TestNewDomainPanicsOnEmpty(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("NewDomain(nil) should panic")
		}
	}()
	NewDomain(nil)
}

func TestDomainRestrictTo(t *testing.T) {
	d := NewDomain([]Value{10, 20, 30})
	if err := d.RestrictTo(1); err != nil {
		t.Fatalf("RestrictTo(1) returned error: %v", err)
	}
	if d.Size() != 1 || d.At(0) != 20 {
		t.Errorf("after RestrictTo(1), domain = %v", d.Options())
	}
}

func TestDomainRestrictToOutOfRange(t *testing.T) {
	d := NewDomain([]Value{1, 2})
	if err := d.RestrictTo(5); err == nil {
		t.Fatal("RestrictTo(5) should return an error for a 2-element domain")
	}
	if d.Size() != 2 {
		t.Errorf("failed RestrictTo should not mutate the domain, got size %d", d.Size())
	}
}

func TestDomainSet(t *testing.T) {
	d := NewDomain([]Value{1, 2, 3, 4})
	d.Set(7)
	if !d.IsSingleton() || d.At(0) != 7 {
		t.Errorf("after Set(7), domain = %v", d.Options())
	}
}

func TestDomainCloneIsIndependent(t *testing.T) {
	d := NewDomain([]Value{1, 2, 3})
	clone := d.Clone()
	if err := clone.RestrictTo(0); err != nil {
		t.Fatal(err)
	}
	if d.Size() != 3 {
		t.Errorf("mutating a clone affected the original: size %d", d.Size())
	}
	if clone.Size() != 1 {
		t.Errorf("clone was not restricted: size %d", clone.Size())
	}
}
