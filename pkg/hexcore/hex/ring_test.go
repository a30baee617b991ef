package hex

import "testing"

func TestRingDistances(t *testing.T) {
	c := Axial{Q: 2, R: -1}
	for k := 0; k <= 4; k++ {
		ring := Ring(c, k)
		want := 6 * k
		if k == 0 {
			want = 1
		}
		if len(ring) != want {
			t.Fatalf("expected %d cells on ring %d, got %d", want, k, len(ring))
		}
		seen := map[Axial]bool{}
		for _, a := range ring {
			if d := DistanceAxial(c, a); d != k {
				t.Fatalf("expected distance %d for %v, got %d", k, a, d)
			}
			if seen[a] {
				t.Fatalf("duplicate %v on ring %d", a, k)
			}
			seen[a] = true
		}
	}
}

func TestDiskSize(t *testing.T) {
	c := Axial{}
	for k := 0; k <= 4; k++ {
		disk := Disk(c, k)
		if want := 1 + 3*k*(k+1); len(disk) != want {
			t.Fatalf("expected %d cells in disk %d, got %d", want, k, len(disk))
		}
		for _, a := range disk {
			if DistanceAxial(c, a) > k {
				t.Fatalf("%v lies outside disk %d", a, k)
			}
		}
	}
	if Disk(c, -1) != nil {
		t.Fatalf("expected nil disk for negative radius")
	}
}
