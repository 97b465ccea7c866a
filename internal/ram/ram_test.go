package ram

import "testing"

func TestRAM(t *testing.T) {
	r := NewRAM(0x7F)
	if r.Size() != 0x7F {
		t.Fatalf("size expecting 127, was %d", r.Size())
	}
	r.Write(0x10, 0x42)
	if r.Read(0x10) != 0x42 {
		t.Errorf("expecting 42, was %02x", r.Read(0x10))
	}

	b := r.Bytes()
	b[0x10] = 0
	if r.Read(0x10) != 0x42 {
		t.Errorf("Bytes must return a copy")
	}

	if n := r.Load(make([]byte, 0x100)); n != 0x7F {
		t.Errorf("Load expecting to copy 127 bytes, copied %d", n)
	}
	r.Write(0, 1)
	r.Clear()
	if r.Read(0) != 0 {
		t.Errorf("expecting cleared RAM")
	}
}
