package tray

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		diameter float64
		want     Bucket
	}{
		{"zero", 0, BucketTo8},
		{"negative", -4, BucketTo8},
		{"tiny", 0.5, BucketTo8},
		{"at first threshold", 8, BucketTo8},
		{"just above first threshold", 8.1, Bucket8To15},
		{"mid range", 18, Bucket15To21},
		{"at 30", 30, Bucket21To30},
		{"hex lower bucket", 42, Bucket40To45},
		{"hex upper bucket", 52.3, Bucket45To60},
		{"at top threshold", 60, Bucket45To60},
		{"above top threshold", 60.1, BucketOver60},
		{"huge", 250, BucketOver60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.diameter); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.diameter, got, tt.want)
			}
		})
	}
}

func TestClassifyMonotonic(t *testing.T) {
	prev := Classify(0)
	for d := 0.5; d <= 80; d += 0.5 {
		b := Classify(d)
		if b < prev {
			t.Fatalf("Classify not monotonic: Classify(%v) = %v < previous %v", d, b, prev)
		}
		prev = b
	}
}

func TestBucketHexagonal(t *testing.T) {
	hex := map[Bucket]bool{Bucket40To45: true, Bucket45To60: true}
	for b := BucketTo8; b <= BucketOver60; b++ {
		if got := b.Hexagonal(); got != hex[b] {
			t.Errorf("%v.Hexagonal() = %v, want %v", b, got, hex[b])
		}
	}
}

func TestBucketString(t *testing.T) {
	tests := []struct {
		bucket Bucket
		want   string
	}{
		{BucketTo8, "<=8mm"},
		{Bucket8To15, "8.1-15mm"},
		{Bucket45To60, "45.1-60mm"},
		{BucketOver60, ">60mm"},
	}
	for _, tt := range tests {
		if got := tt.bucket.String(); got != tt.want {
			t.Errorf("Bucket(%d).String() = %q, want %q", tt.bucket, got, tt.want)
		}
	}
}
