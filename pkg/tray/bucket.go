package tray

import "fmt"

// Bucket is a discrete diameter range used to group same-size cables into
// bundles. Buckets are ordered: a larger Bucket value always covers larger
// diameters.
type Bucket int

const (
	BucketTo8 Bucket = iota
	Bucket8To15
	Bucket15To21
	Bucket21To30
	Bucket30To40
	Bucket40To45
	Bucket45To60
	BucketOver60
)

// bucketThresholds are the upper bounds (inclusive) of each bucket except the
// last, in mm.
var bucketThresholds = [...]float64{8, 15, 21, 30, 40, 45, 60}

// Classify maps a diameter in mm to its bucket. Non-positive or missing
// diameters classify to the smallest bucket.
func Classify(diameter float64) Bucket {
	if diameter <= 0 {
		return BucketTo8
	}
	for i, limit := range bucketThresholds {
		if diameter <= limit {
			return Bucket(i)
		}
	}
	return BucketOver60
}

// String returns the bucket's diameter range label.
func (b Bucket) String() string {
	switch b {
	case BucketTo8:
		return "<=8mm"
	case BucketOver60:
		return ">60mm"
	}
	if b < BucketTo8 || b > BucketOver60 {
		return fmt.Sprintf("bucket(%d)", int(b))
	}
	return fmt.Sprintf("%.1f-%.0fmm", bucketThresholds[b-1]+0.1, bucketThresholds[b])
}

// Hexagonal reports whether the bucket is eligible for hexagonal offset
// packing. Only the two largest bounded ranges pack hexagonally, and only
// when the tray's usable height allows it (the engine checks the height).
func (b Bucket) Hexagonal() bool {
	return b == Bucket40To45 || b == Bucket45To60
}
