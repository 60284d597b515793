package tray

// BundleMap groups a tray's cables by purpose category and diameter bucket.
// Cable order within a bundle follows the order of the input cable list.
type BundleMap map[Category]map[Bucket][]*Cable

// BuildBundles classifies cables into a BundleMap. Cables are never copied;
// the map shares the caller's cable pointers.
func BuildBundles(cables []*Cable) BundleMap {
	m := make(BundleMap)
	for _, c := range cables {
		if c == nil {
			continue
		}
		byBucket, ok := m[c.Category]
		if !ok {
			byBucket = make(map[Bucket][]*Cable)
			m[c.Category] = byBucket
		}
		b := Classify(c.Diameter)
		byBucket[b] = append(byBucket[b], c)
	}
	return m
}

// Has reports whether the category has at least one cable.
func (m BundleMap) Has(cat Category) bool {
	for _, cables := range m[cat] {
		if len(cables) > 0 {
			return true
		}
	}
	return false
}

// Present lists the categories with at least one cable, in declaration order.
func (m BundleMap) Present() []Category {
	var out []Category
	for _, cat := range Categories() {
		if m.Has(cat) {
			out = append(out, cat)
		}
	}
	return out
}

// Count returns the total number of cables across all categories.
func (m BundleMap) Count() int {
	n := 0
	for _, byBucket := range m {
		for _, cables := range byBucket {
			n += len(cables)
		}
	}
	return n
}
