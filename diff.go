package discovery

// Diff compares two snapshots by name and returns the endpoints that
// appeared in next and those that disappeared from prev.
func Diff(prev, next []Endpoint) (added, removed []Endpoint) {
	before := make(map[string]struct{}, len(prev))
	for _, ep := range prev {
		before[ep.Name] = struct{}{}
	}
	after := make(map[string]struct{}, len(next))
	for _, ep := range next {
		after[ep.Name] = struct{}{}
		if _, ok := before[ep.Name]; !ok {
			added = append(added, ep)
		}
	}
	for _, ep := range prev {
		if _, ok := after[ep.Name]; !ok {
			removed = append(removed, ep)
		}
	}
	return added, removed
}
