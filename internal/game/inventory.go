package game

// Inventory tracks how many of each insect type the player has caught this
// session. Counts only ever go up; nothing is persisted across runs.
type Inventory struct {
	counts [insectTypeCount]int
}

// Add records one captured insect of the given type.
func (inv *Inventory) Add(t InsectType) {
	if t < 0 || t >= insectTypeCount {
		return
	}
	inv.counts[t]++
}

// Count returns the number caught of one type.
func (inv *Inventory) Count(t InsectType) int {
	if t < 0 || t >= insectTypeCount {
		return 0
	}
	return inv.counts[t]
}

// Total returns the number caught across all types.
func (inv *Inventory) Total() int {
	n := 0
	for _, c := range inv.counts {
		n += c
	}
	return n
}
