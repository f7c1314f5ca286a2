package jsondelta

// Stats holds statistical metadata about a diff
type Stats struct {
	Left  int `json:"leftNodes"`  // count of nodes in the left tree
	Right int `json:"rightNodes"` // count of nodes in the right tree

	Adds     int `json:"adds,omitempty"`     // number of add operations
	Removes  int `json:"removes,omitempty"`  // number of remove operations
	Replaces int `json:"replaces,omitempty"` // number of replace operations
}

// NodeChange returns a count of the shift between left & right trees
func (s Stats) NodeChange() int {
	return s.Right - s.Left
}

// Changes is the total number of operations counted
func (s Stats) Changes() int {
	return s.Adds + s.Removes + s.Replaces
}

func (s *Stats) count(ops Operations) {
	for _, op := range ops {
		switch op.Kind() {
		case OpAdd:
			s.Adds++
		case OpRemove:
			s.Removes++
		case OpReplace:
			s.Replaces++
		}
	}
}
