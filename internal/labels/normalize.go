package labels

import "github.com/thenoetrevino/lbl/internal/models"

// Normalized is a flat entity map plus the ordered IDs of a list response.
type Normalized struct {
	Entities map[int]*models.Label
	Result   []int
}

// Normalize flattens a list response. Result keeps backend order; a repeated
// ID keeps its first position and its last entity. nil entries and labels
// without an ID are skipped.
func Normalize(list []*models.Label) Normalized {
	n := Normalized{
		Entities: make(map[int]*models.Label, len(list)),
		Result:   make([]int, 0, len(list)),
	}
	for _, l := range list {
		if l == nil || l.ID == 0 {
			continue
		}
		if _, seen := n.Entities[l.ID]; !seen {
			n.Result = append(n.Result, l.ID)
		}
		n.Entities[l.ID] = l.Clone()
	}
	return n
}
