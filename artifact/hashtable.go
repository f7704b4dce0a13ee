package artifact

import "fmt"

func NewHashTable() *HashTable {
	return &HashTable{
		hashes: map[string]string{},
	}
}

// HashTable maps artifact labels to their source hash. It only accepts the
// labels of Specs, so it never holds more than len(Specs) entries.
type HashTable struct {
	hashes map[string]string
}

func (h *HashTable) Add(label, hash string) error {
	if h.hashes == nil {
		h.hashes = map[string]string{}
	}
	if !isKnownLabel(label) {
		return fmt.Errorf("artifact: unknown label '%s'", label)
	}
	if hash == "" {
		return fmt.Errorf("artifact: empty hash for '%s'", label)
	}
	h.hashes[label] = hash
	return nil
}

func (h *HashTable) MustAdd(label, hash string) {
	err := h.Add(label, hash)
	if err != nil {
		panic(err)
	}
}

func (h *HashTable) Get(label string) (string, bool) {
	hash, ok := h.hashes[label]
	return hash, ok
}

func (h *HashTable) MustGet(label string) string {
	hash, ok := h.Get(label)
	if !ok {
		panic(fmt.Sprintf("artifact: HashTable#MustGet failed to get '%s'", label))
	}
	return hash
}

// Missing returns the labels of Specs without a hash, in Specs order.
func (h *HashTable) Missing() []string {
	var missing []string
	for _, spec := range Specs {
		if hash, ok := h.hashes[spec.Label]; !ok || hash == "" {
			missing = append(missing, spec.Label)
		}
	}
	return missing
}

func (h *HashTable) Len() int {
	return len(h.hashes)
}

// Complete reports whether every label of Specs has a hash.
func (h *HashTable) Complete() bool {
	return len(h.Missing()) == 0
}

func isKnownLabel(label string) bool {
	for _, spec := range Specs {
		if spec.Label == label {
			return true
		}
	}
	return false
}
