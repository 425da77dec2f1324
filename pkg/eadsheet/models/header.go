package models

// Header maps a header-row column name to its 0-based column index.
type Header map[string]int

// Index returns the column index for name.
func (h Header) Index(name string) (int, bool) {
	if h == nil {
		return 0, false
	}
	i, ok := h[name]
	return i, ok
}
