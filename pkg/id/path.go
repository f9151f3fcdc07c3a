package id

import "strings"

// Path addresses a widget by the chain of identities from the tree root to
// the target. Each element names a direct child of the previous one.
type Path []WidgetID

// Root returns the first element, or 0 for an empty path.
func (p Path) Root() WidgetID {
	if len(p) == 0 {
		return 0
	}
	return p[0]
}

// Leaf returns the last element, or 0 for an empty path.
func (p Path) Leaf() WidgetID {
	if len(p) == 0 {
		return 0
	}
	return p[len(p)-1]
}

// Parent returns the path without its leaf.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}
	return p[:len(p)-1:len(p)-1]
}

// Child returns a new path extended by child. The receiver is not modified
// and the result never aliases it.
func (p Path) Child(child WidgetID) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, child)
}

// Equal reports whether both paths name the same chain.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// HasPrefix reports whether prefix is an ancestor chain of p (or p itself).
func (p Path) HasPrefix(prefix Path) bool {
	if len(prefix) > len(p) {
		return false
	}
	return p[:len(prefix)].Equal(prefix)
}

// Contains reports whether target appears anywhere in the path.
func (p Path) Contains(target WidgetID) bool {
	for _, v := range p {
		if v == target {
			return true
		}
	}
	return false
}

func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = v.String()
	}
	return "/" + strings.Join(parts, "/")
}
