package nav

import "strings"

// IsActive reports whether href designates the current location. The root
// path only matches exactly; any other path also matches its descendants.
func IsActive(currentPath, href string) bool {
	if href == "" {
		return false
	}
	cur := trimSlash(currentPath)
	target := trimSlash(href)
	if target == "/" {
		return cur == "/"
	}
	return cur == target || strings.HasPrefix(cur, target+"/")
}

// IsLinkActive extends IsActive to parents, which are active when any child is.
func IsLinkActive(currentPath string, l Link) bool {
	if IsActive(currentPath, l.Href) {
		return true
	}
	for _, c := range l.Children {
		if IsActive(currentPath, c.Href) {
			return true
		}
	}
	return false
}

func trimSlash(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	p = strings.TrimRight(p, "/")
	if p == "" {
		return "/"
	}
	return p
}
