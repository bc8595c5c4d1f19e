package components

import "strings"

func joinClasses(classes ...string) string {
	out := classes[:0:0]
	for _, c := range classes {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return strings.Join(out, " ")
}
