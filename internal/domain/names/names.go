// Package names arma el nombre completo de médicos y pacientes.
package names

import "strings"

// Full une las partes no vacías con un solo espacio:
// primer nombre, segundo nombre, apellido paterno, apellido materno.
func Full(first string, middle *string, paternal string, maternal *string) string {
	parts := []string{first, deref(middle), paternal, deref(maternal)}

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}

// Optional normaliza un campo opcional: nil o solo espacios => nil.
func Optional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
