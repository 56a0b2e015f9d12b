package stringsutil

import "strings"

// RemoveEmptyStrings drops empty entries from a slice, keeping order.
func RemoveEmptyStrings(slice []string) []string {
	var result []string

	for _, s := range slice {
		if s != "" {
			result = append(result, s)
		}
	}

	return result
}

// TrimAll trims whitespace from every entry.
func TrimAll(slice []string) []string {
	result := make([]string, len(slice))
	for i, s := range slice {
		result[i] = strings.TrimSpace(s)
	}
	return result
}
