package loader

import "sort"

// sortedKeys фиксирует порядок записи расстояний: порядок обхода map в Go случаен
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
