package main

import (
	"log"
	"sort"
)

func sortedKeys[V any](m map[string]V) []string {
	result := make([]string, 0, len(m))
	for k := range m {
		result = append(result, k)
	}

	sort.Strings(result)
	return result
}

func checkErr(err error) {
	if err != nil {
		log.Fatalln(err)
	}
}
