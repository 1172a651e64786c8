// Command catalog-query filters and sorts a catalog JSON export offline,
// using the same rules as the catalog API.
//
// Usage:
//
//	catalog-query wardrobe.json --brand pata --sort price-desc
//	curl -s $BACKEND/api/listings/ | catalog-query --source marketplace --facets
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
