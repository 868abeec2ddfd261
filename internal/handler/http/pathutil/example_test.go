package pathutil_test

import (
	"fmt"

	"text-api/internal/handler/http/pathutil"
)

// ExampleNormalizePath shows how arbitrary request paths collapse into route labels.
func ExampleNormalizePath() {
	fmt.Println(pathutil.NormalizePath("/stats"))
	fmt.Println(pathutil.NormalizePath("/uppercase/"))
	fmt.Println(pathutil.NormalizePath("/swagger/index.html"))
	fmt.Println(pathutil.NormalizePath("/.env"))

	// Output:
	// /stats
	// /uppercase
	// /swagger/*
	// /unmatched
}
