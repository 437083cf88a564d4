// Package main provides the entry point for the igold catalog scraper CLI.
//
// Usage:
//
//	igold scrape
//	igold scrape --category Сребро
//	igold images
//
// See --help for all available options.
package main

func main() {
	Execute()
}
