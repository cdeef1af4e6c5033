// Package main provides the pecheck operator CLI.
//
// Usage:
//
//	pecheck check <domain>
//	pecheck analyze <url> [--html page.html]
//	pecheck dump
//	pecheck name <domain>
//	pecheck import <file>
//	pecheck migrate
//	pecheck company get|set|remove <key>
package main

func main() {
	Execute()
}
