// Package main provides the go-nanoid command. It prints short, unique,
// URL-safe random ids on the command line and can run a small fiber web
// service that hands out ids over http and exposes prometheus metrics.
package main
