// Package inittest checks library start-up in a process of its own. The
// tests of package meos initialize the library in TestMain, so failures
// before the first successful Initialize cannot be observed there.
package inittest
