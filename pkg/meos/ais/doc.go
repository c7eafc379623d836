// Package ais assembles ship trajectories from AIS (Automatic
// Identification System) position reports.
//
// Input is CSV with a header row and the columns
//
//	t,mmsi,latitude,longitude,sog
//
// where t is "2006-01-02 15:04:05" in UTC and sog is the speed over ground
// in knots. Assemble groups the reports by MMSI into one temporal point
// (the trip) and one temporal float (the SOG) per ship.
package ais
