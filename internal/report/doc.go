// Package report reads root type names and writes the CSV statistics report.
//
// The report has one header row followed by one row per analyzed root:
//
//	Class Name,Average Fields,Referred Classes,Total Methods,Average Methods,Average Parameters,Average Constructors,Average Parameters per Constructor
//	Point,1,1,1,1,0,1,1
//
// Numbers render with the shortest exact decimal representation.
package report
