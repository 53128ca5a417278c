// Package cities loads the tab-separated city file that feeds the search:
//
//	state <TAB> city <TAB> latitude <TAB> longitude
//
// Rows are parsed strictly and fail fast: a row with the wrong number of
// fields, a non-numeric or out-of-range coordinate, or an empty city name
// yields a *ParseError carrying the 1-based line number. The search core
// never receives partially valid input.
//
// Waypoints converts parsed cities into geo.Waypoint values with X set to the
// longitude and Y to the latitude.
package cities
