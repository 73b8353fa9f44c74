// Package jobscrape fetches job-board listing pages for a role and turns
// their job cards into structured job records.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, echo/).
package jobscrape
