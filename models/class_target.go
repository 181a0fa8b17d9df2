package models

// ClassTarget is the imported target rating for one intervention class,
// shown on the dashboard next to the project's current standing.
type ClassTarget struct {
	ClassName    string
	TargetRating float64
}

// DashboardSummary is the aggregate view of the projects screen.
type DashboardSummary struct {
	TotalProjects  int
	LatestProjects []Project
	ClassTargets   []ClassTarget
}
