package model

// DashboardAnalytics summarizes project and task counts for the
// dashboard view. CompletionPercentage is 0 when no tasks exist.
type DashboardAnalytics struct {
	TotalProjects        int     `json:"totalProjects"`
	TotalTasks           int     `json:"totalTasks"`
	CompletedTasks       int     `json:"completedTasks"`
	InProgressTasks      int     `json:"inProgressTasks"`
	CompletionPercentage float64 `json:"completionPercentage"`
}
