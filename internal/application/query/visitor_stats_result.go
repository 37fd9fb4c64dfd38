package query

type VisitorStatsResult struct {
	TodayVisitors int64 `json:"todayVisitors"`
	TotalVisitors int64 `json:"totalVisitors"`
}
