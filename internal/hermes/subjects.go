package hermes

const (
	SubjectRankRequest = "platter.rank.request"

	StreamName   = "PLATTER_EVENTS"
	StreamMaxAge = "720h" // 30 days
)

func SubjectRankingCompleted(rankingID string) string {
	return "platter.ranking." + rankingID + ".completed"
}
func SubjectRankingFailed(rankingID string) string { return "platter.ranking." + rankingID + ".failed" }

func SubjectPlanCompleted(planID string) string { return "platter.plan." + planID + ".completed" }
func SubjectPlanFailed(planID string) string    { return "platter.plan." + planID + ".failed" }
