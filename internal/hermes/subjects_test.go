package hermes

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSubjects(t *testing.T) {
	assert.Equal(t, "platter.ranking.abc.completed", SubjectRankingCompleted("abc"))
	assert.Equal(t, "platter.ranking.abc.failed", SubjectRankingFailed("abc"))
	assert.Equal(t, "platter.plan.p1.completed", SubjectPlanCompleted("p1"))
	assert.Equal(t, "platter.plan.p1.failed", SubjectPlanFailed("p1"))
}

func TestResultSubjectsCapturedByStream(t *testing.T) {
	for _, s := range []string{
		SubjectRankingCompleted("x"),
		SubjectRankingFailed("x"),
		SubjectPlanCompleted("x"),
		SubjectPlanFailed("x"),
	} {
		assert.True(t, strings.HasPrefix(s, "platter.ranking.") || strings.HasPrefix(s, "platter.plan."), s)
	}
	// Requests are work items, not history.
	assert.False(t, strings.HasPrefix(SubjectRankRequest, "platter.ranking."))
}

func TestStreamMaxAgeParses(t *testing.T) {
	d, err := time.ParseDuration(StreamMaxAge)
	assert.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, d)
}
