package analytics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arnav/studyflow/internal/analytics"
	"github.com/arnav/studyflow/internal/models"
)

func TestBySubject_GroupsInFirstAppearanceOrder(t *testing.T) {
	sessions := []models.PracticeSession{
		session("2024-01-01", models.SubjectChemistry, 10, 20),
		session("2024-01-01", models.SubjectPhysics, 30, 40),
		session("2024-01-02", models.SubjectChemistry, 5, 10),
	}

	out := analytics.BySubject(sessions)

	require.Len(t, out, 2)
	assert.Equal(t, "Chemistry", out[0].Name)
	assert.Equal(t, 15, out[0].Questions)
	assert.Equal(t, 30, out[0].TimeMinutes)
	assert.Equal(t, 2, out[0].Sessions)
	assert.Equal(t, "Physics", out[1].Name)
}

func TestBySubject_EmptyInput(t *testing.T) {
	assert.Empty(t, analytics.BySubject(nil))
}

func TestSortByQuestionsDesc(t *testing.T) {
	totals := []analytics.SubjectTotals{
		{Name: "Chemistry", Questions: 15},
		{Name: "Physics", Questions: 30},
	}

	analytics.SortByQuestionsDesc(totals)

	assert.Equal(t, "Physics", totals[0].Name)
}
