package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/scanmark/internal/client/models"
)

func TestSubjectOptions_DedupesAndSorts(t *testing.T) {
	rubrics := []models.Rubric{
		{Subject: "Physics"},
		{Subject: "Biology"},
		{Subject: "Physics"},
		{Subject: ""},
		{Subject: "Algebra"},
	}

	got := SubjectOptions(rubrics)
	assert.Equal(t, []string{"Algebra", "Biology", "Physics"}, got)
}

func TestSubjectOptions_FreshOnEveryCall(t *testing.T) {
	first := SubjectOptions([]models.Rubric{{Subject: "History"}})
	second := SubjectOptions([]models.Rubric{{Subject: "Chemistry"}})

	// no accumulation across reloads
	assert.Equal(t, []string{"History"}, first)
	assert.Equal(t, []string{"Chemistry"}, second)
}

func TestRenderRubricsTable(t *testing.T) {
	assert.Equal(t, "No rubrics found\n", RenderRubricsTable(nil))

	out := RenderRubricsTable([]models.Rubric{
		{ID: "r1", Name: "Essay rubric", Subject: "History", QuestionType: "essay", TotalPoints: 100},
	})
	assert.Contains(t, out, "Essay rubric")
	assert.Contains(t, out, "History")
	assert.Contains(t, out, "100")
}

func TestRenderEvaluationsTable_Markers(t *testing.T) {
	out := RenderEvaluationsTable([]models.Evaluation{
		{ID: "good", Percentage: 85, TotalScore: 85, MaxPossibleScore: 100},
		{ID: "mid", Percentage: 55, TotalScore: 55, MaxPossibleScore: 100},
		{ID: "bad", Percentage: 20, TotalScore: 20, MaxPossibleScore: 100,
			PlagiarismResult: models.PlagiarismResult{IsPlagiarized: true}, NeedsReview: true},
	})

	assert.Contains(t, out, "+  good")
	assert.Contains(t, out, "~  mid")
	assert.Contains(t, out, "-  bad")
	assert.Contains(t, out, "FLAGGED")
	assert.Contains(t, out, "yes")
}

func TestRenderRubricDetail_IncludesCriteria(t *testing.T) {
	out := RenderRubricDetail(&models.Rubric{
		Name: "Short answer", Subject: "Physics", QuestionType: "short_answer",
		TotalPoints: 20,
		Criteria: []models.RubricCriterion{
			{Name: "Accuracy", Points: 12, Description: "Correct result"},
			{Name: "Clarity", Points: 8},
		},
	})

	assert.Contains(t, out, "Short answer (Physics, short_answer)")
	assert.Contains(t, out, "Accuracy")
	assert.Contains(t, out, "Clarity")
	assert.Contains(t, out, "Total points: 20")
}
