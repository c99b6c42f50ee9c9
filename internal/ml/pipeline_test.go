package ml_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/ml"
	"github.com/mayaralabidi/Fake-News-Detection-ML/internal/ml/mltest"
)

func TestPipeline_Predict(t *testing.T) {
	p := mltest.NewPipeline()
	require.NoError(t, p.Validate())

	t.Run("real text", func(t *testing.T) {
		label, err := p.Predict(mltest.RealText)

		assert.NoError(t, err)
		assert.Equal(t, "real", label)
	})

	t.Run("fake text", func(t *testing.T) {
		label, err := p.Predict(mltest.FakeText)

		assert.NoError(t, err)
		assert.Equal(t, "fake", label)
	})

	t.Run("empty text falls back to intercept", func(t *testing.T) {
		label, err := p.Predict("")

		assert.NoError(t, err)
		assert.Equal(t, "real", label)
	})
}

func TestPipeline_DecisionFunction(t *testing.T) {
	p := mltest.NewPipeline()

	t.Run("known margin", func(t *testing.T) {
		// faked=2/3, moon=2/3, moon landing=1/3 after l2 normalization
		score, err := p.DecisionFunction("Moon landing faked, moon!")

		assert.NoError(t, err)
		assert.InDelta(t, -2.0*2/3-0.5*2/3-1.5/3+0.1, score, 1e-9)
	})

	t.Run("sign matches label", func(t *testing.T) {
		for _, text := range []string{mltest.RealText, mltest.FakeText, "", "government passed"} {
			score, err := p.DecisionFunction(text)
			require.NoError(t, err)
			label, err := p.Predict(text)
			require.NoError(t, err)

			if score > 0 {
				assert.Equal(t, "real", label, text)
			} else {
				assert.Equal(t, "fake", label, text)
			}
		}
	})
}

func TestPipeline_Score(t *testing.T) {
	p := mltest.NewPipeline()

	for _, text := range []string{mltest.RealText, mltest.FakeText, "", "Moon landing faked, moon!"} {
		label, score, err := p.Score(text)
		require.NoError(t, err)

		wantLabel, err := p.Predict(text)
		require.NoError(t, err)
		wantScore, err := p.DecisionFunction(text)
		require.NoError(t, err)

		assert.Equal(t, wantLabel, label, text)
		assert.Equal(t, wantScore, score, text)
	}
}

func TestPipeline_Validate(t *testing.T) {
	t.Run("missing steps", func(t *testing.T) {
		assert.ErrorIs(t, (&ml.Pipeline{}).Validate(), ml.ErrNotFitted)
	})

	t.Run("coefficient count mismatch", func(t *testing.T) {
		p := mltest.NewPipeline()
		p.Classifier.Coef = p.Classifier.Coef[:3]

		err := p.Validate()

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "coefficients")
	})

	t.Run("wrong class count", func(t *testing.T) {
		p := mltest.NewPipeline()
		p.Classifier.Classes = []string{"real"}

		assert.ErrorContains(t, p.Validate(), "classes")
	})
}

func TestPipeline_NotFitted(t *testing.T) {
	p := &ml.Pipeline{}

	_, err := p.Predict("text")
	assert.ErrorIs(t, err, ml.ErrNotFitted)

	_, err = p.DecisionFunction("text")
	assert.ErrorIs(t, err, ml.ErrNotFitted)

	_, _, err = p.Score("text")
	assert.ErrorIs(t, err, ml.ErrNotFitted)
}

func TestPipeline_Info(t *testing.T) {
	info := mltest.NewPipeline().Info()

	assert.Equal(t, 12, info.VocabularySize)
	assert.Equal(t, [2]int{1, 2}, info.NgramRange)
	assert.Equal(t, []string{"fake", "real"}, info.Classes)
	assert.Equal(t, ml.NormL2, info.Norm)
	assert.True(t, info.Lowercase)
}
