package onboarding

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPipelineContinueApresEchecFacultatif(t *testing.T) {
	ran := []string{}
	step := func(name string, critical bool, err error) pipelineStep {
		return pipelineStep{name: name, critical: critical, run: func(ctx context.Context) error {
			ran = append(ran, name)
			return err
		}}
	}

	err := runPipeline(context.Background(), "abc123", []pipelineStep{
		step("facultative", false, errors.New("échec")),
		step("critique", true, nil),
		step("suivante", false, nil),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"facultative", "critique", "suivante"}, ran)
}

func TestRunPipelineArreteSurEchecCritique(t *testing.T) {
	ran := []string{}
	step := func(name string, critical bool, err error) pipelineStep {
		return pipelineStep{name: name, critical: critical, run: func(ctx context.Context) error {
			ran = append(ran, name)
			return err
		}}
	}

	err := runPipeline(context.Background(), "abc123", []pipelineStep{
		step("première", false, nil),
		step("critique", true, errors.New("écriture refusée")),
		step("jamais", false, nil),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "critique")
	assert.Equal(t, []string{"première", "critique"}, ran)
}
