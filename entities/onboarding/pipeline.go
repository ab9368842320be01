package onboarding

import (
	"context"
	"fmt"
	"log"
)

// pipelineStep est une étape nommée de la soumission d'onboarding. Une étape
// critique en échec arrête le pipeline ; une étape facultative en échec est
// journalisée et le traitement continue.
type pipelineStep struct {
	name     string
	critical bool
	run      func(ctx context.Context) error
}

func runPipeline(ctx context.Context, clientID string, steps []pipelineStep) error {
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			if step.critical {
				return fmt.Errorf("étape %s: %w", step.name, err)
			}
			log.Printf("[Onboarding][%s] étape %s en échec (non bloquante): %v", clientID, step.name, err)
		}
	}
	return nil
}
