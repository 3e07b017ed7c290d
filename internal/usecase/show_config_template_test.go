package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/focusboard/internal/domain"
	"github.com/runoshun/focusboard/internal/usecase"
)

func TestShowConfigTemplate_Execute(t *testing.T) {
	t.Run("renders given config", func(t *testing.T) {
		cfg := domain.NewDefaultConfig()
		cfg.Board.DoneArchiveHours = 48

		out, err := usecase.NewShowConfigTemplate().Execute(context.Background(), usecase.ShowConfigTemplateInput{Config: cfg})

		require.NoError(t, err)
		assert.Contains(t, out.Template, "48")
		assert.Contains(t, out.Template, "[storage]")
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		out, err := usecase.NewShowConfigTemplate().Execute(context.Background(), usecase.ShowConfigTemplateInput{})

		require.NoError(t, err)
		assert.Equal(t, domain.RenderConfigTemplate(domain.NewDefaultConfig()), out.Template)
	})
}
