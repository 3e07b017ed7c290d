package usecase_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/focusboard/internal/usecase"
)

func TestSetArchiveHours_Execute(t *testing.T) {
	tests := []struct {
		name        string
		hours       float64
		wantHours   int
		wantChanged bool
	}{
		{name: "rounds", hours: 2.6, wantHours: 3, wantChanged: true},
		{name: "zero clamps to one", hours: 0, wantHours: 1, wantChanged: true},
		{name: "negative clamps to one", hours: -5, wantHours: 1, wantChanged: true},
		{name: "same value", hours: 24, wantHours: 24},
		{name: "NaN keeps previous", hours: math.NaN(), wantHours: 24},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, _, _ := newStore(t)
			uc := usecase.NewSetArchiveHours(store)

			out, err := uc.Execute(context.Background(), usecase.SetArchiveHoursInput{Hours: tt.hours})

			require.NoError(t, err)
			assert.Equal(t, tt.wantHours, out.Hours)
			assert.Equal(t, tt.wantChanged, out.Changed)
		})
	}
}
