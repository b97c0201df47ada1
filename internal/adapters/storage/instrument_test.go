package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotestagram/internal/domain"
)

func TestOutcome(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "success", err: nil, want: OutcomeOK},
		{name: "not found", err: domain.NewNotFoundError("quote", "1"), want: OutcomeNotFound},
		{name: "ambiguous", err: domain.NewAmbiguousError("quote", "1"), want: OutcomeNotFound},
		{name: "constraint", err: domain.NewConstraintErrorWithValue("genre_id", "unknown genre", int64(99)), want: OutcomeConstraint},
		{name: "driver failure", err: errors.New("conn reset"), want: OutcomeError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Outcome(tt.err))
		})
	}
}

func TestInstrument_RecordsMetrics(t *testing.T) {
	counter := queryTotal.WithLabelValues("test", "find_all", OutcomeConstraint)
	before := testutil.ToFloat64(counter)

	ctx, done := Instrument(context.Background(), "test", "find_all")
	require.NotNil(t, ctx)
	done(domain.NewConstraintErrorWithValue("genre_id", "unknown genre", int64(99)))

	assert.InDelta(t, before+1, testutil.ToFloat64(counter), 0)
	assert.Positive(t, testutil.CollectAndCount(queryDuration))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	id, err = ParseID(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)

	for _, raw := range []string{"", "abc", "12abc", "1.5", "99999999999999999999"} {
		_, err := ParseID(raw)
		require.Error(t, err, "raw %q", raw)
		assert.True(t, domain.IsNotFound(err), "raw %q", raw)
	}
}
