package catalog

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/amp-labs/amp-dependent/errors"
	"github.com/amp-labs/amp-dependent/logger"
	"github.com/amp-labs/amp-dependent/pointer"
	"github.com/amp-labs/amp-dependent/validator"
	"github.com/neilotoole/slogt"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) context.Context {
	t.Helper()

	return logger.WithLogger(t.Context(), slogt.New(t))
}

func loadTestCatalog(t *testing.T, opts ...Option) *Catalog {
	t.Helper()

	c, err := LoadFile(testContext(t), "testdata/catalog.yaml", opts...)
	require.NoError(t, err)

	return c
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	c := loadTestCatalog(t)

	assert.Equal(t, []string{"code", "percent", "request-id", "tags", "timestamp", "zip"}, c.Names())

	f, ok := c.Factory("zip")
	require.True(t, ok)
	assert.Equal(t, TypeDigits, f.Config().Type)
	assert.Equal(t, 5, f.Config().Length)

	_, ok = c.Factory("missing")
	assert.False(t, ok)
}

func TestCheck(t *testing.T) {
	t.Parallel()

	c := loadTestCatalog(t)

	tests := []struct {
		name      string
		candidate string
		want      string
		ok        bool
	}{
		{"zip", "94107", "94107", true},
		{"zip", "9410", "", false},
		{"zip", "9410a", "", false},
		{"percent", "42", "42", true},
		{"percent", " 7 ", "7", true},
		{"percent", "101", "", false},
		{"percent", "-1", "", false},
		{"percent", "ten", "", false},
		{"code", "ABC", "ABC", true},
		{"code", "Abc", "", false},
		{"timestamp", "2024-02-29T12:30:00+00:00", "2024-02-29T12:30:00Z", true},
		{"timestamp", "2024-02-29T12:30:00+01:00", "", false},
		{"tags", "b, a,b,,c", "a,b,c", true},
		{"tags", "a,b,c,d", "", false},
		{"tags", " , ", "", false},
		{"request-id", "{F47AC10B-58CC-4372-A567-0E02B2C3D479}", "f47ac10b-58cc-4372-a567-0e02b2c3d479", true},
		{"request-id", "6ba7b810-9dad-11d1-80b4-00c04fd430c8", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.candidate, func(t *testing.T) {
			t.Parallel()

			result, err := c.Check(tt.name, tt.candidate)
			require.NoError(t, err)

			assert.Equal(t, tt.name, result.Name)
			assert.Equal(t, tt.candidate, result.Candidate(), "the raw candidate is kept")
			require.Equal(t, tt.ok, result.Valid())

			if tt.ok {
				assert.Equal(t, tt.want, result.Wrapper().GetOrPanic().Value())
			}
		})
	}
}

func TestCheck_UnknownName(t *testing.T) {
	t.Parallel()

	_, err := loadTestCatalog(t).Check("nope", "1")
	require.ErrorIs(t, err, errors.ErrUnknownKind)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		document string
		want     error
		contains []string
	}{
		{
			name:     "unknown type",
			document: "kinds:\n  - name: x\n    type: roman\n",
			want:     errors.ErrUnknownKind,
		},
		{
			name:     "range without bounds",
			document: "kinds:\n  - name: r\n    type: range\n    min: 1\n",
			want:     errors.ErrInvalidKind,
		},
		{
			name:     "inverted range",
			document: "kinds:\n  - name: r\n    type: range\n    min: 10\n    max: 1\n",
			want:     errors.ErrInvalidKind,
		},
		{
			name:     "missing name",
			document: "kinds:\n  - type: digits\n",
			want:     errors.ErrInvalidKind,
		},
		{
			name:     "bad language",
			document: "kinds:\n  - name: u\n    type: uppercase\n    language: \"!!\"\n",
			want:     errors.ErrInvalidKind,
		},
		{
			name:     "every problem is reported",
			document: "kinds:\n  - name: a\n    type: digits\n  - name: a\n    type: digits\n  - name: b\n    type: nope\n",
			want:     errors.ErrInvalidKind,
			contains: []string{"kinds[1]", "duplicate", "kinds[2]", "nope"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := Load(testContext(t), strings.NewReader(tt.document))
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, c)

			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestLoad_UnknownField(t *testing.T) {
	t.Parallel()

	_, err := Load(testContext(t), strings.NewReader("kinds:\n  - name: z\n    type: digits\n    lenght: 5\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lenght")
}

func TestLoad_Empty(t *testing.T) {
	t.Parallel()

	c, err := Load(testContext(t), strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, c.Names())
}

func TestNew(t *testing.T) {
	t.Parallel()

	c, err := New(testContext(t), []Definition{
		{Name: " dice ", Type: TypeRange, Min: pointer.To(1), Max: pointer.To(3)},
		{Name: "semicolons", Type: TypeSet, Separator: ";"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"dice", "semicolons"}, c.Names(), "names are trimmed")

	r, err := c.Check("semicolons", "z;y")
	require.NoError(t, err)
	assert.Equal(t, "y;z", r.Wrapper().GetOrPanic().Value())
}

func TestWithMetrics(t *testing.T) {
	t.Parallel()

	metrics, err := validator.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	c := loadTestCatalog(t, WithMetrics(metrics))

	for _, candidate := range []string{"12345", "1", "54321"} {
		_, err := c.Check("zip", candidate)
		require.NoError(t, err)
	}

	assert.InDelta(t, 2, testutil.ToFloat64(metrics.Runs().WithLabelValues("zip", "accepted")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.Runs().WithLabelValues("zip", "rejected")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.Runs().WithLabelValues("percent", "rejected")), 0)
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	c := loadTestCatalog(t)

	candidates := make([]string, 0, 100)
	for n := range 100 {
		candidates = append(candidates, strings.Repeat("1", n%7))
	}

	results, err := c.CheckAll(testContext(t), "zip", candidates, 8)
	require.NoError(t, err)
	require.Len(t, results, len(candidates))

	for i, r := range results {
		assert.Equal(t, candidates[i], r.Candidate(), "results keep candidate order")
		assert.Equal(t, len(candidates[i]) == 5, r.Valid())
	}

	empty, err := c.CheckAll(testContext(t), "zip", nil, 0)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = c.CheckAll(testContext(t), "nope", candidates, 1)
	require.ErrorIs(t, err, errors.ErrUnknownKind)
}

func TestCheckAll_Cancelled(t *testing.T) {
	t.Parallel()

	c := loadTestCatalog(t)
	candidates := []string{"12345", "1234", "54321"}

	ctx, cancel := context.WithCancel(testContext(t))
	cancel()

	results, err := c.CheckAll(ctx, "zip", candidates, 2)
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, results)

	_, err = c.CheckAll(ctx, "zip", nil, 2)
	require.ErrorIs(t, err, context.Canceled, "an empty batch still reports cancellation")

	expired, stop := context.WithDeadline(testContext(t), time.Now().Add(-time.Second))
	defer stop()

	_, err = c.CheckAll(expired, "zip", candidates, 2)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	_, err = c.CheckAll(ctx, "nope", candidates, 2)
	require.ErrorIs(t, err, errors.ErrUnknownKind, "an unknown name is reported first")
}
