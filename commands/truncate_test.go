package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rushsh/rush/core"
	"github.com/rushsh/rush/core/vos/vostest"
)

func TestTruncate(t *testing.T) {
	cases := map[string]struct {
		args      []string
		want      core.StatusCode
		wantDepth int
		wantOn    bool
		wantErr   string
	}{
		"default":     {args: nil, want: core.StatusSuccess, wantDepth: 1, wantOn: true},
		"five":        {args: []string{"5"}, want: core.StatusSuccess, wantDepth: 5, wantOn: true},
		"zero":        {args: []string{"0"}, want: core.StatusSuccess, wantDepth: 0, wantOn: true},
		"plus":        {args: []string{"+2"}, want: core.StatusSuccess, wantDepth: 2, wantOn: true},
		"negative":    {args: []string{"-5"}, want: core.StatusInvalidResource, wantErr: "Invalid truncation length: '-5'\n"},
		"letters":     {args: []string{"abc"}, want: core.StatusInvalidResource, wantErr: "Invalid truncation length: 'abc'\n"},
		"float":       {args: []string{"1.5"}, want: core.StatusInvalidResource, wantErr: "Invalid truncation length: '1.5'\n"},
		"two args":    {args: []string{"1", "2"}, want: core.StatusUsage, wantErr: "Usage: truncate <length (default 1)>\n"},
		"huge number": {args: []string{"99999999999999999999999"}, want: core.StatusInvalidResource, wantErr: "Invalid truncation length: '99999999999999999999999'\n"},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			tos := vostest.NewTestOS()

			status := run(t, tos, core.Internal(Truncate), tc.args...)

			assert.Equal(t, tc.want, status)
			assert.Equal(t, tc.wantErr, tos.Stderr.String())
			depth, on := tos.WorkingDirectory().Truncation()
			assert.Equal(t, tc.wantOn, on)
			assert.Equal(t, tc.wantDepth, depth)
			assert.Equal(t, vostest.Home, tos.Getwd(), "truncation never changes the path")
		})
	}
}

func TestUntruncate(t *testing.T) {
	tos := vostest.NewTestOS()
	assert.Equal(t, core.StatusSuccess, run(t, tos, core.Internal(Truncate), "3"))
	assert.Equal(t, core.StatusSuccess, run(t, tos, core.Internal(Untruncate)))

	_, on := tos.WorkingDirectory().Truncation()
	assert.False(t, on)
	assert.Equal(t, "~", tos.WorkingDirectory().String())
}
