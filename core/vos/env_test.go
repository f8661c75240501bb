package vos

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ExampleCopyEnv() {
	env := NewMapEnv()
	CopyEnv(env, EnvList{"A=B", "C=D", "E", "F=G=H"})

	fmt.Printf("Environ(): %q\n", env.Environ())
	fmt.Printf("Getenv(\"F\"): %q\n", env.Getenv("F"))

	// Output: Environ(): ["A=B" "C=D" "E=" "F=G=H"]
	// Getenv("F"): "G=H"
}

func ExampleMapEnv_Unsetenv() {
	env := NewMapEnv()
	env.Setenv("A", "B")
	env.Setenv("C", "D")

	fmt.Println("Before:", env.Environ())
	env.Unsetenv("A")
	fmt.Println("After:", env.Environ())

	// Output: Before: [A=B C=D]
	// After: [C=D]
}

func ExampleMapEnv_LookupEnv() {
	env := NewMapEnv()
	env.Setenv("A", "B")

	val, ok := env.LookupEnv("A")
	fmt.Println("Existing", "val:", val, "ok:", ok)
	val, ok = env.LookupEnv("B")
	fmt.Println("Missing", "val:", val, "ok:", ok)

	// Output: Existing val: B ok: true
	// Missing val:  ok: false
}

func ExampleEnvFilter_Apply() {
	filter := EnvFilter{HiddenPrefixes: []string{"RUSH_"}}
	fmt.Println(filter.Apply([]string{"HOME=/root", "RUSH_STATE=1", "PWD=/"}))

	// Output: [HOME=/root PWD=/]
}

func TestEnvFilter(t *testing.T) {
	environ := []string{"HOME=/root", "PATH=/bin", "RUSH_X=1", "SECRET=2"}

	cases := map[string]struct {
		filter EnvFilter
		want   []string
	}{
		"zero value keeps all": {
			filter: EnvFilter{},
			want:   environ,
		},
		"allow list": {
			filter: EnvFilter{Allow: []string{"PATH", "RUSH_X"}},
			want:   []string{"PATH=/bin", "RUSH_X=1"},
		},
		"hidden wins over allow": {
			filter: EnvFilter{Allow: []string{"PATH", "RUSH_X"}, HiddenPrefixes: []string{"RUSH_"}},
			want:   []string{"PATH=/bin"},
		},
		"empty prefix ignored": {
			filter: EnvFilter{HiddenPrefixes: []string{""}},
			want:   environ,
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.filter.Apply(environ))
		})
	}
}

func TestMapEnv_UserHomeDir(t *testing.T) {
	env := NewMapEnv()
	_, err := env.UserHomeDir()
	assert.Error(t, err)

	env.Setenv(EnvHome, "/home/rush")
	home, err := env.UserHomeDir()
	assert.NoError(t, err)
	assert.Equal(t, "/home/rush", home)
}
