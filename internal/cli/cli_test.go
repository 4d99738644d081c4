package cli

import (
	"bytes"
	"flag"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vk/seedgen/internal/app"
	"github.com/vk/seedgen/internal/seed"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		gen            *seed.Generator
		args           []string
		expectExit     bool
		expectErr      bool
		errSubstr      string
		expectedConfig *app.Config
		checkOutput    func(t *testing.T, output string)
	}{
		{
			name: "Positional values with defaults",
			gen:  seed.PredatorPrey,
			args: []string{"10", "20", "0.1", "0.2", "5"},
			expectedConfig: &app.Config{
				Args:      []string{"10", "20", "0.1", "0.2", "5"},
				OutputDir: ".",
				LogFormat: "text",
				LogLevel:  "warn",
			},
		},
		{
			name: "All flags",
			gen:  seed.PredatorPreyGrass,
			args: []string{"--log-level=DEBUG", "-log-format", "json", "-seed-file", "seed.hcl"},
			expectedConfig: &app.Config{
				Args:      []string{},
				SeedFile:  "seed.hcl",
				OutputDir: ".",
				LogFormat: "json",
				LogLevel:  "debug",
			},
		},
		{
			name: "Double dash passes dash-prefixed values through",
			gen:  seed.PredatorPrey,
			args: []string{"--", "-1", "20", "0.1", "0.2", "5"},
			expectedConfig: &app.Config{
				Args:      []string{"-1", "20", "0.1", "0.2", "5"},
				OutputDir: ".",
				LogFormat: "text",
				LogLevel:  "warn",
			},
		},
		{
			name: "Leading negative value is not an option",
			gen:  seed.PredatorPrey,
			args: []string{"-1", "20", "-0.1", "0.2", "5"},
			expectedConfig: &app.Config{
				Args:      []string{"-1", "20", "-0.1", "0.2", "5"},
				OutputDir: ".",
				LogFormat: "text",
				LogLevel:  "warn",
			},
		},
		{
			name: "Unknown dash token alone is a value",
			gen:  seed.PredatorPrey,
			args: []string{"-x"},
			expectedConfig: &app.Config{
				Args:      []string{"-x"},
				OutputDir: ".",
				LogFormat: "text",
				LogLevel:  "warn",
			},
		},
		{
			name: "Wrong count is left to the app",
			gen:  seed.PredatorPreyGrass,
			args: []string{"1", "2"},
			expectedConfig: &app.Config{
				Args:      []string{"1", "2"},
				OutputDir: ".",
				LogFormat: "text",
				LogLevel:  "warn",
			},
		},
		{
			name:       "Help flag triggers clean exit",
			gen:        seed.PredatorPreyGrass,
			args:       []string{"-h"},
			expectExit: true,
			checkOutput: func(t *testing.T, output string) {
				require.Contains(t, output, "Usage:")
				require.Contains(t, output, "xmlgen-grass [options] num_prey num_predators num_grass")
				require.Contains(t, output, "-seed-file")
			},
		},
		{
			name:      "Unknown flag returns an error",
			gen:       seed.PredatorPrey,
			args:      []string{"-log-level=info", "--this-is-not-a-valid-flag"},
			expectErr: true,
			errSubstr: "flag provided but not defined: -this-is-not-a-valid-flag",
		},
		{
			name:      "Invalid log level returns an error",
			gen:       seed.PredatorPrey,
			args:      []string{"--log-level=foo"},
			expectErr: true,
			errSubstr: "invalid log-level",
		},
		{
			name:      "Invalid log format returns an error",
			gen:       seed.PredatorPrey,
			args:      []string{"--log-format=yaml"},
			expectErr: true,
			errSubstr: "invalid log-format",
		},
		{
			name:      "Seed file with positional values returns an error",
			gen:       seed.PredatorPrey,
			args:      []string{"-seed-file", "seed.hcl", "1"},
			expectErr: true,
			errSubstr: "cannot be used together",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			out := &bytes.Buffer{}

			// --- Act ---
			appConfig, shouldExit, err := Parse(tc.gen, tc.args, out)

			// --- Assert ---
			if tc.expectErr {
				require.Error(t, err)
				exitErr, isExitError := err.(*ExitError)
				require.True(t, isExitError, "Expected error to be of type ExitError")
				require.Equal(t, 2, exitErr.Code)
				require.Contains(t, err.Error(), tc.errSubstr)
				return
			}
			require.NoError(t, err)

			require.Equal(t, tc.expectExit, shouldExit)

			if tc.expectedConfig != nil {
				if diff := cmp.Diff(tc.expectedConfig, appConfig); diff != "" {
					t.Errorf("Config mismatch (-want +got):\n%s", diff)
				}
			}

			if tc.checkOutput != nil {
				tc.checkOutput(t, out.String())
			}
		})
	}
}

func TestIsOption(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		arg  string
		want bool
	}{
		{arg: "--", want: true},
		{arg: "-h", want: true},
		{arg: "--help", want: true},
		{arg: "-seed-file", want: true},
		{arg: "--log-level=debug", want: true},
		{arg: "-log-format=json", want: true},
		{arg: "-1", want: false},
		{arg: "-0.1", want: false},
		{arg: "-", want: false},
		{arg: "-x", want: false},
		{arg: "10", want: false},
	}

	flagSet := flag.NewFlagSet("xmlgen", flag.ContinueOnError)
	flagSet.String("seed-file", "", "")
	flagSet.String("log-level", "", "")
	flagSet.String("log-format", "", "")

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.arg, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, isOption(flagSet, tc.arg))
		})
	}
}
