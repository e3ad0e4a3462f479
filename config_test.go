package mdu

import (
	"errors"
	"reflect"
	"testing"
)

func Test_ParseArgs_Requires_At_Least_One_Path(t *testing.T) {
	t.Parallel()

	_, err := ParseArgs(nil)
	if !errors.Is(err, ErrNoPaths) {
		t.Fatalf("ParseArgs(nil) err = %v, want ErrNoPaths", err)
	}

	_, err = ParseArgs([]string{"-j", "4", "-v"})
	if !errors.Is(err, ErrNoPaths) {
		t.Fatalf("ParseArgs(flags only) err = %v, want ErrNoPaths", err)
	}
}

func Test_ParseArgs_Collects_Positional_Roots_In_Order(t *testing.T) {
	t.Parallel()

	cfg, err := ParseArgs([]string{"a", "b", "c"})
	if err != nil {
		t.Fatalf("ParseArgs() err = %v", err)
	}

	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(cfg.Roots, want) {
		t.Fatalf("cfg.Roots = %v, want %v", cfg.Roots, want)
	}
}

func Test_ParseArgs_Defaults_To_One_Worker(t *testing.T) {
	t.Parallel()

	cfg, err := ParseArgs([]string{"path"})
	if err != nil {
		t.Fatalf("ParseArgs() err = %v", err)
	}

	if cfg.Workers != 1 {
		t.Fatalf("cfg.Workers = %d, want 1", cfg.Workers)
	}
}

func Test_ParseArgs_Accepts_Dash_J_As_Separate_Argument(t *testing.T) {
	t.Parallel()

	cfg, err := ParseArgs([]string{"-j", "8", "path"})
	if err != nil {
		t.Fatalf("ParseArgs() err = %v", err)
	}

	if cfg.Workers != 8 {
		t.Fatalf("cfg.Workers = %d, want 8", cfg.Workers)
	}
}

func Test_ParseArgs_Accepts_Dash_J_Fused_With_Value(t *testing.T) {
	t.Parallel()

	cfg, err := ParseArgs([]string{"-j16", "path"})
	if err != nil {
		t.Fatalf("ParseArgs() err = %v", err)
	}

	if cfg.Workers != 16 {
		t.Fatalf("cfg.Workers = %d, want 16", cfg.Workers)
	}
}

func Test_ParseArgs_Tolerates_Dash_J_Interleaved_Among_Paths(t *testing.T) {
	t.Parallel()

	cfg, err := ParseArgs([]string{"a", "-j", "2", "b"})
	if err != nil {
		t.Fatalf("ParseArgs() err = %v", err)
	}

	want := []string{"a", "b"}
	if !reflect.DeepEqual(cfg.Roots, want) {
		t.Fatalf("cfg.Roots = %v, want %v", cfg.Roots, want)
	}

	if cfg.Workers != 2 {
		t.Fatalf("cfg.Workers = %d, want 2", cfg.Workers)
	}
}

func Test_ParseArgs_Clamps_NonPositive_Or_NonNumeric_Worker_Count_To_One(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"0", "-3", "nope", ""} {
		args := []string{"-j" + raw, "path"}
		if raw == "" {
			// A bare "-j" takes the next argument as its value, so the
			// empty value is passed as its own argument.
			args = []string{"-j", raw, "path"}
		}

		cfg, err := ParseArgs(args)
		if err != nil {
			t.Fatalf("ParseArgs(-j%s) err = %v", raw, err)
		}

		if cfg.Workers != 1 {
			t.Fatalf("ParseArgs(-j%s) Workers = %d, want 1", raw, cfg.Workers)
		}
	}
}

func Test_ParseArgs_Recognizes_Dash_V_And_Ignores_Unknown_Flags(t *testing.T) {
	t.Parallel()

	cfg, err := ParseArgs([]string{"-v", "--bogus", "-x", "path"})
	if err != nil {
		t.Fatalf("ParseArgs() err = %v", err)
	}

	if !cfg.Verbose {
		t.Fatal("cfg.Verbose = false, want true")
	}

	want := []string{"path"}
	if !reflect.DeepEqual(cfg.Roots, want) {
		t.Fatalf("cfg.Roots = %v, want %v (unknown flags must not become roots)", cfg.Roots, want)
	}
}

func Test_ParseArgs_Accepts_Multiple_Roots(t *testing.T) {
	t.Parallel()

	cfg, err := ParseArgs([]string{"-j", "4", "one", "two", "three"})
	if err != nil {
		t.Fatalf("ParseArgs() err = %v", err)
	}

	want := []string{"one", "two", "three"}
	if !reflect.DeepEqual(cfg.Roots, want) {
		t.Fatalf("cfg.Roots = %v, want %v", cfg.Roots, want)
	}
}
