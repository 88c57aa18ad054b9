package config

import (
	"errors"
	"testing"

	"github.com/0xalexb/fern"
	"github.com/0xalexb/fern/source"
)

type simpleConfig struct {
	Name string
}

func (c *simpleConfig) Load(env *fern.Env) error {
	var err error

	c.Name, err = env.String(fern.Key("NAME"))

	return err
}

type configWithDefaults struct {
	Name    string
	changed bool
}

func (c *configWithDefaults) Load(*fern.Env) error {
	return nil
}

func (c *configWithDefaults) SetDefaults() bool {
	return c.changed
}

type configWithValidator struct {
	Name string
	err  error
}

func (c *configWithValidator) Load(*fern.Env) error {
	return nil
}

func (c *configWithValidator) Validate() error {
	return c.err
}

type configWithAll struct {
	Name    string
	loadErr error
	changed bool
	err     error
}

func (c *configWithAll) Load(*fern.Env) error {
	return c.loadErr
}

func (c *configWithAll) SetDefaults() bool {
	return c.changed
}

func (c *configWithAll) Validate() error {
	return c.err
}

func newEnv(vars source.Map) *fern.Env {
	return fern.New(fern.WithSource(vars))
}

func TestProvider_Success(t *testing.T) {
	t.Parallel()

	target := &simpleConfig{}
	provider := Provider(target)

	result, err := provider(newEnv(source.Map{"NAME": "test"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != target {
		t.Error("expected result to be the same as target")
	}

	if result.Name != "test" {
		t.Errorf("expected Name to be 'test', got %q", result.Name)
	}
}

func TestProvider_MissingVariable(t *testing.T) {
	t.Parallel()

	provider := Provider(&simpleConfig{})

	result, err := provider(newEnv(source.Map{}))
	if result != nil {
		t.Error("expected result to be nil")
	}

	if !errors.Is(err, fern.ErrMissingVariable) {
		t.Errorf("expected error to wrap %v, got %v", fern.ErrMissingVariable, err)
	}
}

func TestProvider_WithValidation_Success(t *testing.T) {
	t.Parallel()

	target := &configWithValidator{err: nil}
	provider := Provider(target)

	result, err := provider(newEnv(source.Map{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != target {
		t.Error("expected result to be the same as target")
	}
}

func TestProvider_Errors(t *testing.T) {
	t.Parallel()

	loadErr := errors.New("load failed")
	validationErr := errors.New("validation failed")

	tests := []struct {
		name    string
		loadErr error
		err     error
		wantErr error
	}{
		{
			name:    "load error",
			loadErr: loadErr,
			err:     nil,
			wantErr: loadErr,
		},
		{
			name:    "validation error",
			loadErr: nil,
			err:     validationErr,
			wantErr: validationErr,
		},
		{
			name:    "load error skips validation",
			loadErr: loadErr,
			err:     validationErr,
			wantErr: loadErr,
		},
	}

	for _, testInfo := range tests {
		testInfo := testInfo
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			target := &configWithAll{loadErr: testInfo.loadErr, err: testInfo.err}
			provider := Provider(target)

			result, err := provider(newEnv(source.Map{}))

			if result != nil {
				t.Error("expected result to be nil")
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if !errors.Is(err, testInfo.wantErr) {
				t.Errorf("expected error to wrap %v, got %v", testInfo.wantErr, err)
			}
		})
	}
}

func TestProvider_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		changed bool
	}{
		{
			name:    "defaults changed",
			changed: true,
		},
		{
			name:    "defaults not changed",
			changed: false,
		},
	}

	for _, testInfo := range tests {
		testInfo := testInfo
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			target := &configWithDefaults{changed: testInfo.changed}
			provider := Provider(target)

			result, err := provider(newEnv(source.Map{}))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result != target {
				t.Error("expected result to be the same as target")
			}
		})
	}
}
