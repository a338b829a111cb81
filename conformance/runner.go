package conformance

import (
	"fmt"
	"path/filepath"
	"strings"

	"zimvm/host"
	"zimvm/image"
	"zimvm/interp"
	"zimvm/value"
)

// Result is the outcome of running one scenario.
type Result struct {
	Scenario Scenario
	Passed   bool
	Error    error
}

// Run loads and executes ls's image and checks it against the
// scenario's expectation.
func Run(ls LoadedScenario) Result {
	s := ls.Scenario
	entry := s.Entry
	if entry == "" {
		entry = "main"
	}

	imgPath := filepath.Join(ls.Dir, s.Image)
	pkg, err := image.Load(imgPath)
	if err != nil {
		return checkError(s, fmt.Errorf("load: %w", err))
	}

	registry := host.NewRegistry()
	registry.SetLoader(func(name string) (*value.Object, error) {
		return image.Load(filepath.Join(ls.Dir, name+".zim"))
	})

	it := interp.New()
	it.Importer = registry.Import

	result, err := interp.CallExportFn(it, pkg, entry, nil)
	if err != nil {
		return checkError(s, err)
	}
	return checkValue(s, result)
}

func checkError(s Scenario, err error) Result {
	if s.Expect.Error == "" {
		return Result{Scenario: s, Passed: false, Error: fmt.Errorf("unexpected error: %w", err)}
	}
	if !strings.Contains(err.Error(), s.Expect.Error) {
		return Result{Scenario: s, Passed: false, Error: fmt.Errorf("expected error containing %q, got %q", s.Expect.Error, err.Error())}
	}
	return Result{Scenario: s, Passed: true}
}

func checkValue(s Scenario, result value.Value) Result {
	if s.Expect.Error != "" {
		return Result{Scenario: s, Passed: false, Error: fmt.Errorf("expected error %q, got value %v", s.Expect.Error, result)}
	}
	want, err := yamlToValue(s.Expect.Value)
	if err != nil {
		return Result{Scenario: s, Passed: false, Error: err}
	}
	if !result.Equal(want) {
		return Result{Scenario: s, Passed: false, Error: fmt.Errorf("expected %v, got %v", want, result)}
	}
	return Result{Scenario: s, Passed: true}
}

func yamlToValue(v any) (value.Value, error) {
	switch t := v.(type) {
	case int:
		return value.Int64(t), nil
	case int64:
		return value.Int64(t), nil
	case string:
		return value.NewString(t), nil
	case bool:
		return value.Bool(t), nil
	case nil:
		return value.Undef{}, nil
	default:
		return nil, fmt.Errorf("unsupported expected value %v (%T)", v, v)
	}
}
