// Package conformance is a YAML-driven end-to-end scenario runner: each
// scenario names a .zim image, an exported function to call, and an
// expected outcome (a return value or an error substring). Grounded on
// barn/conformance's YAML test-suite loader and runner, generalized from
// MOO expression/statement fixtures to program images.
package conformance

// Scenario is one YAML-described end-to-end test.
type Scenario struct {
	Name   string      `yaml:"name"`
	Image  string      `yaml:"image"`
	Entry  string      `yaml:"entry,omitempty"`
	Expect Expectation `yaml:"expect"`
}

// Expectation names exactly one of Value or Error.
type Expectation struct {
	Value any    `yaml:"value,omitempty"`
	Error string `yaml:"error,omitempty"`
}

// scenarioFile is the top-level shape of a testdata/*.yaml manifest: a
// named group of scenarios sharing an image directory.
type scenarioFile struct {
	Scenarios []Scenario `yaml:"scenarios"`
}
