package seed

import "strings"

// SuccessMessage is printed after a generator's XML document is written.
const SuccessMessage = "XML file generated successfully!"

// Values maps a parameter name to the verbatim text supplied for it.
type Values map[string]string

// Artifact is a single file produced by a generator.
type Artifact struct {
	// Name is the fixed file name, relative to the output directory.
	Name string
	// Content is written as-is, with no trailing newline added.
	Content string
	// Announce marks the artifact after which SuccessMessage is printed.
	Announce bool
}

// Generator describes one command-line generator: the program name shown in
// usage text, its positional parameters in invocation order, and how the
// bound values become files.
type Generator struct {
	Program string
	Summary string
	Params  []string
	render  func(Values) []Artifact
}

// Arity returns the exact number of values the generator accepts.
func (g *Generator) Arity() int {
	return len(g.Params)
}

// Bind assigns args to the generator's parameters by position.
func (g *Generator) Bind(args []string) (Values, error) {
	if len(args) != len(g.Params) {
		return nil, &ArgCountError{Generator: g.Program, Want: len(g.Params), Got: len(args)}
	}
	values := make(Values, len(args))
	for i, name := range g.Params {
		values[name] = args[i]
	}
	return values, nil
}

// Render binds args and returns the artifacts in the order they must be
// written.
func (g *Generator) Render(args []string) ([]Artifact, error) {
	values, err := g.Bind(args)
	if err != nil {
		return nil, err
	}
	return g.render(values), nil
}

// Usage returns the one-line hint printed when the argument count is wrong.
func (g *Generator) Usage() string {
	return "Correct usage: " + g.Program + " " + strings.Join(g.Params, " ") + "\n"
}
