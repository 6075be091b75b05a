// Package internal provides the core of the bython linter.
//
// Key components:
//
// Walker: visits a syntax tree depth-first. For every node it first runs the
// rule checks that apply to the node's kind, then descends into the bodies of
// modules, function definitions and conditionals. Other nodes are never
// descended into. Issues are collected for one walk and returned sorted by line.
//
// Engine: reads and parses a Python file, runs the walker and returns a Result.
// It can also watch a file and re-run the analysis whenever it is written.
//
// SourceCode: the analyzed source split into lines, used to show the line an
// issue points at.
//
// Usage:
//
//	engine := internal.NewEngine(logger)
//	result, err := engine.Run(ctx, "path/to/file.py")
//	if err != nil {
//	    // handle error
//	}
//	for _, issue := range result.Issues {
//	    // process issues
//	}
package internal
