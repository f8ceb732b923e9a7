// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// source provides the exprIndexer-type whose only task it is to recover
// the source text of an assertion's argument from the file the
// assertion was called in.

package xlite

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"sync"
)

var expressions = exprIndexer{}

// exprIndexer parses a source file at most once and keeps its ast for
// subsequent argument-lookups of the same file.  Files which can't be
// read or parsed are remembered as such, i.e. they are not tried again.
type exprIndexer struct {
	mutex  sync.Mutex
	_Files map[string]*srcFile
}

// srcFile is a parsed source file; a nil ast flags a file which
// couldn't be parsed.
type srcFile struct {
	fset *token.FileSet
	ast  *ast.File
	src  []byte
}

// argument returns the source text of the first argument of a call to
// a method with given name at given location.  The second return value
// is false if there is no such call, if more than one such call spans
// the location's line or if the source file isn't available.
func (i *exprIndexer) argument(loc Location, method string) (string, bool) {
	i.mutex.Lock()
	defer i.mutex.Unlock()

	f := i._Ensure(loc.File)
	if f.ast == nil {
		return "", false
	}
	var arg ast.Expr
	calls := 0
	ast.Inspect(f.ast, func(n ast.Node) bool {
		if n == nil || !f.spans(n, loc.Line) {
			return false
		}
		call, ok := n.(*ast.CallExpr)
		if !ok || len(call.Args) == 0 {
			return true
		}
		if isMethodCall(call, method) {
			calls++
			arg = call.Args[0]
		}
		return true
	})
	if calls != 1 {
		return "", false
	}
	from := f.fset.Position(arg.Pos()).Offset
	to := f.fset.Position(arg.End()).Offset
	if from < 0 || to > len(f.src) || from >= to {
		return "", false
	}
	return string(f.src[from:to]), true
}

// _Ensure returns the parsed file of given name parsing it if it hasn't
// been parsed before.
func (i *exprIndexer) _Ensure(name string) *srcFile {
	if f, ok := i._Files[name]; ok {
		return f
	}
	if i._Files == nil {
		i._Files = map[string]*srcFile{}
	}
	f := &srcFile{fset: token.NewFileSet()}
	i._Files[name] = f
	src, err := os.ReadFile(name)
	if err != nil {
		return f
	}
	astFile, err := parser.ParseFile(f.fset, name, src, 0)
	if err != nil {
		return f
	}
	f.ast, f.src = astFile, src
	return f
}

// spans returns true if given node starts at or before given line and
// ends at or after it.
func (f *srcFile) spans(n ast.Node, line int) bool {
	return f.fset.Position(n.Pos()).Line <= line &&
		f.fset.Position(n.End()).Line >= line
}

func isMethodCall(call *ast.CallExpr, method string) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return false
	}
	return sel.Sel.Name == method
}
