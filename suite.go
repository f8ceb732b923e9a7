// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package xlite

import (
	"fmt"
	"reflect"
)

// AddSuite declares a group of cases as the methods of a type.  Every
// exported method of given suite pointer which has exactly one argument
// of type *T becomes a case of the Default registry named
// "<SuiteType>/<Method>", e.g.:
//
//	type Stack struct{}
//
//	func (s *Stack) Pops_what_was_pushed(t *xlite.T) {
//	    // case implementation
//	}
//
//	var _ = xlite.AddSuite(&Stack{})
//
// All cases of a suite share the same suite value.  Methods with a
// different signature are ignored; AddSuite panics if given suite isn't
// a pointer.
func AddSuite(suite interface{}) []*Case {
	return Default().AddSuite(suite)
}

// tType is the reflected type of a suite-test's argument.
var tType = reflect.TypeOf(&T{})

// AddSuite adds the cases of given suite to r (see package level
// AddSuite) in the order of the suite's method set and returns them.
func (r *Registry) AddSuite(suite interface{}) []*Case {
	value := reflect.ValueOf(suite)
	if value.Kind() != reflect.Ptr || value.IsNil() {
		panic(fmt.Errorf("xlite: suite must be a non-nil pointer; got %T",
			suite))
	}
	rtype := value.Type()
	group := rtype.Elem().Name()
	if group == "" {
		group = rtype.Elem().String()
	}

	cc := []*Case{}
	for i := 0; i < rtype.NumMethod(); i++ {
		method := rtype.Method(i)
		if !isSuiteTest(method) {
			continue
		}
		cc = append(cc, r.Add(New(
			group+"/"+method.Name, suiteTest(value, method))))
	}
	return cc
}

// isSuiteTest returns true iff given method returns nothing and its only
// argument besides its receiver is a *T.
func isSuiteTest(method reflect.Method) bool {
	return method.Type.NumIn() == 2 && method.Type.In(1) == tType &&
		method.Type.NumOut() == 0
}

// suiteTest wraps given suite method into a Runner.
func suiteTest(suite reflect.Value, method reflect.Method) Runner {
	return RunnerFunc(func(t *T) {
		method.Func.Call([]reflect.Value{suite, reflect.ValueOf(t)})
	})
}
