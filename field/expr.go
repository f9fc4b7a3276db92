/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package field

import (
	"fmt"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"dirpx.dev/idref/apis"
)

// exprEnv is the environment a validator expression evaluates against.
type exprEnv struct {
	// Name is the candidate entity's current display name.
	Name string `expr:"name"`
	// Namespace is the namespace holding the candidate.
	Namespace string `expr:"namespace"`
	// Linked reports whether the candidate was linked in from a library.
	Linked bool `expr:"linked"`
}

// ExprValidator compiles a boolean expression into a Validator. The
// expression sees the candidate entity as `name`, `namespace` and
// `linked`, e.g.:
//
//	v, err := field.ExprValidator(`namespace == "main" && !linked`)
//	f := field.New("target", res, pool, field.WithValidator(v))
//
// Compilation errors are returned eagerly; runtime evaluation errors
// reject the candidate.
func ExprValidator(expression string) (Validator, error) {
	if expression == "" {
		return nil, fmt.Errorf("idref(field): empty validator expression")
	}
	program, err := exprlang.Compile(expression, exprlang.Env(exprEnv{}), exprlang.AsBool())
	if err != nil {
		return nil, fmt.Errorf("idref(field): compile validator: %w", err)
	}
	return exprPredicate(program), nil
}

// exprPredicate adapts a compiled program to the Validator signature.
func exprPredicate(program *exprvm.Program) Validator {
	return func(e apis.Entity) bool {
		if e == nil {
			return false
		}
		out, err := exprlang.Run(program, exprEnv{
			Name:      e.Name(),
			Namespace: e.Namespace(),
			Linked:    isLinked(e),
		})
		if err != nil {
			return false
		}
		b, ok := out.(bool)
		return ok && b
	}
}

// isLinked reports whether e carries a library link index.
func isLinked(e apis.Entity) bool {
	l, ok := e.(apis.Linker)
	if !ok {
		return false
	}
	_, ok = l.LinkIndex()
	return ok
}
