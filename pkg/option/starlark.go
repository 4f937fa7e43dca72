// Copyright 2026 the Kubegen Authors.
// SPDX-License-Identifier: Apache-2.0

package option

import (
	"fmt"

	"github.com/k14s/starlark-go/starlark"
	"github.com/k14s/starlark-go/syntax"

	"github.com/kubegen/kubegen/pkg/orderedmap"
)

// StarlarkValue computes an option value by evaluating a Starlark
// expression. The option's dotted name is bound as "name"; additional
// bindings come from Env.
type StarlarkValue struct {
	Expr string
	Env  *orderedmap.Map
}

func (s StarlarkValue) GetValue(name string, def *Def) (interface{}, error) {
	expr, err := syntax.ParseExpr(name, s.Expr, syntax.BlockScanner)
	if err != nil {
		return nil, fmt.Errorf("Parsing expression: %s", err)
	}

	env := starlark.StringDict{"name": starlark.String(name)}
	if s.Env != nil {
		iterErr := s.Env.IterateErr(func(k, v interface{}) error {
			key, ok := k.(string)
			if !ok {
				return fmt.Errorf("Expected string binding name, but was %T", k)
			}
			starVal, err := toStarlarkValue(v)
			if err != nil {
				return err
			}
			env[key] = starVal
			return nil
		})
		if iterErr != nil {
			return nil, iterErr
		}
	}

	thread := &starlark.Thread{Name: "kubegen-option"}

	result, err := starlark.EvalExpr(thread, expr, env)
	if err != nil {
		return nil, fmt.Errorf("Evaluating expression: %s", err)
	}

	return fromStarlarkValue(result)
}

func toStarlarkValue(val interface{}) (starlark.Value, error) {
	switch typedVal := val.(type) {
	case nil:
		return starlark.None, nil
	case bool:
		return starlark.Bool(typedVal), nil
	case string:
		return starlark.String(typedVal), nil
	case int:
		return starlark.MakeInt(typedVal), nil
	case int64:
		return starlark.MakeInt64(typedVal), nil
	case float64:
		return starlark.Float(typedVal), nil
	case []interface{}:
		items := []starlark.Value{}
		for _, item := range typedVal {
			starItem, err := toStarlarkValue(item)
			if err != nil {
				return nil, err
			}
			items = append(items, starItem)
		}
		return starlark.NewList(items), nil
	case *orderedmap.Map:
		dict := starlark.NewDict(typedVal.Len())
		err := typedVal.IterateErr(func(k, v interface{}) error {
			starKey, err := toStarlarkValue(k)
			if err != nil {
				return err
			}
			starVal, err := toStarlarkValue(v)
			if err != nil {
				return err
			}
			return dict.SetKey(starKey, starVal)
		})
		if err != nil {
			return nil, err
		}
		return dict, nil
	default:
		return nil, fmt.Errorf("Unsupported type %T for expression binding", val)
	}
}

func fromStarlarkValue(val starlark.Value) (interface{}, error) {
	switch typedVal := val.(type) {
	case nil, starlark.NoneType:
		return nil, nil

	case starlark.Bool:
		return bool(typedVal), nil

	case starlark.String:
		return string(typedVal), nil

	case starlark.Int:
		i1, ok := typedVal.Int64()
		if ok {
			return i1, nil
		}
		i2, ok := typedVal.Uint64()
		if ok {
			return i2, nil
		}
		return nil, fmt.Errorf("Expected int64 or uint64 value")

	case starlark.Float:
		return float64(typedVal), nil

	case *starlark.Dict:
		result := orderedmap.NewMap()
		for _, item := range typedVal.Items() {
			if item.Len() != 2 {
				return nil, fmt.Errorf("Expected dict item to be KV")
			}
			key, err := fromStarlarkValue(item.Index(0))
			if err != nil {
				return nil, err
			}
			value, err := fromStarlarkValue(item.Index(1))
			if err != nil {
				return nil, err
			}
			result.Set(key, value)
		}
		return result, nil

	case *starlark.List:
		return iterableToInterface(typedVal)

	case starlark.Tuple:
		return iterableToInterface(typedVal)

	default:
		return nil, fmt.Errorf("Unsupported type %T for conversion to option value", val)
	}
}

func iterableToInterface(val starlark.Iterable) ([]interface{}, error) {
	result := []interface{}{}

	iter := val.Iterate()
	defer iter.Done()

	var item starlark.Value
	for iter.Next(&item) {
		converted, err := fromStarlarkValue(item)
		if err != nil {
			return nil, err
		}
		result = append(result, converted)
	}
	return result, nil
}
