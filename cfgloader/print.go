package cfgloader

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"

	"gopkg.in/yaml.v3"
)

// printConfig logs the loaded configuration with masked secret fields.
func printConfig(config any) {
	masked := maskStruct(config)

	out, err := yaml.Marshal(masked)
	if err != nil {
		slog.Error("failed to marshal config", "error", err.Error())
		return
	}
	slog.Info(fmt.Sprintf("Loaded config:\n%s", string(out)))
}

// maskStruct returns a copy of cfg with every field tagged `mask:"true"`
// replaced by asterisks.
func maskStruct(cfg any) any {
	val := reflect.ValueOf(cfg)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	return maskValue(val, false).Interface()
}

func maskValue(val reflect.Value, mask bool) reflect.Value {
	if !val.IsValid() {
		return val
	}

	switch val.Kind() { //nolint:exhaustive // only handled kinds relevant to masking
	case reflect.Ptr:
		if val.IsNil() {
			return val
		}
		ptr := reflect.New(val.Elem().Type())
		ptr.Elem().Set(maskValue(val.Elem(), mask))
		return ptr

	case reflect.Interface:
		if val.IsNil() {
			return val
		}
		return maskValue(val.Elem(), mask)

	case reflect.Struct:
		masked := reflect.New(val.Type()).Elem()
		for i := range val.NumField() {
			field := val.Type().Field(i)
			origVal := val.Field(i)

			if !masked.Field(i).CanSet() || !origVal.CanInterface() {
				continue
			}

			fieldMask := mask || field.Tag.Get("mask") == "true"
			masked.Field(i).Set(maskValue(origVal, fieldMask))
		}
		return masked

	case reflect.String:
		if mask {
			return reflect.ValueOf(strings.Repeat("*", val.Len()))
		}
		return val

	default:
		if mask {
			return reflect.Zero(val.Type())
		}
		return val
	}
}
