package vet

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for validation events.
var (
	SignalSchemaDeclared    = capitan.NewSignal("vet.schema.declared", "Schema built from struct tags")
	SignalCheckComplete     = capitan.NewSignal("vet.check.complete", "Constraint check finished")
	SignalTransformComplete = capitan.NewSignal("vet.transform.complete", "Transformation finished")
)

// Keys for typed event data.
var (
	KeyParameter  = capitan.NewStringKey("parameter")
	KeyKind       = capitan.NewStringKey("kind")
	KeyTypeName   = capitan.NewStringKey("type_name")
	KeyFieldCount = capitan.NewIntKey("field_count")
	KeyDuration   = capitan.NewDurationKey("duration")
	KeyError      = capitan.NewErrorKey("error")
)

// emitSchemaDeclared emits an event when a schema is built for a type.
func emitSchemaDeclared(ctx context.Context, typeName string, fieldCount int) {
	capitan.Emit(ctx, SignalSchemaDeclared,
		KeyTypeName.Field(typeName),
		KeyFieldCount.Field(fieldCount),
	)
}

// emitCheckComplete emits an event when a constraint check finishes.
func emitCheckComplete(ctx context.Context, kind Kind, parameter string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyKind.Field(string(kind)),
		KeyParameter.Field(parameter),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalCheckComplete, fields...)
		return
	}
	capitan.Emit(ctx, SignalCheckComplete, fields...)
}

// emitTransformComplete emits an event when a transformation finishes.
func emitTransformComplete(ctx context.Context, kind Kind, parameter string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyKind.Field(string(kind)),
		KeyParameter.Field(parameter),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalTransformComplete, fields...)
		return
	}
	capitan.Emit(ctx, SignalTransformComplete, fields...)
}
