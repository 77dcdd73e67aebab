package telemetry

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

type Options struct {
	Service  string
	Env      string
	Exporter string // "stdout" or "none"
	Output   io.Writer
}

// With Exporter "none" spans are created but never exported.
func Setup(opts Options) (func(context.Context) error, error) {
	res := resource.NewSchemaless(
		attribute.String("service.name", opts.Service),
		attribute.String("deployment.environment", opts.Env),
	)

	tpOpts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}

	switch opts.Exporter {
	case "", "none":
	case "stdout":
		out := opts.Output
		if out == nil {
			out = os.Stderr
		}
		exp, err := stdouttrace.New(stdouttrace.WithWriter(out))
		if err != nil {
			return nil, fmt.Errorf("stdout exporter: %w", err)
		}
		tpOpts = append(tpOpts, sdktrace.WithBatcher(exp))
	default:
		return nil, fmt.Errorf("unknown trace exporter %q", opts.Exporter)
	}

	tp := sdktrace.NewTracerProvider(tpOpts...)
	otel.SetTracerProvider(tp)
	return tp.Shutdown, nil
}
