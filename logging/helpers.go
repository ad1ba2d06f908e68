package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// AddConsole registers a console-encoded destination on ws, serialized with
// zapcore.Lock. Returns the destination token.
func (r *Registry) AddConsole(ws zapcore.WriteSyncer, min zapcore.Level) string {
	return r.AddDestination(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(ws),
		min,
	)
}

// AddJSON registers a production JSON-encoded destination on ws. Returns the
// destination token.
func (r *Registry) AddJSON(ws zapcore.WriteSyncer, min zapcore.Level) string {
	return r.AddDestination(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		ws,
		min,
	)
}

// NewStdoutRegistry returns a registry with a single console destination on
// stdout admitting everything from fallback up.
func NewStdoutRegistry(fallback zapcore.Level) *Registry {
	r := NewRegistry(fallback)
	r.AddConsole(os.Stdout, fallback)
	return r
}
