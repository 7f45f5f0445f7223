package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

var Emit = func(ctx context.Context, name string, evt PipelineEvent) {}

func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, evt PipelineEvent) {
		if evt.RunToken == "" {
			if run := RunFromContext(ctx); run != "" {
				evt.RunToken = run
			}
		}

		runtime.EventsEmit(ctx, name, evt)
		logRuntimeEvent(ctx, name, evt)
	}
}

func SetCustomEmitter(f func(ctx context.Context, name string, evt PipelineEvent)) {
	if f == nil {
		Emit = func(context.Context, string, PipelineEvent) {}
		return
	}
	Emit = func(ctx context.Context, name string, evt PipelineEvent) {
		if evt.RunToken == "" {
			if run := RunFromContext(ctx); run != "" {
				evt.RunToken = run
			}
		}
		f(ctx, name, evt)
	}
}
