package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/mesonic/internal/adapters/telemetry"
	"go.trai.ch/mesonic/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestOTelTracer_SpanLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)
	tracer := telemetry.NewOTelTracer(mockRenderer)

	var spanID string
	gomock.InOrder(
		mockRenderer.EXPECT().
			OnTaskStart(gomock.Any(), "", "unit", gomock.Any()).
			Do(func(id, _, _ string, _ any) { spanID = id }),
		mockRenderer.EXPECT().
			OnTaskComplete(gomock.Any(), gomock.Any(), gomock.Any()).
			Do(func(id string, _ any, err error) {
				assert.Equal(t, spanID, id)
				require.Error(t, err)
				assert.Equal(t, "boom", err.Error())
			}),
	)

	_, span := tracer.Start(context.Background(), "unit")
	span.SetAttribute("suite", "proj")
	span.SetAttribute("duration_ms", 12)
	span.SetAttribute("other", struct{}{})
	span.RecordError(errors.New("boom"))
	span.End()

	require.NoError(t, tracer.Shutdown(context.Background()))
}

func TestOTelTracer_NestedSpansCarryParent(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRenderer := mocks.NewMockRenderer(ctrl)
	tracer := telemetry.NewOTelTracer(mockRenderer)

	var parentID string
	mockRenderer.EXPECT().
		OnTaskStart(gomock.Any(), "", "folder", gomock.Any()).
		Do(func(id, _, _ string, _ any) { parentID = id })
	mockRenderer.EXPECT().
		OnTaskStart(gomock.Any(), gomock.Any(), "unit", gomock.Any()).
		Do(func(_, parent, _ string, _ any) { assert.Equal(t, parentID, parent) })
	mockRenderer.EXPECT().OnTaskComplete(gomock.Any(), gomock.Any(), nil).Times(2)

	ctx, outer := tracer.Start(context.Background(), "folder")
	_, inner := tracer.Start(ctx, "unit")
	inner.End()
	outer.End()
}
