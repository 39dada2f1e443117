package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/ui/component"
	"github.com/bnema/paneshell/internal/ui/layout"
	"github.com/bnema/paneshell/internal/ui/layout/layouttest"
	"github.com/bnema/paneshell/internal/ui/layout/mocks"
)

func TestNewPaneView_CreatesOverlay(t *testing.T) {
	// Arrange
	mockFactory := mocks.NewMockWidgetFactory(t)
	mockOverlay := mocks.NewMockOverlayWidget(t)
	mockBorderBox := mocks.NewMockBoxWidget(t)

	leafID := entity.NodeID("leaf-1")

	mockFactory.EXPECT().NewOverlay().Return(mockOverlay).Once()
	mockOverlay.EXPECT().SetHexpand(true).Once()
	mockOverlay.EXPECT().SetVexpand(true).Once()
	mockOverlay.EXPECT().SetVisible(true).Once()
	mockOverlay.EXPECT().AddCssClass("pane-overlay").Once()

	mockFactory.EXPECT().NewBox(layout.OrientationVertical, 0).Return(mockBorderBox).Once()
	mockBorderBox.EXPECT().SetCanFocus(false).Once()
	mockBorderBox.EXPECT().SetCanTarget(false).Once()
	mockBorderBox.EXPECT().AddCssClass("pane-border").Once()
	mockBorderBox.EXPECT().SetHexpand(true).Once()
	mockBorderBox.EXPECT().SetVexpand(true).Once()
	mockOverlay.EXPECT().AddOverlay(mockBorderBox).Once()

	// Act
	pv := component.NewPaneView(mockFactory, leafID)

	// Assert
	require.NotNil(t, pv)
	assert.Equal(t, leafID, pv.LeafID())
	assert.Nil(t, pv.Content())
	assert.Equal(t, mockOverlay, pv.Widget())
}

func TestPaneView_SetActiveTogglesBorderClass(t *testing.T) {
	mockFactory := mocks.NewMockWidgetFactory(t)
	mockOverlay := mocks.NewMockOverlayWidget(t)
	mockBorderBox := mocks.NewMockBoxWidget(t)

	mockFactory.EXPECT().NewOverlay().Return(mockOverlay).Once()
	mockOverlay.EXPECT().SetHexpand(true).Once()
	mockOverlay.EXPECT().SetVexpand(true).Once()
	mockOverlay.EXPECT().SetVisible(true).Once()
	mockOverlay.EXPECT().AddCssClass("pane-overlay").Once()
	mockFactory.EXPECT().NewBox(layout.OrientationVertical, 0).Return(mockBorderBox).Once()
	mockBorderBox.EXPECT().SetCanFocus(false).Once()
	mockBorderBox.EXPECT().SetCanTarget(false).Once()
	mockBorderBox.EXPECT().AddCssClass("pane-border").Once()
	mockBorderBox.EXPECT().SetHexpand(true).Once()
	mockBorderBox.EXPECT().SetVexpand(true).Once()
	mockOverlay.EXPECT().AddOverlay(mockBorderBox).Once()

	pv := component.NewPaneView(mockFactory, "leaf-1")

	// Repeated calls with the same state must not touch the widget again.
	mockBorderBox.EXPECT().AddCssClass("pane-active").Once()
	pv.SetActive(true)
	pv.SetActive(true)
	assert.True(t, pv.IsActive())

	mockBorderBox.EXPECT().RemoveCssClass("pane-active").Once()
	pv.SetActive(false)
	pv.SetActive(false)
	assert.False(t, pv.IsActive())
}

func TestPaneView_SetContentReplacesPlaceholder(t *testing.T) {
	factory := layouttest.NewFactory()
	pv := component.NewPaneView(factory, "leaf-1")
	overlay := factory.Overlays[0]

	pv.ShowPlaceholder("could not create content")
	require.True(t, pv.HasPlaceholder())
	label := factory.Labels[0]
	assert.Same(t, label, overlay.Child())
	assert.Equal(t, "could not create content", label.GetText())
	assert.True(t, label.HasCssClass("pane-placeholder"))
	assert.True(t, pv.GrabFocus())
	assert.True(t, label.HasFocus())

	content := layouttest.NewWidget("content")
	content.SetVisible(false)
	pv.SetContent(content)

	assert.False(t, pv.HasPlaceholder())
	assert.Same(t, content, overlay.Child())
	assert.Same(t, content, pv.Content())
	assert.True(t, content.IsVisible())
	assert.False(t, label.HasParent())
}

func TestPaneView_ErrorState(t *testing.T) {
	factory := layouttest.NewFactory()
	pv := component.NewPaneView(factory, "leaf-1")
	overlay := factory.Overlays[0]

	pv.SetError("content failed after 3 retries")
	require.True(t, pv.HasError())
	assert.True(t, overlay.HasCssClass("pane-error"))
	assert.Equal(t, "content failed after 3 retries", pv.ErrorText())
	assert.Len(t, overlay.Overlays(), 2, "border and error label")

	// A second error reuses the label.
	pv.SetError("still failing")
	assert.Len(t, factory.Labels, 1)
	assert.Equal(t, "still failing", pv.ErrorText())

	pv.SetError("")
	assert.False(t, pv.HasError())
	assert.False(t, overlay.HasCssClass("pane-error"))
	assert.Empty(t, pv.ErrorText())
	assert.False(t, factory.Labels[0].IsVisible())
}

func TestPaneView_CleanupDetachesEverything(t *testing.T) {
	factory := layouttest.NewFactory()
	pv := component.NewPaneView(factory, "leaf-1")
	overlay := factory.Overlays[0]
	parent := factory.NewBox(layout.OrientationVertical, 0)
	parent.Append(pv.Widget())

	content := layouttest.NewWidget("content")
	pv.SetContent(content)
	pv.SetError("boom")

	pv.Cleanup()

	assert.Nil(t, overlay.Child())
	assert.Empty(t, overlay.Overlays())
	assert.False(t, content.HasParent())
	assert.False(t, overlay.HasParent())
	assert.Nil(t, pv.Content())
}
