package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paneshell/internal/ui/layout"
	"github.com/bnema/paneshell/internal/ui/layout/mocks"
)

// setupPanedMocks configures the expectations of NewSplitView.
func setupPanedMocks(mockPaned *mocks.MockPanedWidget) {
	mockPaned.EXPECT().SetResizeStartChild(true).Once()
	mockPaned.EXPECT().SetResizeEndChild(true).Once()
	mockPaned.EXPECT().SetShrinkStartChild(false).Once()
	mockPaned.EXPECT().SetShrinkEndChild(false).Once()
	mockPaned.EXPECT().SetHexpand(true).Once()
	mockPaned.EXPECT().SetVexpand(true).Once()
}

func newMockSplitView(t *testing.T, orientation layout.Orientation) (*layout.SplitView, *mocks.MockPanedWidget) {
	t.Helper()
	mockFactory := mocks.NewMockWidgetFactory(t)
	mockPaned := mocks.NewMockPanedWidget(t)
	mockFactory.EXPECT().NewPaned(orientation).Return(mockPaned).Once()
	setupPanedMocks(mockPaned)
	return layout.NewSplitView(mockFactory, orientation), mockPaned
}

func TestNewSplitView_Horizontal(t *testing.T) {
	// Arrange & Act
	sv, mockPaned := newMockSplitView(t, layout.OrientationHorizontal)

	// Assert
	require.NotNil(t, sv)
	assert.Equal(t, layout.OrientationHorizontal, sv.Orientation())
	assert.Equal(t, 0.5, sv.GetRatio())
	assert.Nil(t, sv.StartChild())
	assert.Nil(t, sv.EndChild())
	assert.False(t, sv.Attached())
	assert.Equal(t, mockPaned, sv.Widget())
}

func TestAttach_SetsChildrenAndAppliesRatio(t *testing.T) {
	// Arrange
	sv, mockPaned := newMockSplitView(t, layout.OrientationHorizontal)
	start := mocks.NewMockWidget(t)
	end := mocks.NewMockWidget(t)

	mockPaned.EXPECT().SetStartChild(start).Once()
	mockPaned.EXPECT().SetEndChild(end).Once()
	mockPaned.EXPECT().ConnectMap(mock.Anything).Return(uint32(1)).Once()
	mockPaned.EXPECT().ConnectNotifyPosition(mock.Anything).Return(uint32(2)).Once()
	mockPaned.EXPECT().GetAllocatedWidth().Return(1000).Once()
	mockPaned.EXPECT().SetPosition(300).Once()

	// Act
	sv.Attach(start, end, 0.3)

	// Assert
	assert.Equal(t, 0.3, sv.GetRatio())
	assert.Equal(t, start, sv.StartChild())
	assert.Equal(t, end, sv.EndChild())
	assert.True(t, sv.Attached())
}

func TestAttach_UnallocatedAppliesRatioOnMap(t *testing.T) {
	// Arrange
	sv, mockPaned := newMockSplitView(t, layout.OrientationVertical)
	var onMap func()

	mockPaned.EXPECT().SetStartChild(mock.Anything).Once()
	mockPaned.EXPECT().SetEndChild(mock.Anything).Once()
	mockPaned.EXPECT().ConnectMap(mock.Anything).
		Run(func(callback func()) { onMap = callback }).
		Return(uint32(1)).Once()
	mockPaned.EXPECT().ConnectNotifyPosition(mock.Anything).Return(uint32(2)).Once()
	mockPaned.EXPECT().GetAllocatedHeight().Return(0).Once()

	sv.Attach(mocks.NewMockWidget(t), mocks.NewMockWidget(t), 0.25)
	require.NotNil(t, onMap)

	// Act
	mockPaned.EXPECT().GetAllocatedHeight().Return(800).Once()
	mockPaned.EXPECT().SetPosition(200).Once()
	onMap()
}

func TestAttach_ClampsRatio(t *testing.T) {
	sv, mockPaned := newMockSplitView(t, layout.OrientationHorizontal)
	mockPaned.EXPECT().SetStartChild(mock.Anything).Once()
	mockPaned.EXPECT().SetEndChild(mock.Anything).Once()
	mockPaned.EXPECT().ConnectMap(mock.Anything).Return(uint32(1)).Once()
	mockPaned.EXPECT().ConnectNotifyPosition(mock.Anything).Return(uint32(2)).Once()
	mockPaned.EXPECT().GetAllocatedWidth().Return(0)

	sv.Attach(mocks.NewMockWidget(t), mocks.NewMockWidget(t), 0.99)
	assert.Equal(t, 0.9, sv.GetRatio())

	sv.SetRatio(-1)
	assert.Equal(t, 0.1, sv.GetRatio())
}

func TestDetach_StripsChildrenAndHandlers(t *testing.T) {
	// Arrange
	sv, mockPaned := newMockSplitView(t, layout.OrientationHorizontal)
	start := mocks.NewMockWidget(t)
	end := mocks.NewMockWidget(t)

	mockPaned.EXPECT().SetStartChild(start).Once()
	mockPaned.EXPECT().SetEndChild(end).Once()
	mockPaned.EXPECT().ConnectMap(mock.Anything).Return(uint32(7)).Once()
	mockPaned.EXPECT().ConnectNotifyPosition(mock.Anything).Return(uint32(8)).Once()
	mockPaned.EXPECT().GetAllocatedWidth().Return(0).Once()
	sv.Attach(start, end, 0.6)
	sv.SetOnRatioChanged(func(float64) { t.Fatal("callback must be dropped") })

	mockPaned.EXPECT().Disconnect(uint32(7)).Once()
	mockPaned.EXPECT().Disconnect(uint32(8)).Once()
	mockPaned.EXPECT().SetStartChild(nil).Once()
	mockPaned.EXPECT().SetEndChild(nil).Once()

	// Act
	sv.Detach()

	// Assert
	assert.Nil(t, sv.StartChild())
	assert.Nil(t, sv.EndChild())
	assert.False(t, sv.Attached())
	assert.Equal(t, 0.5, sv.GetRatio())
}

func TestPositionChange_ReportsClampedRatio(t *testing.T) {
	// Arrange
	sv, mockPaned := newMockSplitView(t, layout.OrientationHorizontal)
	var onPosition func()
	mockPaned.EXPECT().SetStartChild(mock.Anything).Once()
	mockPaned.EXPECT().SetEndChild(mock.Anything).Once()
	mockPaned.EXPECT().ConnectMap(mock.Anything).Return(uint32(1)).Once()
	mockPaned.EXPECT().ConnectNotifyPosition(mock.Anything).
		Run(func(callback func()) { onPosition = callback }).
		Return(uint32(2)).Once()
	mockPaned.EXPECT().GetAllocatedWidth().Return(0).Once()
	sv.Attach(mocks.NewMockWidget(t), mocks.NewMockWidget(t), 0.5)

	var reported []float64
	sv.SetOnRatioChanged(func(r float64) { reported = append(reported, r) })
	mockPaned.EXPECT().GetAllocatedWidth().Return(1000)

	// Act
	mockPaned.EXPECT().GetPosition().Return(700).Once()
	onPosition()
	mockPaned.EXPECT().GetPosition().Return(700).Once()
	onPosition()
	mockPaned.EXPECT().GetPosition().Return(990).Once()
	onPosition()

	// Assert
	assert.Equal(t, []float64{0.7, 0.9}, reported)
	assert.Equal(t, 0.9, sv.GetRatio())
}

func TestSwapStart_ReplacesChild(t *testing.T) {
	sv, mockPaned := newMockSplitView(t, layout.OrientationHorizontal)
	first := mocks.NewMockWidget(t)
	second := mocks.NewMockWidget(t)

	mockPaned.EXPECT().SetStartChild(first).Once()
	sv.SwapStart(first)

	mockPaned.EXPECT().SetStartChild(nil).Once()
	mockPaned.EXPECT().SetStartChild(second).Once()
	sv.SwapStart(second)

	assert.Equal(t, second, sv.StartChild())
}

func TestSetChild_End(t *testing.T) {
	sv, mockPaned := newMockSplitView(t, layout.OrientationHorizontal)
	w := mocks.NewMockWidget(t)

	mockPaned.EXPECT().SetEndChild(w).Once()
	sv.SetChild(false, w)

	assert.Equal(t, w, sv.EndChild())
	assert.Nil(t, sv.StartChild())
}
