package timerange

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Eldarfox/easy-parking-maps/internal/domain"
)

func TestSelector_TwoClickProtocol(t *testing.T) {
	s := NewSelector(DefaultHours(), nil, false)

	sel := s.Click(10)
	require.NotNil(t, sel.Start)
	assert.Equal(t, 10, *sel.Start)
	assert.Nil(t, sel.End)

	sel = s.Click(12)
	r, ok := sel.Range()
	require.True(t, ok)
	assert.Equal(t, domain.NewHourRange(10, 12), r)
}

func TestSelector_ReverseOrderNormalizes(t *testing.T) {
	s := NewSelector(DefaultHours(), nil, false)

	s.Click(15)
	sel := s.Click(11)

	r, ok := sel.Range()
	require.True(t, ok)
	assert.Equal(t, domain.NewHourRange(11, 15), r)
}

func TestSelector_SameHourClears(t *testing.T) {
	s := NewSelector(DefaultHours(), nil, false)

	s.Click(10)
	sel := s.Click(10)
	assert.True(t, sel.IsEmpty())
}

func TestSelector_ThirdClickRestarts(t *testing.T) {
	s := NewSelector(DefaultHours(), nil, false)

	s.Click(10)
	s.Click(12)
	sel := s.Click(20)

	require.NotNil(t, sel.Start)
	assert.Equal(t, 20, *sel.Start)
	assert.Nil(t, sel.End)
}

func TestSelector_DisabledClickIsNoop(t *testing.T) {
	s := NewSelector(DefaultHours(), []int{17}, false)

	sel := s.Click(17)
	assert.True(t, sel.IsEmpty())

	s.Click(10)
	sel = s.Click(17)
	require.NotNil(t, sel.Start)
	assert.Equal(t, 10, *sel.Start)
	assert.Nil(t, sel.End)
}

func TestSelector_RangeOverDisabledHoursRejected(t *testing.T) {
	s := NewSelector(DefaultHours(), []int{17, 18}, false)

	s.Click(16)
	sel := s.Click(19)

	// Диапазон накрыл бы недоступные 17 и 18 - выбор остаётся [16, nil]
	require.NotNil(t, sel.Start)
	assert.Equal(t, 16, *sel.Start)
	assert.Nil(t, sel.End)
}

func TestSelector_NightModePreservesWrapDirection(t *testing.T) {
	nightHours := domain.HourWindow{From: 20, To: 8}.DisplayHours()
	s := NewSelector(nightHours, nil, true)

	s.Click(22)
	sel := s.Click(6)

	r, ok := sel.Range()
	require.True(t, ok)
	assert.Equal(t, domain.NewHourRange(22, 6), r)
	assert.True(t, r.Wraps())
}

func TestSelector_NightModeSwapsNonWrappingClicks(t *testing.T) {
	nightHours := domain.HourWindow{From: 20, To: 8}.DisplayHours()
	s := NewSelector(nightHours, nil, true)

	s.Click(6)
	sel := s.Click(22)

	r, ok := sel.Range()
	require.True(t, ok)
	assert.Equal(t, domain.NewHourRange(22, 6), r)
}

func TestSelector_HourOutsideDisplaySetIgnored(t *testing.T) {
	s := NewSelector(DefaultHours(), nil, false)

	sel := s.Click(3)
	assert.True(t, sel.IsEmpty())
}
