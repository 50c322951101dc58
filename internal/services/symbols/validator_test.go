package symbols

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vadiminshakov/rofexbuy/internal/domain"
)

type mockLister struct {
	instruments []domain.Instrument
	err         error
}

func (m *mockLister) Instruments(context.Context) ([]domain.Instrument, error) {
	return m.instruments, m.err
}

func instrument(symbol string) domain.Instrument {
	return domain.Instrument{ID: domain.InstrumentID{MarketID: "ROFX", Symbol: domain.Symbol(symbol)}}
}

var tradable = []domain.Symbol{"DOEne21", "DODic20", "DOMar21"}

func TestListTradable(t *testing.T) {
	lister := &mockLister{instruments: []domain.Instrument{instrument("DOEne21"), instrument("DODic20")}}

	symbols, err := ListTradable(context.Background(), lister)
	require.NoError(t, err)
	assert.Equal(t, []domain.Symbol{"DOEne21", "DODic20"}, symbols)
}

func TestListTradable_EmptyMarket(t *testing.T) {
	symbols, err := ListTradable(context.Background(), &mockLister{})
	require.NoError(t, err)
	assert.NotNil(t, symbols)
	assert.Empty(t, symbols)
}

func TestListTradable_Error(t *testing.T) {
	boom := errors.New("boom")
	_, err := ListTradable(context.Background(), &mockLister{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestValidate_KnownSymbols(t *testing.T) {
	for _, s := range tradable {
		got, ok := Validate(s, tradable)
		assert.True(t, ok, s)
		assert.Equal(t, s, got)
	}
}

func TestValidate_UnknownSymbols(t *testing.T) {
	tests := []domain.Symbol{"DOEnero2021", "", "doene21", "DOEne21 "}

	for _, s := range tests {
		got, ok := Validate(s, tradable)
		assert.False(t, ok, string(s))
		assert.Empty(t, got)
	}
}

func TestValidate_EmptyMarket(t *testing.T) {
	_, ok := Validate("DOEne21", nil)
	assert.False(t, ok)
}
