package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/nexconsult/juris-api/internal/cnj"
	"github.com/nexconsult/juris-api/internal/document"
	"github.com/nexconsult/juris-api/internal/logger"
	"github.com/nexconsult/juris-api/internal/tribunal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidationService(maxBatch int) *ValidationService {
	return NewValidationService(tribunal.NewDefault(), maxBatch, logger.Discard())
}

func TestValidateDocument(t *testing.T) {
	s := newTestValidationService(10)

	assert.True(t, s.ValidateDocument(document.KindCPF, "529.982.247-25").Valid)
	assert.True(t, s.ValidateDocument(document.KindUnknown, "11.222.333/0001-81").Valid)

	result := s.ValidateDocument(document.KindCNPJ, "529.982.247-25")
	assert.False(t, result.Valid)
	assert.Equal(t, document.ReasonWrongLength, result.Reason)

	assert.Equal(t, int64(3), s.Health()["documents_validated"])
}

func TestValidateBatchKeepsOrder(t *testing.T) {
	s := newTestValidationService(100)

	inputs := make([]string, 0, 40)
	for i := 0; i < 20; i++ {
		inputs = append(inputs, "529.982.247-25", fmt.Sprintf("%011d", i))
	}

	results, err := s.ValidateBatch(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, results, len(inputs))

	for i, result := range results {
		assert.Equal(t, inputs[i], result.Raw)
		assert.Equal(t, i%2 == 0, result.Valid, inputs[i])
	}
}

func TestValidateBatchLimits(t *testing.T) {
	s := newTestValidationService(2)

	_, err := s.ValidateBatch(context.Background(), []string{"1", "2", "3"})
	assert.ErrorIs(t, err, ErrBatchTooLarge)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.ValidateBatch(ctx, []string{"1", "2"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseCaseNumber(t *testing.T) {
	s := newTestValidationService(10)

	lookup, err := s.ParseCaseNumber("0001234-55.2023.8.26.0100")
	require.NoError(t, err)
	require.NotNil(t, lookup.Court)
	assert.Equal(t, "TJSP", lookup.Court.Identifier)
	assert.Equal(t, "0001234", lookup.Case.Sequential)

	lookup, err = s.ParseCaseNumber("0001234-55.2023.8.99.0100")
	require.NoError(t, err)
	assert.Nil(t, lookup.Court)

	_, err = s.ParseCaseNumber("123")
	assert.ErrorIs(t, err, cnj.ErrWrongLength)
}

func TestTribunals(t *testing.T) {
	s := newTestValidationService(10)

	entry, err := s.Tribunal(tribunal.Key{Branch: 5, Tribunal: 2})
	require.NoError(t, err)
	assert.Equal(t, "TRT2", entry.Identifier)

	_, err = s.Tribunal(tribunal.Key{Branch: 5, Tribunal: 99})
	assert.ErrorIs(t, err, tribunal.ErrNotFound)

	assert.Len(t, s.Tribunals(), 92)
}
