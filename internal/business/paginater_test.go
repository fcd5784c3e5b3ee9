package business_test

import (
	"encoding/json"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"

	"github.com/Agurato/filmstats/internal/business"
	"github.com/Agurato/filmstats/internal/model"
)

func TestPaginater(t *testing.T) {
	items := lo.Range(45)
	p := business.NewPaginater[int](10)

	assert.Equal(t, int64(5), p.PageCount(items))

	t.Run("FirstPage", func(t *testing.T) {
		paged, pages := p.GetPagination(1, items)
		assert.Equal(t, lo.Range(10), paged)
		assert.Equal(t, []model.Pagination{
			{Number: 1, Active: true},
			{Number: 2},
			{Dots: true},
			{Number: 5},
		}, pages)
	})

	t.Run("MiddlePage", func(t *testing.T) {
		paged, pages := p.GetPagination(3, items)
		assert.Equal(t, lo.RangeFrom(20, 10), paged)
		assert.Equal(t, []model.Pagination{
			{Number: 1},
			{Number: 2},
			{Number: 3, Active: true},
			{Number: 4},
			{Number: 5},
		}, pages)
	})

	t.Run("LastPage", func(t *testing.T) {
		paged, pages := p.GetPagination(5, items)
		assert.Equal(t, lo.RangeFrom(40, 5), paged)
		assert.Equal(t, []model.Pagination{
			{Number: 1},
			{Dots: true},
			{Number: 4},
			{Number: 5, Active: true},
		}, pages)
	})

	t.Run("OutOfRange", func(t *testing.T) {
		paged, _ := p.GetPagination(9, items)
		assert.Empty(t, paged)
		paged, _ = p.GetPagination(0, items)
		assert.Empty(t, paged)
	})

	t.Run("EmptyPageEncodesAsArray", func(t *testing.T) {
		paged, _ := p.GetPagination(9, items)
		assert.NotNil(t, paged)
		encoded, err := json.Marshal(paged)
		assert.NoError(t, err)
		assert.JSONEq(t, "[]", string(encoded))

		paged, _ = business.NewPaginater[int](10).GetPagination(1, nil)
		assert.NotNil(t, paged)
	})
}
