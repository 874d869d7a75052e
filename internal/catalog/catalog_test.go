package catalog_test

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kearneyfs/prearrange/internal/catalog"
)

func TestSearch(t *testing.T) {
	set := catalog.NewSet()

	tests := []struct {
		name      string
		kind      catalog.Kind
		query     string
		wantLabel string
		wantCount int
	}{
		{name: "ExactWord", kind: catalog.KindCasket, query: "mazri", wantLabel: "Mazri", wantCount: 2},
		{name: "CaseInsensitive", kind: catalog.KindCrematorium, query: "WEST SHORE", wantLabel: "Oversized - West Shore (300+)", wantCount: 2},
		{name: "NoMatch", kind: catalog.KindWeekend, query: "casket", wantCount: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := set.Search(tt.kind, tt.query)

			assert.Len(t, items, tt.wantCount)

			if tt.wantLabel != "" {
				require.NotEmpty(t, items)
				// Results are sorted by label.
				assert.Equal(t, tt.wantLabel, items[0].Label)
			}
		})
	}
}

func TestSearch_EmptyQueryReturnsAll(t *testing.T) {
	set := catalog.NewSet()

	items := set.Search(catalog.KindLimousine, "")
	assert.Len(t, items, 2)

	items = set.Search(catalog.KindViewing, "  ")
	assert.Len(t, items, 8)
}

func TestPrice(t *testing.T) {
	set := catalog.NewSet()

	price, ok := set.Price(catalog.KindCasket, catalog.BasicCremationContainer)
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.NewFromInt(395)))

	_, ok = set.Price(catalog.KindCasket, "No Such Casket")
	assert.False(t, ok)
}

func TestParseKind(t *testing.T) {
	k, err := catalog.ParseKind("urn")
	require.NoError(t, err)
	assert.Equal(t, catalog.KindUrn, k)

	_, err = catalog.ParseKind("keepsakes")
	assert.Error(t, err)
}

func TestPackageByName(t *testing.T) {
	pkg, ok := catalog.PackageByName("Minimum Cremation - No Viewing")
	require.True(t, ok)

	assert.Equal(t, catalog.BasicCremationContainer, pkg.Labels["Casket"])
	assert.True(t, pkg.Amounts["A1"].Equal(decimal.NewFromInt(525)))

	_, ok = catalog.PackageByName("Deluxe Mausoleum")
	assert.False(t, ok)
}

func TestApplyPriceList(t *testing.T) {
	set := catalog.NewSet()

	csvData := "Label,Price\nMazri,\"1,095.00\"\nNew Eco Casket,495.00\nBad Row,abc\n"

	applied, err := set.ApplyPriceList(catalog.KindCasket, strings.NewReader(csvData))
	require.NoError(t, err)
	assert.Equal(t, 2, applied)

	price, ok := set.Price(catalog.KindCasket, "Mazri")
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.NewFromInt(1095)))

	price, ok = set.Price(catalog.KindCasket, "New Eco Casket")
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.NewFromInt(495)))

	// Labels not listed keep their built-in price.
	price, ok = set.Price(catalog.KindCasket, catalog.BasicCremationContainer)
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.NewFromInt(395)))

	// The built-in tables are untouched; a fresh set sees original prices.
	fresh := catalog.NewSet()
	price, _ = fresh.Price(catalog.KindCasket, "Mazri")
	assert.True(t, price.Equal(decimal.NewFromInt(795)))
}
