package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureListings() []*Listing {
	mk := func(name, desc string, price float64, status ListingStatus) *Listing {
		return &Listing{
			ID:          uuid.New(),
			SellerID:    uuid.New(),
			Name:        name,
			Description: desc,
			Price:       price,
			ImageURL:    "https://example.com/car.jpg",
			Status:      status,
		}
	}
	return []*Listing{
		mk("Toyota Camry", "2018 LE, reliable and fuel-efficient.", 18000, StatusSold),
		mk("Ford F-150", "2020 XLT, powerful V8 engine.", 35000, StatusAvailable),
		mk("Tesla Model 3", "2022 Long Range, excellent condition.", 45000, StatusAvailable),
		mk("BMW X5", "2021 M Sport, luxury SUV.", 60000, StatusAvailable),
	}
}

func f64(v float64) *float64 { return &v }

func TestFilterNoCriteriaPassesEverything(t *testing.T) {
	listings := fixtureListings()
	assert.Equal(t, listings, Filter(listings, Criteria{}))
}

func TestFilterPriceWindow(t *testing.T) {
	listings := fixtureListings()

	got := Filter(listings, Criteria{MinPrice: f64(20000), MaxPrice: f64(50000)})
	require.Len(t, got, 2)
	assert.Equal(t, "Ford F-150", got[0].Name)
	assert.Equal(t, "Tesla Model 3", got[1].Name)
}

func TestFilterZeroIsARealBound(t *testing.T) {
	listings := fixtureListings()

	// A supplied zero must behave as a bound, not collapse into "unset".
	// With non-negative prices the result set matches the unfiltered one,
	// but only because every listing genuinely satisfies price >= 0.
	got := Filter(listings, Criteria{MinPrice: f64(0)})
	assert.Len(t, got, len(listings))

	got = Filter(listings, Criteria{MaxPrice: f64(0)})
	assert.Empty(t, got)
}

func TestFilterSearchMatchesNameOrDescription(t *testing.T) {
	listings := fixtureListings()

	byName := Filter(listings, Criteria{SearchTerm: "tesla"})
	require.Len(t, byName, 1)
	assert.Equal(t, "Tesla Model 3", byName[0].Name)

	byDescription := Filter(listings, Criteria{SearchTerm: "V8 ENGINE"})
	require.Len(t, byDescription, 1)
	assert.Equal(t, "Ford F-150", byDescription[0].Name)
}

func TestFilterStatus(t *testing.T) {
	listings := fixtureListings()

	got := Filter(listings, Criteria{Status: StatusSold})
	require.Len(t, got, 1)
	assert.Equal(t, "Toyota Camry", got[0].Name)
}

func TestFilterContradictoryRangeYieldsEmpty(t *testing.T) {
	got := Filter(fixtureListings(), Criteria{MinPrice: f64(50000), MaxPrice: f64(20000)})
	assert.Empty(t, got)
}

func TestFilterIsIdempotent(t *testing.T) {
	listings := fixtureListings()
	criteria := []Criteria{
		{},
		{SearchTerm: "tesla"},
		{MinPrice: f64(20000), MaxPrice: f64(50000)},
		{Status: StatusAvailable, SearchTerm: "2021"},
	}

	for _, c := range criteria {
		once := Filter(listings, c)
		twice := Filter(once, c)
		assert.Equal(t, once, twice)
	}
}

func TestFilterPreservesInputOrder(t *testing.T) {
	listings := fixtureListings()

	got := Filter(listings, Criteria{Status: StatusAvailable})
	require.Len(t, got, 3)
	assert.Equal(t, "Ford F-150", got[0].Name)
	assert.Equal(t, "Tesla Model 3", got[1].Name)
	assert.Equal(t, "BMW X5", got[2].Name)
}
