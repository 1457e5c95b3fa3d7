package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mashkanta/mashkanta/internal/domain"
)

func TestFutureValue_ZeroRateIdentity(t *testing.T) {
	for _, years := range []float64{0, 1, 7.5, 30} {
		fv, err := FutureValue(1000, 0, years)
		require.NoError(t, err)
		assert.InDelta(t, 1000, fv, 1e-9, "zero rate should not grow the principal")
	}
}

func TestFutureValue_ZeroYears(t *testing.T) {
	fv, err := FutureValue(12345.67, 0.07, 0)
	require.NoError(t, err)
	assert.Equal(t, 12345.67, fv)
}

func TestFutureValue_Compounds(t *testing.T) {
	fv, err := FutureValue(1000, 0.07, 30)
	require.NoError(t, err)
	assert.InDelta(t, 1000*math.Pow(1.07, 30), fv, 1e-6)
}

func TestFutureValue_NegativePrincipal(t *testing.T) {
	fv, err := FutureValue(-1000, 0.07, 10)
	require.NoError(t, err)
	assert.InDelta(t, -1000*math.Pow(1.07, 10), fv, 1e-6, "negative principal compounds symmetrically")
}

func TestFutureValue_InvalidRate(t *testing.T) {
	_, err := FutureValue(1000, -1, 10)
	var invalid *domain.InvalidParameterError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "annual_rate", invalid.Parameter)

	_, err = FutureValue(1000, -1.5, 10)
	assert.ErrorAs(t, err, &invalid)
}

func TestFutureValue_NegativeYears(t *testing.T) {
	_, err := FutureValue(1000, 0.07, -1)
	var invalid *domain.InvalidParameterError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "years", invalid.Parameter)
}

func TestMonthlyRate(t *testing.T) {
	assert.InDelta(t, 0, MonthlyRate(0), 1e-12)

	// Twelve monthly compoundings must reproduce the annual rate.
	r := MonthlyRate(0.07)
	assert.InDelta(t, 0.07, math.Pow(1+r, 12)-1, 1e-12)
}

func TestAnnuityFutureValue_ZeroRateFallback(t *testing.T) {
	fv, err := AnnuityFutureValue(500, 0, 360)
	require.NoError(t, err)
	assert.InDelta(t, 500*360, fv, 1e-9)
}

func TestAnnuityFutureValue_ClosedForm(t *testing.T) {
	fv, err := AnnuityFutureValue(1000, 0.07, 360)
	require.NoError(t, err)

	r := MonthlyRate(0.07)
	expected := 1000 * (math.Pow(1+r, 360) - 1) / r
	assert.InDelta(t, expected, fv, 1e-6)
}

func TestAnnuityFutureValue_InvalidRate(t *testing.T) {
	_, err := AnnuityFutureValue(1000, -1, 360)
	var invalid *domain.InvalidParameterError
	assert.ErrorAs(t, err, &invalid)
}

// Summing each month's individually compounded contribution must reproduce
// the closed-form annuity value. Contributions compound through the final
// horizon month inclusive, one period ahead of an ordinary annuity, so the
// sum carries a single extra monthly growth factor.
func TestAnnuityCrossCheck(t *testing.T) {
	const (
		payment = 1000.0
		rate    = 0.07
		months  = 360
	)

	sum := 0.0
	for m := 1; m <= months; m++ {
		fv, err := FutureValue(payment, rate, float64(months-m+1)/12.0)
		require.NoError(t, err)
		sum += fv
	}

	annuity, err := AnnuityFutureValue(payment, rate, months)
	require.NoError(t, err)

	expected := annuity * (1 + MonthlyRate(rate))
	assert.InEpsilon(t, expected, sum, 1e-6)
}

func TestTaxOnProfit_FloorsAtZero(t *testing.T) {
	// No profit means no tax, for any inflation rate.
	for _, inflation := range []float64{0, 0.02, 0.10} {
		tax, err := TaxOnProfit(1000, 1000, inflation, 10, 0.25)
		require.NoError(t, err)
		assert.Zero(t, tax)
	}

	// A nominal profit below the inflation adjustment is still untaxed.
	tax, err := TaxOnProfit(1000, 1050, 0.10, 10, 0.25)
	require.NoError(t, err)
	assert.Zero(t, tax, "real loss must not produce a tax rebate")
}

func TestTaxOnProfit_TaxesRealProfit(t *testing.T) {
	// No inflation: the whole nominal profit is taxable.
	tax, err := TaxOnProfit(1000, 2000, 0, 10, 0.25)
	require.NoError(t, err)
	assert.InDelta(t, 250, tax, 1e-9)

	// With inflation only the profit above the uprated principal is taxed.
	tax, err = TaxOnProfit(1000, 2000, 0.02, 10, 0.25)
	require.NoError(t, err)
	expected := (2000 - 1000*math.Pow(1.02, 10)) * 0.25
	assert.InDelta(t, expected, tax, 1e-9)
}

func TestTaxOnProfit_InvalidParameters(t *testing.T) {
	var invalid *domain.InvalidParameterError

	_, err := TaxOnProfit(1000, 2000, -1, 10, 0.25)
	assert.ErrorAs(t, err, &invalid)

	_, err = TaxOnProfit(1000, 2000, 0.02, 10, 1)
	assert.ErrorAs(t, err, &invalid)

	_, err = TaxOnProfit(1000, 2000, 0.02, -1, 0.25)
	assert.ErrorAs(t, err, &invalid)
}
