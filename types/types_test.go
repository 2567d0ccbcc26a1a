package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypes(t *testing.T) {
	{
		st, err := NewSchemeType(" DG-TVB ")
		assert.NoError(t, err)
		assert.Equal(t, Scheme_DG_TVB, st)
		assert.Equal(t, Integrator_SSPRK3, st.DefaultIntegrator())
		st, err = NewSchemeType("godunov")
		assert.NoError(t, err)
		assert.Equal(t, Integrator_Euler, st.DefaultIntegrator())
		assert.Equal(t, "FV Godunov", st.String())
		_, err = NewSchemeType("spectral")
		assert.Error(t, err)
	}
	{
		it, err := NewIntegratorType("SSP-RK3")
		assert.NoError(t, err)
		assert.Equal(t, Integrator_SSPRK3, it)
		_, err = NewIntegratorType("rk4")
		assert.Error(t, err)
	}
	assert.Equal(t, "L2", Norm_L2.String())
}
