package validation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type priced struct {
	Name  string           `json:"name" validate:"required"`
	Price decimal.Decimal  `json:"price" validate:"gte=0"`
	Cost  *decimal.Decimal `json:"cost" validate:"omitempty,gt=0"`
	PIN   string           `json:"pin" validate:"omitempty,number,min=4,max=8"`
}

func TestStruct(t *testing.T) {
	require.NoError(t, Struct(priced{Name: "Latte", Price: decimal.NewFromInt(9000)}))

	err := Struct(priced{Price: decimal.NewFromInt(-1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name must satisfy required")
	assert.Contains(t, err.Error(), "price must satisfy gte=0")

	zero := decimal.Zero
	err = Struct(priced{Name: "x", Cost: &zero})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cost")

	assert.Error(t, Struct(priced{Name: "x", PIN: "12a4"}))
	assert.Error(t, Struct(priced{Name: "x", PIN: "123"}))
	assert.NoError(t, Struct(priced{Name: "x", PIN: "123456"}))
}
