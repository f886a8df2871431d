package zupos

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"zupos/drawer"
	nt "zupos/entity"
)

func TestValidateStore(t *testing.T) {

	tests := []struct {
		name   string
		values drawer.Values
		errs   map[string]string
	}{
		{
			name:   "valid",
			values: drawer.Values{"name": "Merkez", "code": "100", "transferType": "Devir"},
		},
		{
			name:   "defaults",
			values: createValues(),
			errs:   map[string]string{"name": "Name is required", "code": "Code is required"},
		},
		{
			name:   "short name and letters in code",
			values: drawer.Values{"name": " Ş ", "code": "10a", "transferType": "Sayim"},
			errs: map[string]string{
				"name": "Name must be at least 2 characters",
				"code": "Code must contain digits only",
			},
		},
		{
			name:   "unknown transfer type",
			values: drawer.Values{"name": "Merkez", "code": "100", "transferType": "Iade"},
			errs:   map[string]string{"transferType": `Unknown transfer type "Iade"`},
		},
		{
			name:   "missing transfer type",
			values: drawer.Values{"name": "Merkez", "code": "100"},
			errs:   map[string]string{"transferType": "Transfer type is required"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.errs, ValidateStore(tc.values))
		})
	}
}

func TestApplyValues(t *testing.T) {

	sd := nt.StoreDef{Id: 4, Address: "Alsancak", Status: true}
	values := editValues(nt.StoreDef{Name: " Merkez ", Code: "400", TransferType: "Devir"})

	sd = applyValues(sd, values)
	assert.Equal(t, nt.StoreDef{Id: 4, Code: "400", Name: "Merkez", TransferType: "Devir", Address: "Alsancak"}, sd)
}
