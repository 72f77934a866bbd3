package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/database/models"
	"github.com/Ifeanyi-design/irapada-ogo-youths/internal/schema"
)

func TestCoerceValue(t *testing.T) {
	tests := []struct {
		name     string
		datatype models.Datatype
		value    string
		wantErr  bool
	}{
		{"string accepts anything", models.DatatypeString, "hello world", false},
		{"empty value always passes", models.DatatypeNumber, "", false},
		{"number accepts integer", models.DatatypeNumber, "42", false},
		{"number accepts decimal", models.DatatypeNumber, "3.14", false},
		{"number accepts negative", models.DatatypeNumber, "-7", false},
		{"number rejects text", models.DatatypeNumber, "forty-two", true},
		{"date accepts ISO day", models.DatatypeDate, "2026-08-30", false},
		{"date rejects other formats", models.DatatypeDate, "30/08/2026", true},
		{"date rejects nonsense", models.DatatypeDate, "not-a-date", true},
		{"boolean accepts true", models.DatatypeBoolean, "true", false},
		{"boolean accepts yes", models.DatatypeBoolean, "yes", false},
		{"boolean accepts 0", models.DatatypeBoolean, "0", false},
		{"boolean is case-insensitive", models.DatatypeBoolean, "TRUE", false},
		{"boolean rejects other text", models.DatatypeBoolean, "maybe", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.CoerceValue(tt.datatype, tt.value)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}

	t.Run("unknown datatype", func(t *testing.T) {
		err := schema.CoerceValue(models.Datatype("binary"), "abc")
		assert.ErrorIs(t, err, schema.ErrInvalidDatatype)
	})
}
